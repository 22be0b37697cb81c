//go:build !js || !wasm

package console

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Outside the browser console output is forwarded to logrus so native
// test runs and tools still show what the runtime reports.

// Log writes args at debug level.
func Log(args ...any) {
	logrus.Debug(join(args))
}

// Warn writes args at warning level.
func Warn(args ...any) {
	logrus.Warn(join(args))
}

// Error writes args at error level.
func Error(args ...any) {
	logrus.Error(join(args))
}

// join mimics the browser console, which separates arguments with spaces.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
