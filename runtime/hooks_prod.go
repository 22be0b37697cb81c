//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/pagebuilder/console"
)

// callHook invokes a lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func callHook(key, hook string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error(fmt.Sprintf("%s panic in component %s: %v", hook, key, rec))
		}
	}()
	fn()
}
