//go:build e2e

package e2e

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/pagebuilder/internal/config"
	"github.com/vcrobe/pagebuilder/internal/devserver"
)

func openBuilder(t *testing.T) playwright.Page {
	t.Helper()

	dist, err := filepath.Abs(filepath.Join("..", "..", "web"))
	require.NoError(t, err)
	if _, err := os.Stat(filepath.Join(dist, "main.wasm")); err != nil {
		t.Skip("bundle not built, run make wasm")
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ts := httptest.NewServer(devserver.New(config.ServerConfig{Dist: dist}, logger).Handler())
	t.Cleanup(ts.Close)

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright unavailable: %v", err)
	}
	t.Cleanup(func() { _ = pw.Stop() })

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Skipf("chromium unavailable: %v", err)
	}
	t.Cleanup(func() { _ = browser.Close() })

	page, err := browser.NewPage()
	require.NoError(t, err)

	_, err = page.Goto(ts.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(30000),
	})
	require.NoError(t, err)
	require.NoError(t, page.Locator(`[data-role="palette-item"]`).First().WaitFor())
	return page
}

func dragOnto(t *testing.T, page playwright.Page, kind string) {
	t.Helper()
	token := page.Locator(`[data-role="palette-item"][data-kind="` + kind + `"]`)
	require.NoError(t, token.DragTo(page.Locator(`[data-role="canvas"]`)))
}

func TestDropImageAndEdit(t *testing.T) {
	page := openBuilder(t)
	expect := playwright.NewPlaywrightAssertions()

	dragOnto(t, page, "image")
	require.NoError(t, expect.Locator(page.Locator(`[data-role="canvas-item"]`)).ToHaveCount(1))

	preview := page.Locator(`[data-role="image-preview"]`)
	require.NoError(t, expect.Locator(preview).ToHaveAttribute("src", "https://picsum.photos/300/300"))

	require.NoError(t, preview.Click())
	require.NoError(t, page.Locator(`[data-role="image-url"]`).Fill("foo.png"))
	require.NoError(t, expect.Locator(preview).ToHaveAttribute("src", "foo.png"))

	require.NoError(t, preview.Click())
	require.NoError(t, expect.Locator(page.Locator(`[data-role="image-url"]`)).ToHaveCount(0))
}

func TestDropTextAndType(t *testing.T) {
	page := openBuilder(t)
	expect := playwright.NewPlaywrightAssertions()

	dragOnto(t, page, "text")
	dragOnto(t, page, "image")
	dragOnto(t, page, "text")

	items := page.Locator(`[data-role="canvas-item"]`)
	require.NoError(t, expect.Locator(items).ToHaveCount(3))
	require.NoError(t, expect.Locator(items.Nth(1)).ToHaveAttribute("data-kind", "image"))

	require.NoError(t, page.Locator(`[data-role="text-input"]`).First().Fill("hello"))
	require.NoError(t, expect.Locator(page.Locator(`[data-role="text-display"]`).First()).ToHaveText("hello"))
	require.NoError(t, expect.Locator(page.Locator(`[data-role="text-display"]`).Nth(1)).ToHaveText(""))
}
