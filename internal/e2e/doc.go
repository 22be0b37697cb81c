// Package e2e drives the compiled bundle in a real browser with playwright.
// The tests carry the e2e build tag; build the bundle first with `make wasm`
// and run them with `make e2e`.
package e2e
