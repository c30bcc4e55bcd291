//go:build js && wasm

// Command storefront-wasm mounts the storefront on the live page. Build with
// GOOS=js GOARCH=wasm and serve the result as /static/storefront.wasm.
package main

import (
	"biomae/internal/dom/jsdom"
	applog "biomae/internal/log"
	"biomae/internal/page"
	"biomae/internal/storage"
)

func main() {
	opts := page.DefaultOptions()
	opts.Prefs = page.Preferences{
		ReducedMotion:    jsdom.MatchMedia("(prefers-reduced-motion: reduce)"),
		FineHoverPointer: jsdom.MatchMedia("(hover: hover) and (pointer: fine)"),
		SaveData:         jsdom.SaveData(),
	}

	p := page.Mount(page.Env{
		Doc:     jsdom.New(),
		Sched:   jsdom.NewScheduler(),
		Storage: storage.Browser{},
	}, opts)
	applog.Debug("page.mounted", map[string]any{"skipped": p.Skipped(), "motion": p.Motion})

	// Handlers run on the browser's event loop for the life of the page.
	select {}
}
