//go:build js || wasm

package main

import (
	"github.com/vcrobe/dataflow/console"
	"github.com/vcrobe/dataflow/internal/app/components/pages"
	"github.com/vcrobe/dataflow/internal/content"
	"github.com/vcrobe/dataflow/internal/scroll"
	"github.com/vcrobe/dataflow/internal/submit"
	"github.com/vcrobe/dataflow/runtime"
)

func main() {
	page := pages.NewLandingPage(content.Default(), scroll.Window(), submit.NewDelay())

	renderer := runtime.NewRenderer("#app")
	renderer.SetCurrentComponent(page, "landing")
	renderer.ReRender()

	console.Log("DataFlow landing page mounted")

	// Keep the Go program running
	select {}
}
