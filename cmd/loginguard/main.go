//go:build js && wasm

// Command loginguard is the WebAssembly module loaded by the login page. Build
// it and copy Go's wasm loader next to it:
//
//	GOOS=js GOARCH=wasm go build -o assets/loginguard.wasm ./cmd/loginguard
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" assets/
//
// Before Go 1.24 the loader is in misc/wasm instead of lib/wasm.
package main

import (
	"github.com/hoteldesk/frontdesk/frontdesk/guard/dom"
)

func main() {
	dom.Install(dom.Browser(), dom.DefaultIDs, dom.ConsoleError)
	// keep the submit handler alive for the lifetime of the page
	select {}
}
