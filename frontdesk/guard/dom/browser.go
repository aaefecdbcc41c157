//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/hoteldesk/frontdesk/frontdesk/guard"
)

type element struct {
	v js.Value
}

func (e element) Value() string {
	return e.v.Get("value").String()
}

func (e element) SetText(text string) {
	e.v.Set("innerText", text)
}

func (e element) SetStyle(s guard.Style) {
	style := e.v.Get("style")
	style.Set("padding", s.Padding)
	style.Set("backgroundColor", s.BackgroundColor)
	style.Set("color", s.Color)
	style.Set("border", s.Border)
}

// OnSubmit adds a submit listener that lives as long as the page.
func (e element) OnSubmit(f func(ev guard.Event)) {
	listener := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		var ev guard.Event
		if len(args) > 0 {
			ev = event{args[0]}
		}
		f(ev)
		return nil
	})
	e.v.Call("addEventListener", "submit", listener)
}

type event struct {
	v js.Value
}

func (e event) PreventDefault() {
	e.v.Call("preventDefault")
}

type document struct {
	v js.Value
}

// Browser returns the page's document.
func Browser() Document {
	return document{js.Global().Get("document")}
}

func (d document) ElementByID(id string) Element {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return element{v}
}

func (d document) Loading() bool {
	return d.v.Get("readyState").String() == "loading"
}

func (d document) OnContentLoaded(f func()) {
	var onReady js.Func
	onReady = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		onReady.Release()
		f()
		return nil
	})
	d.v.Call("addEventListener", "DOMContentLoaded", onReady, map[string]interface{}{"once": true})
}

// ConsoleError writes err to the browser console.
func ConsoleError(err error) {
	js.Global().Get("console").Call("error", err.Error())
}
