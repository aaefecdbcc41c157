// Package dom attaches the login guard to a document.  The browser binding
// lives in browser.go (js && wasm); Attach and Install only see the Document
// and Element interfaces.
package dom

import "github.com/hoteldesk/frontdesk/frontdesk/guard"

// IDs names the elements the guard binds to.
type IDs struct {
	Form     string
	Username string
	Password string
	Error    string
}

// DefaultIDs match the login page template.
var DefaultIDs = IDs{
	Form:     guard.FormID,
	Username: guard.UsernameID,
	Password: guard.PasswordID,
	Error:    guard.ErrorID,
}

// Element is a page element.  Inputs are read through Value, the error
// region is written through SetText and SetStyle, and the form takes the
// submit listener.
type Element interface {
	guard.Field
	guard.Region
	OnSubmit(func(ev guard.Event))
}

// Document looks up elements by id and reports when its structure is ready.
type Document interface {
	// ElementByID returns nil when the document has no such element.
	ElementByID(id string) Element
	// Loading is true until the document has been parsed.
	Loading() bool
	// OnContentLoaded runs f once, when parsing finishes.
	OnContentLoaded(f func())
}

// Attach binds a guard to the form in doc.  It returns (nil, nil) when the
// document has no login form.  No listener is attached when a field or the
// error region is missing.
func Attach(doc Document, ids IDs) (*guard.Guard, error) {
	form := doc.ElementByID(ids.Form)
	if form == nil {
		return nil, nil
	}

	// a nil Element must become a nil Field or Region, not a typed nil
	var user, pass guard.Field
	var region guard.Region
	if el := doc.ElementByID(ids.Username); el != nil {
		user = el
	}
	if el := doc.ElementByID(ids.Password); el != nil {
		pass = el
	}
	if el := doc.ElementByID(ids.Error); el != nil {
		region = el
	}
	g, err := guard.New(user, pass, region)
	if err != nil {
		return nil, err
	}

	form.OnSubmit(func(ev guard.Event) {
		g.Submit(ev)
	})
	return g, nil
}

// Install attaches the guard once the document structure is parsed.  Setup
// errors are passed to report.
func Install(doc Document, ids IDs, report func(error)) {
	setup := func() {
		if _, err := Attach(doc, ids); err != nil && report != nil {
			report(err)
		}
	}
	if !doc.Loading() {
		setup()
		return
	}
	doc.OnContentLoaded(setup)
}
