package dom

import (
	"errors"
	"testing"

	"github.com/hoteldesk/frontdesk/frontdesk/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	value     string
	text      string
	style     guard.Style
	listeners []func(guard.Event)
}

func (e *fakeElement) Value() string                { return e.value }
func (e *fakeElement) SetText(text string)          { e.text = text }
func (e *fakeElement) SetStyle(s guard.Style)       { e.style = s }
func (e *fakeElement) OnSubmit(f func(guard.Event)) { e.listeners = append(e.listeners, f) }

// submit dispatches a submit event and reports whether it was prevented.
func (e *fakeElement) submit() bool {
	ev := new(fakeEvent)
	for _, f := range e.listeners {
		f(ev)
	}
	return ev.prevented
}

type fakeEvent struct{ prevented bool }

func (e *fakeEvent) PreventDefault() { e.prevented = true }

type fakeDocument struct {
	elements map[string]*fakeElement
	loading  bool
	onReady  []func()
}

func (d *fakeDocument) ElementByID(id string) Element {
	if el, ok := d.elements[id]; ok {
		return el
	}
	return nil
}

func (d *fakeDocument) Loading() bool { return d.loading }

func (d *fakeDocument) OnContentLoaded(f func()) { d.onReady = append(d.onReady, f) }

func (d *fakeDocument) finishLoading() {
	d.loading = false
	for _, f := range d.onReady {
		f()
	}
	d.onReady = nil
}

func loginPage() *fakeDocument {
	return &fakeDocument{elements: map[string]*fakeElement{
		guard.FormID:     {},
		guard.UsernameID: {},
		guard.PasswordID: {},
		guard.ErrorID:    {},
	}}
}

func (d *fakeDocument) fill(username, password string) {
	d.elements[guard.UsernameID].value = username
	d.elements[guard.PasswordID].value = password
}

func TestAttachNoForm(t *testing.T) {
	doc := loginPage()
	delete(doc.elements, guard.FormID)

	g, err := Attach(doc, DefaultIDs)
	assert.NoError(t, err)
	assert.Nil(t, g)
	assert.Empty(t, doc.elements[guard.ErrorID].text)
}

func TestAttachMissingElement(t *testing.T) {
	for _, id := range []string{guard.UsernameID, guard.PasswordID, guard.ErrorID} {
		t.Run(id, func(t *testing.T) {
			doc := loginPage()
			delete(doc.elements, id)

			g, err := Attach(doc, DefaultIDs)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, guard.ErrMissingElement), "unexpected error: %v", err)
			assert.Contains(t, err.Error(), "#"+id)
			assert.Empty(t, doc.elements[guard.FormID].listeners)
		})
	}
}

func TestAttachSubmit(t *testing.T) {
	doc := loginPage()
	g, err := Attach(doc, DefaultIDs)
	require.NoError(t, err)
	require.NotNil(t, g)
	form := doc.elements[guard.FormID]
	region := doc.elements[guard.ErrorID]
	require.Len(t, form.listeners, 1)

	doc.fill("", "secret")
	assert.True(t, form.submit())
	assert.Equal(t, guard.ErrorMessage, region.text)
	assert.Equal(t, guard.ErrorStyle, region.style)
	assert.Equal(t, guard.ShowingError, g.State())

	doc.fill("alice", "secret")
	assert.False(t, form.submit())
	assert.Empty(t, region.text)
	assert.Equal(t, guard.ClearedStyle, region.style)
	assert.Equal(t, guard.Cleared, g.State())
}

func TestInstallParsed(t *testing.T) {
	doc := loginPage()
	Install(doc, DefaultIDs, func(err error) { t.Fatalf("unexpected setup error: %v", err) })

	assert.Empty(t, doc.onReady)
	assert.Len(t, doc.elements[guard.FormID].listeners, 1)
}

func TestInstallLoading(t *testing.T) {
	doc := loginPage()
	doc.loading = true
	Install(doc, DefaultIDs, func(err error) { t.Fatalf("unexpected setup error: %v", err) })

	form := doc.elements[guard.FormID]
	assert.Empty(t, form.listeners, "attached before the document was parsed")
	require.Len(t, doc.onReady, 1)

	doc.finishLoading()
	require.Len(t, form.listeners, 1)
	doc.fill("   ", "secret")
	assert.True(t, form.submit())
}

func TestInstallReportsErrors(t *testing.T) {
	doc := loginPage()
	delete(doc.elements, guard.ErrorID)

	var reported []error
	Install(doc, DefaultIDs, func(err error) { reported = append(reported, err) })
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], guard.ErrMissingElement)

	// without a form there is nothing to report
	delete(doc.elements, guard.FormID)
	Install(doc, DefaultIDs, func(err error) { reported = append(reported, err) })
	assert.Len(t, reported, 1)
}
