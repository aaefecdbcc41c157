package form

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/hoteldesk/frontdesk/frontdesk/guard"
	"github.com/hoteldesk/frontdesk/templates"
	"golang.org/x/net/html"
)

func renderLogin(t *testing.T, f Form, errmsg string, style template.CSS) *html.Node {
	t.Helper()
	tmpl := template.New("layout")
	tmpl, err := tmpl.Parse(templates.Layout)
	if err != nil {
		t.Fatalf("Failed to parse layout: %v", err)
	}
	tmpl, err = tmpl.Parse(templates.Login)
	if err != nil {
		t.Fatalf("Failed to parse login template: %v", err)
	}
	data := map[string]interface{}{
		"form":        f,
		"error":       errmsg,
		"error_style": style,
	}
	b := new(bytes.Buffer)
	if err := tmpl.Execute(b, data); err != nil {
		t.Fatalf("Failed to render login form: %v", err)
	}
	doc, err := html.Parse(b)
	if err != nil {
		t.Fatalf("Failed to parse rendered page: %v", err)
	}
	return doc
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		if v, ok := getAttr(n, "id"); ok && v == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func TestLoginFormHTML(t *testing.T) {
	doc := renderLogin(t, Login(), "", template.CSS(guard.ClearedStyle.CSS()))

	formNode := findByID(doc, guard.FormID)
	if formNode == nil || formNode.Data != "form" {
		t.Fatalf("Form element #%s not rendered", guard.FormID)
	}
	if _, ok := getAttr(formNode, "novalidate"); !ok {
		t.Fatal("Login form should be marked novalidate")
	}
	if action, _ := getAttr(formNode, "action"); action != "/login" {
		t.Fatalf("Unexpected form action: %q", action)
	}

	expected := map[string]string{
		guard.UsernameID: "text",
		guard.PasswordID: "password",
	}
	for id, typ := range expected {
		n := findByID(formNode, id)
		if n == nil || n.Data != "input" {
			t.Fatalf("Input #%s not rendered inside the form", id)
		}
		if v, _ := getAttr(n, "type"); v != typ {
			t.Fatalf("Input #%s has type %q; expected %q", id, v, typ)
		}
	}

	errNode := findByID(formNode, guard.ErrorID)
	if errNode == nil {
		t.Fatalf("Error region #%s not rendered", guard.ErrorID)
	}
	if txt := textContent(errNode); txt != "" {
		t.Fatalf("Error region should start empty, got %q", txt)
	}
	if style, _ := getAttr(errNode, "style"); style != guard.ClearedStyle.CSS() {
		t.Fatalf("Unexpected error region style: %q", style)
	}
}

func TestLoginFormShowingError(t *testing.T) {
	f := Login().WithValues(map[string]string{"username": "alice123", "password": "pass1"})
	doc := renderLogin(t, f, guard.ErrorMessage, template.CSS(guard.ErrorStyle.CSS()))

	errNode := findByID(doc, guard.ErrorID)
	if errNode == nil {
		t.Fatalf("Error region #%s not rendered", guard.ErrorID)
	}
	if txt := textContent(errNode); txt != guard.ErrorMessage {
		t.Fatalf("Unexpected error text: %q", txt)
	}
	if style, _ := getAttr(errNode, "style"); style != guard.ErrorStyle.CSS() {
		t.Fatalf("Unexpected error region style: %q", style)
	}

	if v, _ := getAttr(findByID(doc, guard.UsernameID), "value"); v != "alice123" {
		t.Fatalf("Username not refilled: %q", v)
	}
	if v, _ := getAttr(findByID(doc, guard.PasswordID), "value"); v != "" {
		t.Fatalf("Password must never be refilled: %q", v)
	}
}

func TestWithValuesCopies(t *testing.T) {
	orig := Login()
	filled := orig.WithValues(map[string]string{"username": "bob123"})
	if orig.Elements[0].Value != "" {
		t.Fatal("WithValues modified the original form")
	}
	if filled.Elements[0].Value != "bob123" {
		t.Fatalf("Unexpected value: %q", filled.Elements[0].Value)
	}
}
