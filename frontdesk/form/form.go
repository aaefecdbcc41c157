package form

import "github.com/hoteldesk/frontdesk/frontdesk/guard"

const (
	EmailInput    ElementType = "email"
	HiddenInput   ElementType = "hidden"
	PasswordInput ElementType = "password"
	TextInput     ElementType = "text"
)

// ElementType defines the type of a form input element:
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element/input
type ElementType string

// Form describes a web form rendered by the service.
type Form struct {
	// ID of the form element.  Scripts bind to it.
	ID string
	// The Name appears as the header of the form.
	Name string
	// The Description appears under the Name.
	Description string
	// Action is the URL the form posts to.
	Action string
	// Submit is the label of the submit button.
	Submit string
	// Each element creates an input field on the form.
	Elements []Element
	// ErrorID is the ID of the inline error region rendered above the submit
	// button.
	ErrorID string
}

// Element represents a single form element (field).
type Element struct {
	// ID of the element.  Must be unique.
	ID string
	// Name of the element.  Used as key to retrieve the value on submission.
	Name string
	// The Label of the field as it appears on the rendered form.
	Label string
	// If set, the field will be filled with the given value when rendered.
	Value string
	// Whether the element represents a required form field.
	Required bool
	// Type is the HTML input element type.
	Type ElementType
	// Autocomplete hint for the browser.
	Autocomplete string
	// An optional description for the field, displayed under the input.
	Description string
}

// Login returns the sign-in form.  Element IDs are the ones the login guard
// looks up.
func Login() Form {
	return Form{
		ID:     guard.FormID,
		Name:   "Sign In",
		Action: "/login",
		Submit: "Sign In",
		Elements: []Element{
			{
				ID:           guard.UsernameID,
				Name:         "username",
				Label:        "Username",
				Type:         TextInput,
				Required:     true,
				Autocomplete: "username",
			},
			{
				ID:           guard.PasswordID,
				Name:         "password",
				Label:        "Password",
				Type:         PasswordInput,
				Required:     true,
				Autocomplete: "current-password",
			},
		},
		ErrorID: guard.ErrorID,
	}
}

// WithValues returns a copy of the form with element values taken from
// values by element Name.  Password inputs are never refilled.
func (f Form) WithValues(values map[string]string) Form {
	elements := make([]Element, len(f.Elements))
	copy(elements, f.Elements)
	for idx := range elements {
		if elements[idx].Type == PasswordInput {
			continue
		}
		if v, ok := values[elements[idx].Name]; ok {
			elements[idx].Value = v
		}
	}
	f.Elements = elements
	return f
}
