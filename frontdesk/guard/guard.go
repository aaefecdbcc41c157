// Package guard validates the login form before it is submitted and keeps the
// inline error region in step with the result of the latest attempt.
//
// The decision (Check) is independent of any UI runtime. Guard applies it to
// abstract field, region and event handles so that the same rules can drive
// the browser (see package dom) and the server-rendered login page.
package guard

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Stable element identifiers shared by the login template and the DOM
// binding.
const (
	FormID     = "loginForm"
	UsernameID = "username"
	PasswordID = "password"
	ErrorID    = "loginError"
)

// ErrorMessage is shown when either field is empty after trimming.
const ErrorMessage = "🛑 Error: Both username and password fields must be filled out."

// ErrMissingElement is returned by New when a handle the guard needs is nil.
var ErrMissingElement = errors.New("login guard: missing element")

// Verdict is the outcome of validating one submit attempt.
type Verdict struct {
	// Valid is true iff both trimmed values are non-empty.
	Valid bool
	// Message is ErrorMessage for invalid attempts and empty otherwise.
	Message string
	// Username and Password hold the trimmed values.
	Username string
	Password string
}

// Check trims both values and decides whether the form may be submitted.
func Check(username, password string) Verdict {
	v := Verdict{
		Username: Trim(username),
		Password: Trim(password),
	}
	v.Valid = v.Username != "" && v.Password != ""
	if !v.Valid {
		v.Message = ErrorMessage
	}
	return v
}

// Trim removes leading and trailing white space as a browser's
// String.prototype.trim does: U+FEFF counts as space, U+0085 does not.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	return r == '\ufeff' || (unicode.IsSpace(r) && r != '\u0085')
}

// State of the error region.
type State int

const (
	Cleared State = iota
	ShowingError
)

func (s State) String() string {
	switch s {
	case Cleared:
		return "cleared"
	case ShowingError:
		return "showing-error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// State returns the region state a verdict leads to.
func (v Verdict) State() State {
	if v.Valid {
		return Cleared
	}
	return ShowingError
}

// Field is an input whose current value can be read.
type Field interface {
	Value() string
}

// Region is the element that displays the inline error.
type Region interface {
	SetText(text string)
	SetStyle(style Style)
}

// Event is the submit event; PreventDefault stops the native submission.
type Event interface {
	PreventDefault()
}

// Guard validates submit events for one login form.
type Guard struct {
	username Field
	password Field
	region   Region
	state    State
}

// New returns a Guard for the given handles. All three are required.
func New(username, password Field, region Region) (*Guard, error) {
	switch {
	case username == nil:
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, UsernameID)
	case password == nil:
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, PasswordID)
	case region == nil:
		return nil, fmt.Errorf("%w: #%s", ErrMissingElement, ErrorID)
	}
	return &Guard{username: username, password: password, region: region}, nil
}

// Submit handles one submit attempt. It returns true when the native
// submission should proceed; otherwise the event's default action has been
// prevented and the error is on display.
func (g *Guard) Submit(ev Event) bool {
	verdict := Check(g.username.Value(), g.password.Value())

	Clear(g.region)
	g.state = Cleared

	if verdict.Valid {
		return true
	}
	if ev != nil {
		ev.PreventDefault()
	}
	Show(g.region, verdict.Message)
	g.state = ShowingError
	return false
}

// State returns the region state after the most recent Submit.
func (g *Guard) State() State {
	return g.state
}

// Clear resets the region to its cleared state.
func Clear(r Region) {
	r.SetText("")
	r.SetStyle(ClearedStyle)
}

// Show puts message on the region with the error style.
func Show(r Region, message string) {
	r.SetText(message)
	r.SetStyle(ErrorStyle)
}
