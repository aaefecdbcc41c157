package guard

import "strings"

// Style holds the inline style properties the guard writes to the error
// region. An empty property removes any inline value.
type Style struct {
	Padding         string
	BackgroundColor string
	Color           string
	Border          string
}

var (
	// ClearedStyle resets every property the error style sets, so that a
	// cleared region looks the same whatever it displayed before.
	ClearedStyle = Style{
		Padding:         "0",
		BackgroundColor: "transparent",
	}

	// ErrorStyle is applied together with ErrorMessage.
	ErrorStyle = Style{
		Padding:         "10px",
		BackgroundColor: "#ffdddd",
		Color:           "red",
		Border:          "1px solid red",
	}
)

// StyleFor returns the style matching a region state.
func StyleFor(s State) Style {
	if s == ShowingError {
		return ErrorStyle
	}
	return ClearedStyle
}

// CSS renders the style as an inline declaration list, omitting empty
// properties.
func (s Style) CSS() string {
	decls := make([]string, 0, 4)
	for _, d := range [][2]string{
		{"padding", s.Padding},
		{"background-color", s.BackgroundColor},
		{"color", s.Color},
		{"border", s.Border},
	} {
		if d[1] != "" {
			decls = append(decls, d[0]+": "+d[1])
		}
	}
	return strings.Join(decls, "; ")
}
