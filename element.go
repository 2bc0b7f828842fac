package guigrid

import "fmt"

// Element is the capability surface of a single UI element
// owned by the automation host.
//
// Implementations are supplied by whatever resolves element IDs
// within a session. Every method is a blocking call into the host
// and may fail if the host is gone or the element went stale.
// An Element must not be used after the session that produced it was closed.
type Element interface {
	// ID returns the host's path-like identifier of the element.
	ID() (string, error)
	// Type returns the host's type name, for example "GuiGridView".
	Type() (string, error)
	Name() (string, error)
	Text() (string, error)
	SetText(text string) error
	// Changeable reports if the element accepts input.
	Changeable() (bool, error)
	// Bounds returns the screen geometry of the element.
	Bounds() (Bounds, error)
	// Parent returns the containing element or nil for a top level element.
	Parent() (Element, error)
	Children() ([]Element, error)
}

// Bounds is the on-screen geometry of an Element in pixels.
type Bounds struct {
	Left   int
	Top    int
	Width  int
	Height int
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", b.Width, b.Height, b.Left, b.Top)
}

// SetElementText sets the text of e if it is changeable
// or returns an error wrapping ErrNotEditable.
func SetElementText(e Element, text string) error {
	changeable, err := e.Changeable()
	if err != nil {
		return &ExternalCallError{Op: "Changeable", Row: -1, Col: -1, Err: err}
	}
	if !changeable {
		return fmt.Errorf("SetText: %w", ErrNotEditable)
	}
	err = e.SetText(text)
	if err != nil {
		return &ExternalCallError{Op: "SetText", Row: -1, Col: -1, Err: err}
	}
	return nil
}
