// internal/display/display.go
package display

// Display is the character display boundary. Implementations wrap a
// concrete driver; the panel layer above only positions the cursor and
// writes characters.
type Display interface {
	Init() error
	Goto(row, col int) error
	WriteChar(c byte) error
	WriteString(s string) error
}

// Panel geometry of the 16x2 character module.
const (
	Rows = 2
	Cols = 16
)
