// internal/display/console.go
package display

import (
	"errors"
	"fmt"
	"io"
)

// Console emulates the 16x2 character module on a terminal. It keeps a
// character-cell grid and redraws both rows on Render.
type Console struct {
	w     io.Writer
	cells [Rows][Cols]byte
	row   int
	col   int
}

// NewConsole creates a console display writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Init clears the grid and homes the cursor.
func (c *Console) Init() error {
	for r := 0; r < Rows; r++ {
		for col := 0; col < Cols; col++ {
			c.cells[r][col] = ' '
		}
	}
	c.row, c.col = 0, 0
	return nil
}

// Goto positions the cursor.
func (c *Console) Goto(row, col int) error {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return errors.New("display: cursor out of range")
	}
	c.row, c.col = row, col
	return nil
}

// WriteChar writes one character and advances the cursor. Writes past
// the end of a row are dropped, like the real module's off-screen DDRAM.
func (c *Console) WriteChar(ch byte) error {
	if c.col < Cols {
		c.cells[c.row][c.col] = ch
		c.col++
	}
	return nil
}

// WriteString writes a string character by character.
func (c *Console) WriteString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := c.WriteChar(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// Line returns the current contents of one row.
func (c *Console) Line(row int) string {
	if row < 0 || row >= Rows {
		return ""
	}
	return string(c.cells[row][:])
}

// Render redraws the whole panel.
func (c *Console) Render() error {
	_, err := fmt.Fprintf(c.w, "|%s|\n|%s|\n", c.Line(0), c.Line(1))
	return err
}
