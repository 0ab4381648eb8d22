// internal/display/panel.go
package display

import "errors"

// Fixed layout: banner on row 0, value and unit on row 1.
// "Rressure" is the legend the original panel ships with.
const (
	bannerTop    = "    Rressure   "
	bannerBottom = "           g    "

	valueRow = 1
	valueCol = 5

	// ValueDigits is the fixed width of the rendered reading.
	ValueDigits = 5
)

// Panel owns the fixed screen layout and renders pressure readings into
// it. It never reads back from the display.
type Panel struct {
	d Display
}

// NewPanel initialises the display and paints the static layout.
func NewPanel(d Display) (*Panel, error) {
	if d == nil {
		return nil, errors.New("display: panel requires a display")
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	if err := d.Goto(0, 0); err != nil {
		return nil, err
	}
	if err := d.WriteString(bannerTop); err != nil {
		return nil, err
	}
	if err := d.Goto(1, 0); err != nil {
		return nil, err
	}
	if err := d.WriteString(bannerBottom); err != nil {
		return nil, err
	}
	return &Panel{d: d}, nil
}

// ShowPressure writes the reading as five decimal digits at the fixed
// value position, leading zeros included. Each digit is extracted by
// division and modulo so the width never varies.
func (p *Panel) ShowPressure(value uint16) error {
	if err := p.d.Goto(valueRow, valueCol); err != nil {
		return err
	}

	div := uint32(10000)
	v := uint32(value)
	for i := 0; i < ValueDigits; i++ {
		digit := byte(v/div%10) + '0'
		if err := p.d.WriteChar(digit); err != nil {
			return err
		}
		div /= 10
	}
	return nil
}
