// internal/display/display_test.go
package display

import (
	"bytes"
	"strings"
	"testing"
)

func newTestPanel(t *testing.T) (*Panel, *Console) {
	t.Helper()
	c := NewConsole(&bytes.Buffer{})
	p, err := NewPanel(c)
	if err != nil {
		t.Fatalf("NewPanel err=%v", err)
	}
	return p, c
}

func TestNewPanel_PaintsLayout(t *testing.T) {
	_, c := newTestPanel(t)

	if got := c.Line(0); !strings.Contains(got, "Rressure") {
		t.Fatalf("row 0 = %q, banner missing", got)
	}
	if got := c.Line(1); got[11] != 'g' {
		t.Fatalf("row 1 = %q, unit missing at column 11", got)
	}
}

func TestShowPressure_FixedWidth(t *testing.T) {
	cases := []struct {
		value uint16
		want  string
	}{
		{300, "00300"},
		{0, "00000"},
		{7, "00007"},
		{65535, "65535"},
		{1000, "01000"},
	}

	for _, tc := range cases {
		p, c := newTestPanel(t)
		if err := p.ShowPressure(tc.value); err != nil {
			t.Fatalf("ShowPressure(%d) err=%v", tc.value, err)
		}
		if got := c.Line(1)[valueCol : valueCol+ValueDigits]; got != tc.want {
			t.Fatalf("ShowPressure(%d): digits=%q want %q", tc.value, got, tc.want)
		}
	}
}

func TestShowPressure_LeavesLayoutIntact(t *testing.T) {
	p, c := newTestPanel(t)
	if err := p.ShowPressure(300); err != nil {
		t.Fatalf("ShowPressure err=%v", err)
	}
	if got := c.Line(1); got != "     00300 g    " {
		t.Fatalf("row 1 = %q", got)
	}
}

func TestConsole_GotoBounds(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})
	if err := c.Init(); err != nil {
		t.Fatalf("Init err=%v", err)
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}} {
		if err := c.Goto(pos[0], pos[1]); err == nil {
			t.Fatalf("Goto(%d,%d) accepted", pos[0], pos[1])
		}
	}
}

func TestConsole_DropsWritesPastRowEnd(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})
	_ = c.Init()
	_ = c.Goto(0, 0)
	if err := c.WriteString(strings.Repeat("x", Cols+4)); err != nil {
		t.Fatalf("WriteString err=%v", err)
	}
	if got := c.Line(0); got != strings.Repeat("x", Cols) {
		t.Fatalf("row 0 = %q", got)
	}
}

func TestConsole_Render(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)
	p, err := NewPanel(c)
	if err != nil {
		t.Fatalf("NewPanel err=%v", err)
	}
	if err := p.ShowPressure(300); err != nil {
		t.Fatalf("ShowPressure err=%v", err)
	}
	if err := c.Render(); err != nil {
		t.Fatalf("Render err=%v", err)
	}
	if !strings.Contains(out.String(), "00300 g") {
		t.Fatalf("rendered output missing value: %q", out.String())
	}
}
