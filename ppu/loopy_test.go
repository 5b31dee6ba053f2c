package ppu

import "testing"

func TestLoopyAccessors(t *testing.T) {
	cases := []struct {
		data                     uint16
		wantCoarseX, wantCoarseY uint16
		wantFineY                uint16
		wantNTBase               uint16
	}{
		{0b0000_0000_0000_0000, 0, 0, 0, 0x2000},
		{0b0111_1011_1001_1000, 0b11000, 0b11100, 0b111, 0x2800},
		{0b0011_0111_1001_0111, 0b10111, 0b11100, 0b011, 0x2400},
		{0b0011_1111_1001_0111, 0b10111, 0b11100, 0b011, 0x2C00},
	}

	for i, tc := range cases {
		l := loopy{tc.data}
		if got := l.coarseX(); got != tc.wantCoarseX {
			t.Errorf("%d: coarseX = %05b, want %05b", i, got, tc.wantCoarseX)
		}
		if got := l.coarseY(); got != tc.wantCoarseY {
			t.Errorf("%d: coarseY = %05b, want %05b", i, got, tc.wantCoarseY)
		}
		if got := l.fineY(); got != tc.wantFineY {
			t.Errorf("%d: fineY = %03b, want %03b", i, got, tc.wantFineY)
		}
		if got := l.nametableBase(); got != tc.wantNTBase {
			t.Errorf("%d: nametableBase = %#04x, want %#04x", i, got, tc.wantNTBase)
		}
	}
}

func TestLoopySetters(t *testing.T) {
	var l loopy
	l.setCoarseX(0b10101)
	if got := l.coarseX(); got != 0b10101 {
		t.Errorf("coarseX = %05b, want %05b", got, 0b10101)
	}
	l.setCoarseY(0b11011)
	if got := l.coarseY(); got != 0b11011 {
		t.Errorf("coarseY = %05b, want %05b", got, 0b11011)
	}
	l.setFineY(0b101)
	if got := l.fineY(); got != 0b101 {
		t.Errorf("fineY = %03b, want %03b", got, 0b101)
	}
	l.setNametableSelect(0b11)
	if got := l.nametableBase(); got != 0x2C00 {
		t.Errorf("nametableBase = %#04x, want 0x2C00", got)
	}

	// Setting one field must not disturb the others.
	if got := l.coarseX(); got != 0b10101 {
		t.Errorf("coarseX after other setters = %05b, want %05b", got, 0b10101)
	}
}
