package controller

import "testing"

func TestLatchSequence(t *testing.T) {
	var c Controller
	// A, Select, Left pressed (LSB = A).
	c.SetButton(A, true)
	c.SetButton(Select, true)
	c.SetButton(Left, true)

	c.Write(1) // strobe high
	c.Write(0) // strobe low, shift register now frozen at buttons

	want := []uint8{1, 0, 1, 0, 0, 0, 1, 0}
	for i, w := range want {
		if got := c.Read() & 0x01; got != w {
			t.Errorf("read %d: LSB = %d, want %d", i, got, w)
		}
	}
}

func TestOpenBusAfterEightReads(t *testing.T) {
	var c Controller
	c.Write(1)
	c.Write(0)

	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 3; i++ {
		if got := c.Read() & 0x01; got != 1 {
			t.Errorf("read past end of shift register: LSB = %d, want 1", got)
		}
	}
}

func TestBit6AlwaysSet(t *testing.T) {
	var c Controller
	c.Write(1)
	c.Write(0)
	if got := c.Read() & 0x40; got != 0x40 {
		t.Errorf("bit 6 = %#x, want 0x40 set", got)
	}
}

func TestStrobeHighAlwaysReturnsA(t *testing.T) {
	var c Controller
	c.SetButton(A, true)
	c.Write(1) // strobe held high

	for i := 0; i < 4; i++ {
		if got := c.Read() & 0x01; got != 1 {
			t.Errorf("read %d while strobe high: LSB = %d, want 1 (A held)", i, got)
		}
	}
}

func TestSetButtonClearsBit(t *testing.T) {
	var c Controller
	c.SetButton(B, true)
	c.SetButton(B, false)
	c.Write(1)
	c.Write(0)
	if got := c.Read() & 0x01; got != 0 {
		t.Errorf("B released: LSB = %d, want 0", got)
	}
}
