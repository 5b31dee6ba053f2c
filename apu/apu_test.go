package apu

import "testing"

func TestWriteDoesNotPanicAcrossRegisterRange(t *testing.T) {
	a := New()
	addrs := []uint16{0x4000, 0x4003, 0x4004, 0x4007, 0x4008, 0x400B,
		0x400C, 0x400F, 0x4010, 0x4013, 0x4015, 0x4017}
	for _, addr := range addrs {
		a.Write(addr, 0xFF)
	}
}

func TestPulseChannelDecodesDutyAndVolume(t *testing.T) {
	a := New()
	a.Write(0x4000, 0b11_0_1_1010)
	if a.pulse1.dutyCycle != 0b11 {
		t.Errorf("dutyCycle = %02b, want %02b", a.pulse1.dutyCycle, 0b11)
	}
	if !a.pulse1.constantVol {
		t.Error("constantVol should be set")
	}
	if a.pulse1.volume != 0b1010 {
		t.Errorf("volume = %04b, want %04b", a.pulse1.volume, 0b1010)
	}
}

func TestFrameCounterModeAndIRQInhibit(t *testing.T) {
	a := New()
	a.Write(0x4017, 0x80)
	if !a.frameMode {
		t.Error("frameMode should select 5-step sequence when bit 7 is set")
	}
	if !a.frameIRQEnable {
		t.Error("frame IRQ should stay enabled when the inhibit bit (6) is clear")
	}

	a.Write(0x4017, 0x40)
	if a.frameIRQEnable {
		t.Error("frame IRQ should be inhibited when bit 6 is set")
	}
}

func TestTickAdvancesCycleCounter(t *testing.T) {
	a := New()
	for i := 0; i < 100; i++ {
		a.Tick()
	}
	if a.cycles != 100 {
		t.Errorf("cycles = %d, want 100", a.cycles)
	}
}
