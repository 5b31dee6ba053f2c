package mappers

import (
	"testing"

	"github.com/bdwalton/gintendo/cartridge"
)

func romWithPRGBanks(n int) *cartridge.ROM {
	prg := make([]byte, 0x4000*n)
	for i := range prg {
		prg[i] = byte(i)
	}
	return &cartridge.ROM{PRG: prg, CHR: make([]byte, 0x2000)}
}

func TestNROMSingleBankMirrors(t *testing.T) {
	rom := romWithPRGBanks(1)
	m := newNROM(rom)

	if got, want := m.CPURead(0x8000), rom.PRG[0]; got != want {
		t.Errorf("CPURead(0x8000) = %#x, want %#x", got, want)
	}
	if got, want := m.CPURead(0xC000), rom.PRG[0]; got != want {
		t.Errorf("CPURead(0xC000) = %#x, want %#x (single bank should mirror)", got, want)
	}
}

func TestNROMTwoBanks(t *testing.T) {
	rom := romWithPRGBanks(2)
	m := newNROM(rom)

	if got, want := m.CPURead(0x8000), rom.PRG[0]; got != want {
		t.Errorf("CPURead(0x8000) = %#x, want %#x", got, want)
	}
	if got, want := m.CPURead(0xC000), rom.PRG[0x4000]; got != want {
		t.Errorf("CPURead(0xC000) = %#x, want %#x (high bank is bank 1)", got, want)
	}
}

func TestUxROMBankSwitch(t *testing.T) {
	rom := romWithPRGBanks(4)
	m := newUxROM(rom)

	m.CPUWrite(0x8000, 2)
	if got, want := m.CPURead(0x8000), rom.PRG[2*0x4000]; got != want {
		t.Errorf("after selecting bank 2, CPURead(0x8000) = %#x, want %#x", got, want)
	}
	// Fixed high bank always points at the last bank.
	if got, want := m.CPURead(0xC000), rom.PRG[3*0x4000]; got != want {
		t.Errorf("CPURead(0xC000) = %#x, want %#x", got, want)
	}

	// Out-of-range select masks into range: 4 banks -> mask 3.
	m.CPUWrite(0x8000, 6)
	if m.lowBank != 2 {
		t.Errorf("lowBank = %d, want 2 (6 AND 3)", m.lowBank)
	}
}

func TestCNROMChrBankSwitch(t *testing.T) {
	rom := &cartridge.ROM{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000*2)}
	for i := range rom.CHR {
		rom.CHR[i] = byte(i)
	}
	m := newCNROM(rom)

	m.CPUWrite(0x8000, 1)
	if got, want := m.PPURead(0x0000), rom.CHR[0x2000]; got != want {
		t.Errorf("PPURead(0) after selecting bank 1 = %#x, want %#x", got, want)
	}
}

func TestCHRRAMWritesAllowed(t *testing.T) {
	rom := &cartridge.ROM{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000), CHRIsRAM: true}
	m := newNROM(rom)

	m.PPUWrite(5, 0x42)
	if got := m.PPURead(5); got != 0x42 {
		t.Errorf("PPURead(5) = %#x, want 0x42", got)
	}
}

func TestCHRROMWritesDropped(t *testing.T) {
	rom := &cartridge.ROM{PRG: make([]byte, 0x4000), CHR: make([]byte, 0x2000)}
	m := newNROM(rom)

	m.PPUWrite(5, 0x42)
	if got := m.PPURead(5); got != 0 {
		t.Errorf("PPURead(5) = %#x, want 0 (CHR-ROM write should be silently dropped)", got)
	}
}

func TestNewFallsBackToNROMForUnsupportedMapper(t *testing.T) {
	rom := romWithPRGBanks(1)
	rom.MapperID = 1 // MMC1, unsupported

	m, err := New(rom)
	if err == nil {
		t.Fatal("expected a non-nil diagnostic error for unsupported mapper id")
	}
	if _, ok := m.(*nrom); !ok {
		t.Errorf("New() mapper type = %T, want *nrom fallback", m)
	}
}
