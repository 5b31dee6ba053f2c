package mappers

import "github.com/bdwalton/gintendo/cartridge"

// uxrom implements mapper id 2: a switchable 16 KiB low bank at
// $8000-$BFFF and a 16 KiB high bank fixed to the last bank in the
// cartridge.
type uxrom struct {
	baseMapper
	lowBank uint8
}

func newUxROM(rom *cartridge.ROM) *uxrom {
	return &uxrom{baseMapper: newBaseMapper(rom)}
}

func (m *uxrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0xC000:
		return m.rom.PRG[(m.prgBanks-1)*0x4000+int(addr-0xC000)]
	case addr >= 0x8000:
		return m.rom.PRG[int(m.lowBank)*0x4000+int(addr-0x8000)]
	default:
		return 0
	}
}

func (m *uxrom) CPUWrite(addr uint16, value uint8) {
	// Any write in $8000-$FFFF selects the low bank.
	m.lowBank = mask(value, m.prgBanks)
}

func (m *uxrom) PPURead(addr uint16) uint8 {
	return m.rom.CHR[addr]
}

func (m *uxrom) PPUWrite(addr uint16, value uint8) {
	if m.rom.CHRIsRAM {
		m.rom.CHR[addr] = value
	}
}
