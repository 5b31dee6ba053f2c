package mappers

import "github.com/bdwalton/gintendo/cartridge"

// cnrom implements mapper id 3: fixed PRG (like NROM, typically 1 or
// 2 banks) and a switchable 8 KiB CHR bank.
type cnrom struct {
	baseMapper
	chrBank uint8
}

func newCNROM(rom *cartridge.ROM) *cnrom {
	return &cnrom{baseMapper: newBaseMapper(rom)}
}

func (m *cnrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0xC000:
		return m.rom.PRG[(m.prgBanks-1)*0x4000+int(addr-0xC000)]
	case addr >= 0x8000:
		return m.rom.PRG[int(addr-0x8000)]
	default:
		return 0
	}
}

func (m *cnrom) CPUWrite(addr uint16, value uint8) {
	m.chrBank = mask(value, m.chrBanks)
}

func (m *cnrom) PPURead(addr uint16) uint8 {
	return m.rom.CHR[int(m.chrBank)*0x2000+int(addr)]
}

func (m *cnrom) PPUWrite(addr uint16, value uint8) {
	if m.rom.CHRIsRAM {
		m.rom.CHR[int(m.chrBank)*0x2000+int(addr)] = value
	}
}
