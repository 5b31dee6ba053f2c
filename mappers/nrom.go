package mappers

import "github.com/bdwalton/gintendo/cartridge"

// nrom implements mapper id 0: one or two fixed 16 KiB PRG banks, no
// bank switching. CHR is read-only unless the cartridge supplies
// CHR-RAM.
type nrom struct {
	baseMapper
}

func newNROM(rom *cartridge.ROM) *nrom {
	return &nrom{baseMapper: newBaseMapper(rom)}
}

func (m *nrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0xC000:
		// With a single PRG bank, $C000-$FFFF mirrors $8000-$BFFF:
		// prgBanks-1 == 0 for a 16 KiB cartridge.
		return m.rom.PRG[(m.prgBanks-1)*0x4000+int(addr-0xC000)]
	case addr >= 0x8000:
		return m.rom.PRG[int(addr-0x8000)]
	default:
		return 0
	}
}

func (m *nrom) CPUWrite(addr uint16, value uint8) {
	// NROM has no bank registers; writes to PRG space are no-ops.
}

func (m *nrom) PPURead(addr uint16) uint8 {
	return m.rom.CHR[addr]
}

func (m *nrom) PPUWrite(addr uint16, value uint8) {
	if m.rom.CHRIsRAM {
		m.rom.CHR[addr] = value
	}
}
