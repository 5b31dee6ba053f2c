// Package mappers implements the cartridge mapper families this core
// understands: NROM, UxROM and CNROM (iNES mapper ids 0, 2, 3).
package mappers

import (
	"fmt"

	"github.com/bdwalton/gintendo/cartridge"
)

// Mapper translates CPU and PPU addresses into cartridge PRG/CHR
// storage, and tracks whatever bank-switching state the cartridge
// circuitry carries.
type Mapper interface {
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, value uint8)
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, value uint8)
	Mirroring() cartridge.Mirroring
}

// baseMapper holds the state every mapper family shares: the
// underlying PRG/CHR storage and the cartridge's mirroring mode.
type baseMapper struct {
	rom      *cartridge.ROM
	prgBanks int
	chrBanks int
}

func newBaseMapper(rom *cartridge.ROM) baseMapper {
	return baseMapper{
		rom:      rom,
		prgBanks: rom.PRGBanks(),
		chrBanks: rom.CHRBanks(),
	}
}

func (b *baseMapper) Mirroring() cartridge.Mirroring {
	return b.rom.Mirroring
}

// mask clamps a bank-select write into range: value AND (count-1).
// count is assumed to be a power of two, as NES cartridges always are.
func mask(value uint8, count int) uint8 {
	return value & uint8(count-1)
}

// New builds the Mapper matching rom's mapper id. Unsupported ids
// fall back to NROM behavior: a diagnostic error is returned
// alongside a usable, if likely incorrect, mapper.
func New(rom *cartridge.ROM) (Mapper, error) {
	switch rom.MapperID {
	case 0:
		return newNROM(rom), nil
	case 2:
		return newUxROM(rom), nil
	case 3:
		return newCNROM(rom), nil
	default:
		return newNROM(rom), fmt.Errorf("mappers: unsupported mapper id %d, falling back to NROM", rom.MapperID)
	}
}
