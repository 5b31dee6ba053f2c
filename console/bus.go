// Package console wires CPU, PPU, APU, mapper, controllers and RAM
// together into the memory bus the CPU actually sees, and exposes the
// frame-loop harness the host front-end drives.
package console

import (
	"github.com/bdwalton/gintendo/apu"
	"github.com/bdwalton/gintendo/controller"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/ppu"
)

// Memory map constants. https://www.nesdev.org/wiki/CPU_memory_map
const (
	ramSize    = 0x0800
	ramMirror  = 0x2000
	ppuMirror  = 0x4000
	ioRegStart = 0x4000
	ioRegEnd   = 0x4020
	sramStart  = 0x6000
	sramEnd    = 0x8000
	sramSize   = sramEnd - sramStart

	regController1 = 0x4016
	regController2 = 0x4017
	regOAMDMA      = 0x4014
)

// bus implements cpu.Bus by routing every CPU-visible address to the
// component that owns it. The PPU reaches the cartridge through the
// mapper directly (ppu.ChrBus); it never goes through this type.
type bus struct {
	ppu    *ppu.PPU
	apu    *apu.APU
	mapper mappers.Mapper

	ram  [ramSize]uint8
	sram [sramSize]uint8

	pad1, pad2 controller.Controller
}

func newBus(m mappers.Mapper, p *ppu.PPU, a *apu.APU) *bus {
	return &bus{mapper: m, ppu: p, apu: a}
}

// Read implements cpu.Bus.
func (b *bus) Read(addr uint16) uint8 {
	switch {
	case addr < ramMirror:
		return b.ram[addr&(ramSize-1)]
	case addr < ppuMirror:
		return b.ppu.ReadRegister(ppu.MaskRegister(addr))
	case addr == regController1:
		return b.pad1.Read()
	case addr == regController2:
		return b.pad2.Read()
	case addr < ioRegEnd:
		return b.apu.Read(addr)
	case addr < sramEnd:
		if addr < sramStart {
			return 0
		}
		return b.sram[addr-sramStart]
	default:
		return b.mapper.CPURead(addr)
	}
}

// Write implements cpu.Bus. $4014 (OAM DMA) is handled here rather
// than inside the CPU: the bus is the only thing that can see both
// RAM and the PPU's OAM table.
func (b *bus) Write(addr uint16, value uint8) {
	switch {
	case addr < ramMirror:
		b.ram[addr&(ramSize-1)] = value
	case addr < ppuMirror:
		b.ppu.WriteRegister(ppu.MaskRegister(addr), value)
	case addr == regOAMDMA:
		b.oamDMA(value)
	case addr == regController1:
		// The strobe line on $4016 is shared by both controller
		// ports; $4017 is read-only for controller 2 and doubles as
		// the APU frame-counter register on writes.
		b.pad1.Write(value)
		b.pad2.Write(value)
	case addr < ioRegEnd:
		b.apu.Write(addr, value)
	case addr < sramEnd:
		if addr >= sramStart {
			b.sram[addr-sramStart] = value
		}
	default:
		b.mapper.CPUWrite(addr, value)
	}
}

// oamDMA copies 256 bytes starting at page·0x100 into OAM, wrapping
// within the table starting at OAMADDR. https://www.nesdev.org/wiki/DMA
func (b *bus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMDMA(i, b.Read(base+uint16(i)))
	}
}

func (b *bus) reset() {
	b.ram = [ramSize]uint8{}
}
