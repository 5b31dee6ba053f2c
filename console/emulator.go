package console

import (
	"github.com/bdwalton/gintendo/apu"
	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/controller"
	"github.com/bdwalton/gintendo/cpu"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/ppu"
)

// cyclesPerFrame is the NTSC CPU-cycle budget the harness advances
// per step_frame call: 29,781 cycles, chosen to land VBlank at the
// same point every frame.
const cyclesPerFrame = 29781

// ppuDotsPerCPUCycle is the fixed PPU:CPU clock ratio.
const ppuDotsPerCPUCycle = 3

// Emulator owns every NES component for the lifetime of a loaded ROM
// and drives the frame loop. It is not safe for concurrent use: the
// host must serialize calls to StepFrame/SetButton/InjectCheat/Reset,
// exactly as a single-threaded front-end would.
type Emulator struct {
	cpu *cpu.CPU
	ppu *ppu.PPU
	apu *apu.APU
	bus *bus

	rom *cartridge.ROM
}

// New returns an Emulator with no ROM loaded. Call LoadROM before
// StepFrame.
func New() *Emulator {
	return &Emulator{}
}

// LoadROM takes an already parsed rom and (re)builds the mapper, PPU, APU, bus and CPU
// around it, replacing any previously loaded cartridge. An
// unsupported mapper id still yields a usable (NROM-shaped) emulator;
// the returned error is diagnostic, not fatal.
func (e *Emulator) LoadROM(rom *cartridge.ROM) error {
	m, err := mappers.New(rom)

	e.rom = rom
	e.ppu = ppu.New(m, rom.Mirroring)
	e.apu = apu.New()
	e.bus = newBus(m, e.ppu, e.apu)
	e.bus.reset()
	e.cpu = cpu.New(e.bus)
	return err
}

// Reset re-initializes CPU and PPU state, keeping the loaded ROM,
// mapper state, RAM and SRAM untouched. It is idempotent.
func (e *Emulator) Reset() {
	e.cpu.Reset()
	e.ppu.Reset()
}

// StepFrame runs the CPU/PPU/APU interleave until at least
// cyclesPerFrame CPU cycles have elapsed, then returns the frame just
// rendered.
func (e *Emulator) StepFrame() ppu.Frame {
	cycles := 0
	for cycles < cyclesPerFrame {
		c := e.cpu.Step()
		if nmi := e.ppu.Step(ppuDotsPerCPUCycle * c); nmi {
			e.cpu.TriggerNMI()
		}
		e.apu.Tick()
		cycles += c
	}
	return e.ppu.Frame()
}

// SetButton changes whether button is held on the given controller
// port (1 or 2). Any other port number is a no-op.
func (e *Emulator) SetButton(port int, button controller.Button, pressed bool) {
	switch port {
	case 1:
		e.bus.pad1.SetButton(button, pressed)
	case 2:
		e.bus.pad2.SetButton(button, pressed)
	}
}

// InjectCheat writes value into internal RAM at addr AND 0x7FF. It is
// a diagnostic hook, not a Game Genie engine.
func (e *Emulator) InjectCheat(addr uint16, value uint8) {
	e.bus.ram[addr&0x07FF] = value
}

// DebugRead probes the bus without side effects a real CPU read would
// have. Reads of addresses that would otherwise mutate latches (e.g.
// PPUSTATUS clearing VBlank) are diverted: callers wanting that must
// go through the normal CPU read path instead.
func (e *Emulator) DebugRead(addr uint16) uint8 {
	if addr >= ramMirror && addr < ppuMirror {
		return 0 // PPU register reads are side-effecting; refuse them here
	}
	if addr == regController1 || addr == regController2 {
		return 0 // controller reads shift the latch; refuse them too
	}
	return e.bus.Read(addr)
}
