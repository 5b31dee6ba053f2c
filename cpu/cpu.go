// Package cpu implements the NES's 6502 core: fetch-decode-execute,
// flag arithmetic, addressing modes, interrupts, and OAM DMA stall
// accounting.
package cpu

import "fmt"

// Status register bits. https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	FlagCarry            = 1 << 0 // C
	FlagZero             = 1 << 1 // Z
	FlagInterruptDisable = 1 << 2 // I
	FlagDecimal          = 1 << 3 // D
	FlagBreak            = 1 << 4 // B
	FlagUnused           = 1 << 5 // always reads 1
	FlagOverflow         = 1 << 6 // V
	FlagNegative         = 1 << 7 // N
)

// 6502 interrupt vectors. https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
)

const stackPage = 0x0100

// Bus is the CPU's only window onto the rest of the machine. It
// replaces a back-reference to the console with a single capability
// the CPU can be constructed against in isolation.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// CPU holds all MOS 6502 register and timing state.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	Status  uint8

	Cycles uint64 // monotonic cycle count since reset

	stall      int
	pendingNMI bool
	pendingIRQ bool

	bus Bus
}

// New constructs a CPU wired to bus and resets it, loading PC from
// the reset vector.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset re-initializes registers to their documented power-up state
// and loads PC from the reset vector. It does not touch the bus
// beyond reading the vector, so RAM and mapper state survive.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Status = FlagUnused | FlagInterruptDisable
	c.stall = 0
	c.pendingNMI = false
	c.pendingIRQ = false
	c.PC = c.read16(vectorReset)
}

// TriggerNMI latches a non-maskable interrupt, serviced before the
// next instruction fetch. The harness calls this when ppu.Step reports
// an NMI; the CPU never reaches back into the PPU directly.
func (c *CPU) TriggerNMI() {
	c.pendingNMI = true
}

// TriggerIRQ latches a maskable interrupt request. While the
// interrupt-disable flag is set the request is not serviced; it stays
// pending until the flag clears.
func (c *CPU) TriggerIRQ() {
	c.pendingIRQ = true
}

// Step executes one instruction (or, while an OAM DMA stall is
// outstanding, consumes the remaining stall cycles instead) and
// returns the number of CPU cycles it consumed.
func (c *CPU) Step() int {
	if c.stall > 0 {
		n := c.stall
		c.stall = 0
		c.Cycles += uint64(n)
		return n
	}

	if serviced := c.serviceInterrupts(); serviced > 0 {
		c.Cycles += uint64(serviced)
		return serviced
	}

	opcode := c.fetch()
	instr := &opcodeTable[opcode]

	operandStart := c.PC
	addr, pageCrossed := c.resolveAddress(instr.mode)
	cyclesBefore := c.Cycles
	instr.exec(c, addr, instr.mode)

	// Branches add their taken/page-cross penalties to c.Cycles while
	// executing; fold those into this instruction's cost.
	cycles := int(instr.cycles) + int(c.Cycles-cyclesBefore)
	if pageCrossed && instr.extraOnCross {
		cycles++
	}

	// If the instruction didn't itself redirect PC (branch, jump,
	// call, return), skip over its operand bytes now.
	if c.PC == operandStart {
		c.PC += uint16(instr.size) - 1
	}

	c.Cycles = cyclesBefore + uint64(cycles)
	return cycles
}

// fetch reads the opcode byte at PC and advances PC past it.
func (c *CPU) fetch() uint8 {
	op := c.bus.Read(c.PC)
	c.PC++
	return op
}

// serviceInterrupts handles a pending NMI or IRQ ahead of the next
// opcode fetch. NMI takes priority; IRQ is masked by the I flag. It
// returns the number of cycles spent servicing, or 0 if nothing fired.
func (c *CPU) serviceInterrupts() int {
	var vector uint16
	switch {
	case c.pendingNMI:
		c.pendingNMI = false
		vector = vectorNMI
	case c.pendingIRQ && c.Status&FlagInterruptDisable == 0:
		vector = vectorIRQ
	default:
		return 0
	}
	c.pendingIRQ = false

	c.pushAddress(c.PC)
	c.pushByte((c.Status | FlagUnused) &^ FlagBreak)
	c.setFlags(FlagInterruptDisable)
	c.PC = c.read16(vector)
	return 7
}

func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X CYC:%d",
		c.A, c.X, c.Y, c.Status, c.SP, c.PC, c.Cycles)
}

// readByte reads a single byte off the bus.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes a single byte to the bus. $4014 is special-cased
// here rather than inside Bus: the bus performs the actual 256-byte
// OAM copy (it already owns RAM and the PPU), while only the CPU
// knows its own cycle parity and therefore how long to stall.
func (c *CPU) writeByte(addr uint16, value uint8) {
	odd := c.Cycles%2 == 1
	c.bus.Write(addr, value)
	if addr == 0x4014 {
		c.stall += 513
		if odd {
			c.stall++
		}
	}
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.readByte(addr))
	hi := uint16(c.readByte(addr + 1))
	return hi<<8 | lo
}

// read16ZeroPage wraps the high-byte fetch within the zero page, the
// behavior real zero-page indirect addressing depends on.
func (c *CPU) read16ZeroPage(addr uint8) uint16 {
	lo := uint16(c.readByte(uint16(addr)))
	hi := uint16(c.readByte(uint16(addr + 1)))
	return hi<<8 | lo
}

func (c *CPU) stackAddr() uint16 {
	return stackPage + uint16(c.SP)
}

func (c *CPU) pushByte(v uint8) {
	c.writeByte(c.stackAddr(), v)
	c.SP--
}

func (c *CPU) popByte() uint8 {
	c.SP++
	return c.readByte(c.stackAddr())
}

func (c *CPU) pushAddress(addr uint16) {
	c.pushByte(uint8(addr >> 8))
	c.pushByte(uint8(addr))
}

func (c *CPU) popAddress() uint16 {
	lo := uint16(c.popByte())
	hi := uint16(c.popByte())
	return hi<<8 | lo
}

func (c *CPU) setFlags(mask uint8)   { c.Status |= mask }
func (c *CPU) clearFlags(mask uint8) { c.Status &^= mask }

func (c *CPU) setFlag(mask uint8, on bool) {
	if on {
		c.setFlags(mask)
	} else {
		c.clearFlags(mask)
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

// samePage reports whether a and b address the same 256-byte page.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}
