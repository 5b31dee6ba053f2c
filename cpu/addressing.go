package cpu

// addrMode identifies one of the 6502's addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type addrMode uint8

const (
	modeImplicit addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect // JMP only
	modeIndirectX
	modeIndirectY
)

// resolveAddress computes the effective address for mode, reading any
// operand bytes at PC without advancing it; Step() skips past them
// afterward based on the opcode's declared size. It returns whether a
// page boundary was crossed, which some instructions use to add an
// extra cycle.
func (c *CPU) resolveAddress(mode addrMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case modeImplicit, modeAccumulator, modeRelative:
		// Branches compute their own target at branch time,
		// against the PC as it stands then; nothing to do here.
		return 0, false
	case modeImmediate:
		return c.PC, false
	case modeZeroPage:
		return uint16(c.readByte(c.PC)), false
	case modeZeroPageX:
		return uint16(c.readByte(c.PC) + c.X), false
	case modeZeroPageY:
		return uint16(c.readByte(c.PC) + c.Y), false
	case modeAbsolute:
		return c.read16(c.PC), false
	case modeAbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		return addr, !samePage(base, addr)
	case modeAbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		return addr, !samePage(base, addr)
	case modeIndirect:
		ptr := c.read16(c.PC)
		return c.readIndirectBug(ptr), false
	case modeIndirectX:
		zp := c.readByte(c.PC) + c.X
		return c.read16ZeroPage(zp), false
	case modeIndirectY:
		zp := c.readByte(c.PC)
		base := c.read16ZeroPage(zp)
		addr = base + uint16(c.Y)
		return addr, !samePage(base, addr)
	default:
		panic("cpu: unhandled addressing mode")
	}
}

// readIndirectBug reproduces the documented 6502 JMP ($xxFF) bug: the
// high byte is fetched from the start of the same page rather than
// the next page.
func (c *CPU) readIndirectBug(ptr uint16) uint16 {
	lo := uint16(c.readByte(ptr))
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := uint16(c.readByte(hiAddr))
	return hi<<8 | lo
}

// branchTarget computes the destination of a relative branch from the
// operand byte at PC, and whether the target lies on a different page
// from the branch opcode itself. Branches read PC directly rather than
// going through resolveAddress, since the target depends on PC *after*
// the 2-byte instruction.
func (c *CPU) branchTarget() (addr uint16, pageCrossed bool) {
	offset := int8(c.readByte(c.PC))
	opcodeAddr := c.PC - 1
	from := c.PC + 1
	addr = uint16(int32(from) + int32(offset))
	return addr, !samePage(opcodeAddr, addr)
}
