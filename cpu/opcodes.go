package cpu

// instr describes one entry of the 256-slot opcode dispatch table:
// name (for debugging), addressing mode, total instruction size in
// bytes, baseline cycle cost, whether a page cross adds a cycle, and
// the function that carries out the operation.
type instr struct {
	name         string
	mode         addrMode
	size         uint8
	cycles       uint8
	extraOnCross bool
	exec         func(c *CPU, addr uint16, mode addrMode)
}

// opcodeTable is indexed directly by opcode byte. Any opcode not
// assigned below keeps the default init fills in first, a 1-byte,
// 2-cycle NOP,
// which is exactly the documented behavior for anything outside the
// 151 official opcodes.
var opcodeTable [256]instr

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = instr{name: "NOP", mode: modeImplicit, size: 1, cycles: 2, exec: opNOP}
	}

	set := func(op uint8, name string, mode addrMode, size, cycles uint8, extra bool, fn func(*CPU, uint16, addrMode)) {
		opcodeTable[op] = instr{name: name, mode: mode, size: size, cycles: cycles, extraOnCross: extra, exec: fn}
	}

	// Loads
	set(0xA9, "LDA", modeImmediate, 2, 2, false, opLDA)
	set(0xA5, "LDA", modeZeroPage, 2, 3, false, opLDA)
	set(0xB5, "LDA", modeZeroPageX, 2, 4, false, opLDA)
	set(0xAD, "LDA", modeAbsolute, 3, 4, false, opLDA)
	set(0xBD, "LDA", modeAbsoluteX, 3, 4, true, opLDA)
	set(0xB9, "LDA", modeAbsoluteY, 3, 4, true, opLDA)
	set(0xA1, "LDA", modeIndirectX, 2, 6, false, opLDA)
	set(0xB1, "LDA", modeIndirectY, 2, 5, true, opLDA)

	set(0xA2, "LDX", modeImmediate, 2, 2, false, opLDX)
	set(0xA6, "LDX", modeZeroPage, 2, 3, false, opLDX)
	set(0xB6, "LDX", modeZeroPageY, 2, 4, false, opLDX)
	set(0xAE, "LDX", modeAbsolute, 3, 4, false, opLDX)
	set(0xBE, "LDX", modeAbsoluteY, 3, 4, true, opLDX)

	set(0xA0, "LDY", modeImmediate, 2, 2, false, opLDY)
	set(0xA4, "LDY", modeZeroPage, 2, 3, false, opLDY)
	set(0xB4, "LDY", modeZeroPageX, 2, 4, false, opLDY)
	set(0xAC, "LDY", modeAbsolute, 3, 4, false, opLDY)
	set(0xBC, "LDY", modeAbsoluteX, 3, 4, true, opLDY)

	// Stores
	set(0x85, "STA", modeZeroPage, 2, 3, false, opSTA)
	set(0x95, "STA", modeZeroPageX, 2, 4, false, opSTA)
	set(0x8D, "STA", modeAbsolute, 3, 4, false, opSTA)
	set(0x9D, "STA", modeAbsoluteX, 3, 5, false, opSTA)
	set(0x99, "STA", modeAbsoluteY, 3, 5, false, opSTA)
	set(0x81, "STA", modeIndirectX, 2, 6, false, opSTA)
	set(0x91, "STA", modeIndirectY, 2, 6, false, opSTA)

	set(0x86, "STX", modeZeroPage, 2, 3, false, opSTX)
	set(0x96, "STX", modeZeroPageY, 2, 4, false, opSTX)
	set(0x8E, "STX", modeAbsolute, 3, 4, false, opSTX)

	set(0x84, "STY", modeZeroPage, 2, 3, false, opSTY)
	set(0x94, "STY", modeZeroPageX, 2, 4, false, opSTY)
	set(0x8C, "STY", modeAbsolute, 3, 4, false, opSTY)

	// Transfers
	set(0xAA, "TAX", modeImplicit, 1, 2, false, opTAX)
	set(0xA8, "TAY", modeImplicit, 1, 2, false, opTAY)
	set(0xBA, "TSX", modeImplicit, 1, 2, false, opTSX)
	set(0x8A, "TXA", modeImplicit, 1, 2, false, opTXA)
	set(0x9A, "TXS", modeImplicit, 1, 2, false, opTXS)
	set(0x98, "TYA", modeImplicit, 1, 2, false, opTYA)

	// Stack
	set(0x48, "PHA", modeImplicit, 1, 3, false, opPHA)
	set(0x08, "PHP", modeImplicit, 1, 3, false, opPHP)
	set(0x68, "PLA", modeImplicit, 1, 4, false, opPLA)
	set(0x28, "PLP", modeImplicit, 1, 4, false, opPLP)

	// Logical
	set(0x29, "AND", modeImmediate, 2, 2, false, opAND)
	set(0x25, "AND", modeZeroPage, 2, 3, false, opAND)
	set(0x35, "AND", modeZeroPageX, 2, 4, false, opAND)
	set(0x2D, "AND", modeAbsolute, 3, 4, false, opAND)
	set(0x3D, "AND", modeAbsoluteX, 3, 4, true, opAND)
	set(0x39, "AND", modeAbsoluteY, 3, 4, true, opAND)
	set(0x21, "AND", modeIndirectX, 2, 6, false, opAND)
	set(0x31, "AND", modeIndirectY, 2, 5, true, opAND)

	set(0x49, "EOR", modeImmediate, 2, 2, false, opEOR)
	set(0x45, "EOR", modeZeroPage, 2, 3, false, opEOR)
	set(0x55, "EOR", modeZeroPageX, 2, 4, false, opEOR)
	set(0x4D, "EOR", modeAbsolute, 3, 4, false, opEOR)
	set(0x5D, "EOR", modeAbsoluteX, 3, 4, true, opEOR)
	set(0x59, "EOR", modeAbsoluteY, 3, 4, true, opEOR)
	set(0x41, "EOR", modeIndirectX, 2, 6, false, opEOR)
	set(0x51, "EOR", modeIndirectY, 2, 5, true, opEOR)

	set(0x09, "ORA", modeImmediate, 2, 2, false, opORA)
	set(0x05, "ORA", modeZeroPage, 2, 3, false, opORA)
	set(0x15, "ORA", modeZeroPageX, 2, 4, false, opORA)
	set(0x0D, "ORA", modeAbsolute, 3, 4, false, opORA)
	set(0x1D, "ORA", modeAbsoluteX, 3, 4, true, opORA)
	set(0x19, "ORA", modeAbsoluteY, 3, 4, true, opORA)
	set(0x01, "ORA", modeIndirectX, 2, 6, false, opORA)
	set(0x11, "ORA", modeIndirectY, 2, 5, true, opORA)

	set(0x24, "BIT", modeZeroPage, 2, 3, false, opBIT)
	set(0x2C, "BIT", modeAbsolute, 3, 4, false, opBIT)

	// Arithmetic
	set(0x69, "ADC", modeImmediate, 2, 2, false, opADC)
	set(0x65, "ADC", modeZeroPage, 2, 3, false, opADC)
	set(0x75, "ADC", modeZeroPageX, 2, 4, false, opADC)
	set(0x6D, "ADC", modeAbsolute, 3, 4, false, opADC)
	set(0x7D, "ADC", modeAbsoluteX, 3, 4, true, opADC)
	set(0x79, "ADC", modeAbsoluteY, 3, 4, true, opADC)
	set(0x61, "ADC", modeIndirectX, 2, 6, false, opADC)
	set(0x71, "ADC", modeIndirectY, 2, 5, true, opADC)

	set(0xE9, "SBC", modeImmediate, 2, 2, false, opSBC)
	set(0xE5, "SBC", modeZeroPage, 2, 3, false, opSBC)
	set(0xF5, "SBC", modeZeroPageX, 2, 4, false, opSBC)
	set(0xED, "SBC", modeAbsolute, 3, 4, false, opSBC)
	set(0xFD, "SBC", modeAbsoluteX, 3, 4, true, opSBC)
	set(0xF9, "SBC", modeAbsoluteY, 3, 4, true, opSBC)
	set(0xE1, "SBC", modeIndirectX, 2, 6, false, opSBC)
	set(0xF1, "SBC", modeIndirectY, 2, 5, true, opSBC)

	// Compares
	set(0xC9, "CMP", modeImmediate, 2, 2, false, opCMP)
	set(0xC5, "CMP", modeZeroPage, 2, 3, false, opCMP)
	set(0xD5, "CMP", modeZeroPageX, 2, 4, false, opCMP)
	set(0xCD, "CMP", modeAbsolute, 3, 4, false, opCMP)
	set(0xDD, "CMP", modeAbsoluteX, 3, 4, true, opCMP)
	set(0xD9, "CMP", modeAbsoluteY, 3, 4, true, opCMP)
	set(0xC1, "CMP", modeIndirectX, 2, 6, false, opCMP)
	set(0xD1, "CMP", modeIndirectY, 2, 5, true, opCMP)

	set(0xE0, "CPX", modeImmediate, 2, 2, false, opCPX)
	set(0xE4, "CPX", modeZeroPage, 2, 3, false, opCPX)
	set(0xEC, "CPX", modeAbsolute, 3, 4, false, opCPX)

	set(0xC0, "CPY", modeImmediate, 2, 2, false, opCPY)
	set(0xC4, "CPY", modeZeroPage, 2, 3, false, opCPY)
	set(0xCC, "CPY", modeAbsolute, 3, 4, false, opCPY)

	// Increments/decrements
	set(0xE6, "INC", modeZeroPage, 2, 5, false, opINC)
	set(0xF6, "INC", modeZeroPageX, 2, 6, false, opINC)
	set(0xEE, "INC", modeAbsolute, 3, 6, false, opINC)
	set(0xFE, "INC", modeAbsoluteX, 3, 7, false, opINC)
	set(0xE8, "INX", modeImplicit, 1, 2, false, opINX)
	set(0xC8, "INY", modeImplicit, 1, 2, false, opINY)

	set(0xC6, "DEC", modeZeroPage, 2, 5, false, opDEC)
	set(0xD6, "DEC", modeZeroPageX, 2, 6, false, opDEC)
	set(0xCE, "DEC", modeAbsolute, 3, 6, false, opDEC)
	set(0xDE, "DEC", modeAbsoluteX, 3, 7, false, opDEC)
	set(0xCA, "DEX", modeImplicit, 1, 2, false, opDEX)
	set(0x88, "DEY", modeImplicit, 1, 2, false, opDEY)

	// Shifts
	set(0x0A, "ASL", modeAccumulator, 1, 2, false, opASL)
	set(0x06, "ASL", modeZeroPage, 2, 5, false, opASL)
	set(0x16, "ASL", modeZeroPageX, 2, 6, false, opASL)
	set(0x0E, "ASL", modeAbsolute, 3, 6, false, opASL)
	set(0x1E, "ASL", modeAbsoluteX, 3, 7, false, opASL)

	set(0x4A, "LSR", modeAccumulator, 1, 2, false, opLSR)
	set(0x46, "LSR", modeZeroPage, 2, 5, false, opLSR)
	set(0x56, "LSR", modeZeroPageX, 2, 6, false, opLSR)
	set(0x4E, "LSR", modeAbsolute, 3, 6, false, opLSR)
	set(0x5E, "LSR", modeAbsoluteX, 3, 7, false, opLSR)

	set(0x2A, "ROL", modeAccumulator, 1, 2, false, opROL)
	set(0x26, "ROL", modeZeroPage, 2, 5, false, opROL)
	set(0x36, "ROL", modeZeroPageX, 2, 6, false, opROL)
	set(0x2E, "ROL", modeAbsolute, 3, 6, false, opROL)
	set(0x3E, "ROL", modeAbsoluteX, 3, 7, false, opROL)

	set(0x6A, "ROR", modeAccumulator, 1, 2, false, opROR)
	set(0x66, "ROR", modeZeroPage, 2, 5, false, opROR)
	set(0x76, "ROR", modeZeroPageX, 2, 6, false, opROR)
	set(0x6E, "ROR", modeAbsolute, 3, 6, false, opROR)
	set(0x7E, "ROR", modeAbsoluteX, 3, 7, false, opROR)

	// Jumps, calls, returns
	set(0x4C, "JMP", modeAbsolute, 3, 3, false, opJMP)
	set(0x6C, "JMP", modeIndirect, 3, 5, false, opJMP)
	set(0x20, "JSR", modeAbsolute, 3, 6, false, opJSR)
	set(0x60, "RTS", modeImplicit, 1, 6, false, opRTS)
	set(0x40, "RTI", modeImplicit, 1, 6, false, opRTI)

	// Branches
	set(0x90, "BCC", modeRelative, 2, 2, false, opBCC)
	set(0xB0, "BCS", modeRelative, 2, 2, false, opBCS)
	set(0xF0, "BEQ", modeRelative, 2, 2, false, opBEQ)
	set(0x30, "BMI", modeRelative, 2, 2, false, opBMI)
	set(0xD0, "BNE", modeRelative, 2, 2, false, opBNE)
	set(0x10, "BPL", modeRelative, 2, 2, false, opBPL)
	set(0x50, "BVC", modeRelative, 2, 2, false, opBVC)
	set(0x70, "BVS", modeRelative, 2, 2, false, opBVS)

	// Flag ops
	set(0x18, "CLC", modeImplicit, 1, 2, false, opCLC)
	set(0x38, "SEC", modeImplicit, 1, 2, false, opSEC)
	set(0x58, "CLI", modeImplicit, 1, 2, false, opCLI)
	set(0x78, "SEI", modeImplicit, 1, 2, false, opSEI)
	set(0xB8, "CLV", modeImplicit, 1, 2, false, opCLV)
	set(0xD8, "CLD", modeImplicit, 1, 2, false, opCLD)
	set(0xF8, "SED", modeImplicit, 1, 2, false, opSED)

	// System
	set(0x00, "BRK", modeImplicit, 1, 7, false, opBRK)
	set(0xEA, "NOP", modeImplicit, 1, 2, false, opNOP)
}
