package ppu

// loopy is the PPU's 15-bit internal VRAM address register, named
// for the nesdev forum user who reverse-engineered its layout. v and
// t are each one of these.
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
type loopy struct {
	data uint16 // only 15 bits used
}

func (l loopy) coarseX() uint16 { return l.data & 0x001F }
func (l loopy) coarseY() uint16 { return (l.data & 0x03E0) >> 5 }
func (l loopy) fineY() uint16   { return (l.data & 0x7000) >> 12 }

// nametableBase returns the CPU-bus nametable address ($2000/$2400/
// $2800/$2C00) selected by this register's nametable-select bits.
func (l loopy) nametableBase() uint16 {
	return 0x2000 | (l.data & 0x0C00)
}

func (l *loopy) setCoarseX(n uint16) {
	l.data = (l.data & 0xFFE0) | (n & 0x001F)
}

func (l *loopy) setCoarseY(n uint16) {
	l.data = (l.data & 0xFC1F) | ((n & 0x001F) << 5)
}

func (l *loopy) setFineY(n uint16) {
	l.data = (l.data & 0x0FFF) | ((n & 0x0007) << 12)
}

func (l *loopy) setNametableSelect(n uint16) {
	l.data = (l.data &^ 0x0C00) | ((n & 0x0003) << 10)
}
