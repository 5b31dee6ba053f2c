package ppu

// sprite decodes one 4-byte OAM entry into its component fields, per
// https://www.nesdev.org/wiki/PPU_OAM
type sprite struct {
	y       uint8
	tile    uint8
	palette uint8
	behind  bool
	flipH   bool
	flipV   bool
	x       uint8
}

func spriteFromBytes(in []uint8) sprite {
	// 76543210 -> in[2]
	// ||||||||
	// ||||||++- Palette (4 to 7) of sprite
	// |||+++--- Unimplemented (read 0)
	// ||+------ Priority (0: in front of background; 1: behind background)
	// |+------- Flip sprite horizontally
	// +-------- Flip sprite vertically
	attr := in[2]
	return sprite{
		y:       in[0],
		tile:    in[1],
		palette: attr & 0x03,
		behind:  attr&0x20 != 0,
		flipH:   attr&0x40 != 0,
		flipV:   attr&0x80 != 0,
		x:       in[3],
	}
}
