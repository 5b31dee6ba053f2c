package ppu

import "github.com/bdwalton/gintendo/palette"

// renderFrame composites one software-rendered frame into p.frame.
// Run once per frame, after VBlank starts, using whatever v/PPUCTRL/
// PPUMASK/OAM state the game has set up by then.
func (p *PPU) renderFrame() {
	scrollX := (p.v.coarseX() << 3) | uint16(p.x)
	scrollY := (p.v.coarseY() << 3) | p.v.fineY()
	ntBase := p.v.nametableBase()
	bgPT := uint16(0)
	if p.ctrl&CTRL_BACKROUND_PATTERN_ADDR != 0 {
		bgPT = 0x1000
	}

	bg0 := p.readPalette(PALETTE_RAM)
	var bgOpaque [NES_RES_HEIGHT][NES_RES_WIDTH]bool
	for y := 0; y < NES_RES_HEIGHT; y++ {
		for x := 0; x < NES_RES_WIDTH; x++ {
			p.setPixel(x, y, bg0)
		}
	}

	if p.mask&MASK_SHOW_BACKGROUND != 0 {
		p.renderBackground(scrollX, scrollY, ntBase, bgPT, &bgOpaque)
	}
	if p.mask&MASK_SHOW_SPRITES != 0 {
		p.renderSprites(&bgOpaque)
	}
}

func (p *PPU) renderBackground(scrollX, scrollY, ntBase, bgPT uint16, bgOpaque *[NES_RES_HEIGHT][NES_RES_WIDTH]bool) {
	for ty := 0; ty < 30; ty++ {
		for tx := 0; tx < 32; tx++ {
			ntX := (uint16(tx) + scrollX/8) % 32
			ntY := (uint16(ty) + scrollY/8) % 30

			tile := p.read(ntBase + ntY*32 + ntX)
			attr := p.read(ntBase + 0x3C0 + (ntY/4)*8 + (ntX / 4))
			shift := ((ntY % 4) / 2) * 4
			shift += ((ntX % 4) / 2) * 2
			paletteHi := uint16(attr>>shift) & 0x03

			for row := uint16(0); row < 8; row++ {
				lo := p.read(bgPT + uint16(tile)<<4 + row)
				hi := p.read(bgPT + uint16(tile)<<4 + row + 8)
				for col := uint16(0); col < 8; col++ {
					bit := 7 - col
					pix := (lo >> bit) & 1
					pix |= ((hi >> bit) & 1) << 1
					if pix == 0 {
						continue
					}
					idx := p.readPalette(PALETTE_RAM + paletteHi<<2 + uint16(pix))

					fbX := int(uint16(tx)*8+col) - int(scrollX%8)
					fbY := int(uint16(ty)*8+row) - int(scrollY%8)
					if fbX < 0 || fbX >= NES_RES_WIDTH || fbY < 0 || fbY >= NES_RES_HEIGHT {
						continue
					}
					bgOpaque[fbY][fbX] = true
					p.setPixel(fbX, fbY, idx)
				}
			}
		}
	}
}

func (p *PPU) renderSprites(bgOpaque *[NES_RES_HEIGHT][NES_RES_WIDTH]bool) {
	spritePT := uint16(0)
	if p.ctrl&CTRL_SPRITE_PATTERN_ADDR != 0 {
		spritePT = 0x1000
	}

	for i := 63; i >= 0; i-- {
		s := spriteFromBytes(p.oamData[4*i : 4*i+4])
		top := int(s.y) + 1

		for row := uint16(0); row < 8; row++ {
			patRow := row
			if s.flipV {
				patRow = 7 - row
			}
			lo := p.read(spritePT + uint16(s.tile)<<4 + patRow)
			hi := p.read(spritePT + uint16(s.tile)<<4 + patRow + 8)

			for col := uint16(0); col < 8; col++ {
				patCol := col
				if s.flipH {
					patCol = 7 - col
				}
				bit := 7 - patCol
				pix := (lo >> bit) & 1
				pix |= ((hi >> bit) & 1) << 1
				if pix == 0 {
					continue
				}

				fbX := int(s.x) + int(col)
				fbY := top + int(row)
				if fbX < 0 || fbX >= NES_RES_WIDTH || fbY < 0 || fbY >= NES_RES_HEIGHT {
					continue
				}
				if s.behind && bgOpaque[fbY][fbX] {
					continue
				}
				idx := p.readPalette(0x3F10 + uint16(s.palette)<<2 + uint16(pix))
				p.setPixel(fbX, fbY, idx)
			}
		}
	}
}

func (p *PPU) setPixel(x, y int, colorIndex uint8) {
	r, g, b := palette.RGB(colorIndex)
	off := (y*NES_RES_WIDTH + x) * 3
	p.frame[off] = r
	p.frame[off+1] = g
	p.frame[off+2] = b
}
