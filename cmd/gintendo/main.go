// Command gintendo runs an iNES ROM through the gintendo core and
// displays it in an ebiten window.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"

	"github.com/bdwalton/gintendo/cartridge"
	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/controller"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/hajimehoshi/ebiten/v2"
)

func rgbaAt(frame ppu.Frame, off int) color.Color {
	return color.RGBA{R: frame[off], G: frame[off+1], B: frame[off+2], A: 0xff}
}

var romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")

// keymap is the canonical default controller mapping: Z=A, X=B,
// Return=Start, Right-Shift=Select, arrows=D-Pad.
var keymap = []struct {
	key    ebiten.Key
	button controller.Button
}{
	{ebiten.KeyZ, controller.A},
	{ebiten.KeyX, controller.B},
	{ebiten.KeyEnter, controller.Start},
	{ebiten.KeyShiftRight, controller.Select},
	{ebiten.KeyUp, controller.Up},
	{ebiten.KeyDown, controller.Down},
	{ebiten.KeyLeft, controller.Left},
	{ebiten.KeyRight, controller.Right},
}

// game adapts console.Emulator to the ebiten.Game interface. The core
// itself has no notion of ebiten; all windowing glue lives here.
type game struct {
	emu   *console.Emulator
	frame ppu.Frame
}

func (g *game) Update() error {
	for _, m := range keymap {
		g.emu.SetButton(1, m.button, ebiten.IsKeyPressed(m.key))
	}
	g.frame = g.emu.StepFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for y := 0; y < ppu.NES_RES_HEIGHT; y++ {
		for x := 0; x < ppu.NES_RES_WIDTH; x++ {
			off := (y*ppu.NES_RES_WIDTH + x) * 3
			screen.Set(x, y, rgbaAt(g.frame, off))
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.NES_RES_WIDTH, ppu.NES_RES_HEIGHT
}

func main() {
	flag.Parse()

	f, err := os.Open(*romFile)
	if err != nil {
		log.Fatalf("opening ROM: %v", err)
	}
	defer f.Close()

	rom, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}

	emu := console.New()
	if err := emu.LoadROM(rom); err != nil {
		log.Printf("LoadROM: %v (continuing with NROM fallback)", err)
	}

	ebiten.SetWindowSize(ppu.NES_RES_WIDTH*2, ppu.NES_RES_HEIGHT*2)
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{emu: emu}); err != nil {
		log.Fatal(err)
	}
}
