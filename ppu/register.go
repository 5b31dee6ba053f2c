package ppu

// Register identifies one of the 8 CPU-visible PPU registers, mirrored
// every 8 bytes across $2000-$3FFF. The CPU-side memory bus is
// responsible for masking a raw address down to one of these before
// calling into the PPU; the PPU itself never sees the full address.
type Register uint8

const (
	RegPPUCTRL Register = iota
	RegPPUMASK
	RegPPUSTATUS
	RegOAMADDR
	RegOAMDATA
	RegPPUSCROLL
	RegPPUADDR
	RegPPUDATA
)

// MaskRegister reduces a raw CPU bus address in $2000-$3FFF to its
// mirrored register index.
func MaskRegister(addr uint16) Register {
	return Register(addr & 0x0007)
}
