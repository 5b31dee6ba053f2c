package ppu

import "testing"

func TestMaskRegisterMirrorsEveryEightBytes(t *testing.T) {
	cases := []struct {
		addr uint16
		want Register
	}{
		{0x2000, RegPPUCTRL},
		{0x2007, RegPPUDATA},
		{0x2008, RegPPUCTRL},  // mirror starts over
		{0x3FFF, RegPPUDATA},  // last mirrored byte below $4000
		{0x200D, RegPPUSCROLL},
	}
	for _, tc := range cases {
		if got := MaskRegister(tc.addr); got != tc.want {
			t.Errorf("MaskRegister(%#04x) = %d, want %d", tc.addr, got, tc.want)
		}
	}
}
