package ks0108

// Command encoding for the KS0108 instruction set.
//
// The numeric parameter of an instruction is presented to the chip with its
// bit order reversed; this mirrors how the data bus lines are wired on the
// chip, it is not an encoding choice.
const (
	cmdDisplayBase   = 0b01111100 // display on/off, enable flag in bit 7
	cmdStartLineBase = 0b00000011 // start line in bits 2..7
	cmdSetPageBase   = 0b11101    // page (reversed) in bits 5..7
	cmdSetColumnBase = 0b10       // column (reversed) in bits 2..7
)

// reverseBits reverses the lowest width bits of v.
func reverseBits(v byte, width uint) byte {
	var r byte
	for i := uint(0); i < width; i++ {
		if v&(1<<i) != 0 {
			r |= 1 << (width - 1 - i)
		}
	}
	return r
}

// cmdSetColumn encodes a set-column instruction for a column local to one
// chip (0..63).
func cmdSetColumn(column byte) byte {
	return reverseBits(column, 6)<<2 | cmdSetColumnBase
}

// cmdSetPage encodes a set-page instruction (page 0..7).
func cmdSetPage(page byte) byte {
	return reverseBits(page, 3)<<5 | cmdSetPageBase
}

// cmdSetStartLine encodes a set-start-line instruction (line 0..63). The
// line parameter is not bit-reversed.
func cmdSetStartLine(line byte) byte {
	return cmdStartLineBase | line<<2
}

// cmdSetDisplayEnable encodes the display on/off instruction.
func cmdSetDisplayEnable(on bool) byte {
	if on {
		return cmdDisplayBase | 1<<7
	}
	return cmdDisplayBase
}
