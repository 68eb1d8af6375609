// persist_crc.go - CRC-16F/3 checksum over settings records

package main

// crc16Precondition is the initial shift register value.
const crc16Precondition uint16 = 0xBD26

// crc16F3Table is the byte-at-a-time lookup table for the CRC-16F/3
// polynomial.
var crc16F3Table = [256]uint16{
	0x0000, 0x1B2B, 0x3656, 0x2D7D, 0x6CAC, 0x7787, 0x5AFA, 0x41D1,
	0xD958, 0xC273, 0xEF0E, 0xF425, 0xB5F4, 0xAEDF, 0x83A2, 0x9889,
	0xA99B, 0xB2B0, 0x9FCD, 0x84E6, 0xC537, 0xDE1C, 0xF361, 0xE84A,
	0x70C3, 0x6BE8, 0x4695, 0x5DBE, 0x1C6F, 0x0744, 0x2A39, 0x3112,
	0x481D, 0x5336, 0x7E4B, 0x6560, 0x24B1, 0x3F9A, 0x12E7, 0x09CC,
	0x9145, 0x8A6E, 0xA713, 0xBC38, 0xFDE9, 0xE6C2, 0xCBBF, 0xD094,
	0xE186, 0xFAAD, 0xD7D0, 0xCCFB, 0x8D2A, 0x9601, 0xBB7C, 0xA057,
	0x38DE, 0x23F5, 0x0E88, 0x15A3, 0x5472, 0x4F59, 0x6224, 0x790F,
	0x903A, 0x8B11, 0xA66C, 0xBD47, 0xFC96, 0xE7BD, 0xCAC0, 0xD1EB,
	0x4962, 0x5249, 0x7F34, 0x641F, 0x25CE, 0x3EE5, 0x1398, 0x08B3,
	0x39A1, 0x228A, 0x0FF7, 0x14DC, 0x550D, 0x4E26, 0x635B, 0x7870,
	0xE0F9, 0xFBD2, 0xD6AF, 0xCD84, 0x8C55, 0x977E, 0xBA03, 0xA128,
	0xD827, 0xC30C, 0xEE71, 0xF55A, 0xB48B, 0xAFA0, 0x82DD, 0x99F6,
	0x017F, 0x1A54, 0x3729, 0x2C02, 0x6DD3, 0x76F8, 0x5B85, 0x40AE,
	0x71BC, 0x6A97, 0x47EA, 0x5CC1, 0x1D10, 0x063B, 0x2B46, 0x306D,
	0xA8E4, 0xB3CF, 0x9EB2, 0x8599, 0xC448, 0xDF63, 0xF21E, 0xE935,
	0x3B5F, 0x2074, 0x0D09, 0x1622, 0x57F3, 0x4CD8, 0x61A5, 0x7A8E,
	0xE207, 0xF92C, 0xD451, 0xCF7A, 0x8EAB, 0x9580, 0xB8FD, 0xA3D6,
	0x92C4, 0x89EF, 0xA492, 0xBFB9, 0xFE68, 0xE543, 0xC83E, 0xD315,
	0x4B9C, 0x50B7, 0x7DCA, 0x66E1, 0x2730, 0x3C1B, 0x1166, 0x0A4D,
	0x7342, 0x6869, 0x4514, 0x5E3F, 0x1FEE, 0x04C5, 0x29B8, 0x3293,
	0xAA1A, 0xB131, 0x9C4C, 0x8767, 0xC6B6, 0xDD9D, 0xF0E0, 0xEBCB,
	0xDAD9, 0xC1F2, 0xEC8F, 0xF7A4, 0xB675, 0xAD5E, 0x8023, 0x9B08,
	0x0381, 0x18AA, 0x35D7, 0x2EFC, 0x6F2D, 0x7406, 0x597B, 0x4250,
	0xAB65, 0xB04E, 0x9D33, 0x8618, 0xC7C9, 0xDCE2, 0xF19F, 0xEAB4,
	0x723D, 0x6916, 0x446B, 0x5F40, 0x1E91, 0x05BA, 0x28C7, 0x33EC,
	0x02FE, 0x19D5, 0x34A8, 0x2F83, 0x6E52, 0x7579, 0x5804, 0x432F,
	0xDBA6, 0xC08D, 0xEDF0, 0xF6DB, 0xB70A, 0xAC21, 0x815C, 0x9A77,
	0xE378, 0xF853, 0xD52E, 0xCE05, 0x8FD4, 0x94FF, 0xB982, 0xA2A9,
	0x3A20, 0x210B, 0x0C76, 0x175D, 0x568C, 0x4DA7, 0x60DA, 0x7BF1,
	0x4AE3, 0x51C8, 0x7CB5, 0x679E, 0x264F, 0x3D64, 0x1019, 0x0B32,
	0x93BB, 0x8890, 0xA5ED, 0xBEC6, 0xFF17, 0xE43C, 0xC941, 0xD26A,
}

// Crc16 computes the CRC-16F/3 checksum of buf.
func Crc16(buf []byte) uint16 {
	crc := crc16Precondition
	for _, b := range buf {
		crc = crc<<8 ^ crc16F3Table[uint8(crc>>8)^b]
	}
	return crc
}
