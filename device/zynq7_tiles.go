package device

import "github.com/dcoles/xbitstream/bram"

// tilesXC7Z010 is the fixed RAMB36E1 tile table for XC7Z010, transcribed
// verbatim from the reference device description (x, y, bitstream_offset_bits).
var tilesXC7Z010 = []Tile{
	{X: 0, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x00EB0AC0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x00EB0C00, Kind: bram.KindRAMB36E1}, {X: 0, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x00EB0D40, Kind: bram.KindRAMB36E1}, {X: 0, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x00EB0E80, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x00EB0FC0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x00EB1120, Kind: bram.KindRAMB36E1}, {X: 0, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x00EB1260, Kind: bram.KindRAMB36E1}, {X: 0, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x00EB13A0, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x00EB14E0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x00EB1620, Kind: bram.KindRAMB36E1}, {X: 0, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6180, Kind: bram.KindRAMB36E1}, {X: 0, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x00CB62C0, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6400, Kind: bram.KindRAMB36E1}, {X: 0, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6540, Kind: bram.KindRAMB36E1}, {X: 0, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6680, Kind: bram.KindRAMB36E1}, {X: 0, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x00CB67E0, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6920, Kind: bram.KindRAMB36E1}, {X: 0, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6A60, Kind: bram.KindRAMB36E1}, {X: 0, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6BA0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x00CB6CE0, Kind: bram.KindRAMB36E1},
	{X: 1, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x00F15AC0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x00F15C00, Kind: bram.KindRAMB36E1}, {X: 1, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x00F15D40, Kind: bram.KindRAMB36E1}, {X: 1, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x00F15E80, Kind: bram.KindRAMB36E1},
	{X: 1, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x00F15FC0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x00F16120, Kind: bram.KindRAMB36E1}, {X: 1, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x00F16260, Kind: bram.KindRAMB36E1}, {X: 1, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x00F163A0, Kind: bram.KindRAMB36E1},
	{X: 1, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x00F164E0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x00F16620, Kind: bram.KindRAMB36E1}, {X: 1, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x00D1B180, Kind: bram.KindRAMB36E1}, {X: 1, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x00D1B2C0, Kind: bram.KindRAMB36E1},
	{X: 1, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x00D1B400, Kind: bram.KindRAMB36E1}, {X: 1, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x00D1B540, Kind: bram.KindRAMB36E1}, {X: 1, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x00D1B680, Kind: bram.KindRAMB36E1}, {X: 1, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x00D1B7E0, Kind: bram.KindRAMB36E1},
	{X: 1, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x00D1B920, Kind: bram.KindRAMB36E1}, {X: 1, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x00D1BA60, Kind: bram.KindRAMB36E1}, {X: 1, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x00D1BBA0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x00D1BCE0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x00F7AAC0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x00F7AC00, Kind: bram.KindRAMB36E1}, {X: 2, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x00F7AD40, Kind: bram.KindRAMB36E1}, {X: 2, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x00F7AE80, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x00F7AFC0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x00F7B120, Kind: bram.KindRAMB36E1}, {X: 2, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x00F7B260, Kind: bram.KindRAMB36E1}, {X: 2, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x00F7B3A0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x00F7B4E0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x00F7B620, Kind: bram.KindRAMB36E1}, {X: 2, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x00D80180, Kind: bram.KindRAMB36E1}, {X: 2, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x00D802C0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x00D80400, Kind: bram.KindRAMB36E1}, {X: 2, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x00D80540, Kind: bram.KindRAMB36E1}, {X: 2, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x00D80680, Kind: bram.KindRAMB36E1}, {X: 2, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x00D807E0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x00D80920, Kind: bram.KindRAMB36E1}, {X: 2, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x00D80A60, Kind: bram.KindRAMB36E1}, {X: 2, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x00D80BA0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x00D80CE0, Kind: bram.KindRAMB36E1},
}



// tilesXC7Z015 is the fixed RAMB36E1 tile table for XC7Z015, transcribed
// verbatim from the reference device description (x, y, bitstream_offset_bits).
var tilesXC7Z015 = []Tile{
	{X: 0, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x0192EA40, Kind: bram.KindRAMB36E1}, {X: 0, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x0192EB80, Kind: bram.KindRAMB36E1}, {X: 0, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x0192ECC0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x0192EE00, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x0192EF40, Kind: bram.KindRAMB36E1}, {X: 0, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x0192F0A0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x0192F1E0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x0192F320, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x0192F460, Kind: bram.KindRAMB36E1}, {X: 0, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x0192F5A0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x01993A40, Kind: bram.KindRAMB36E1}, {X: 1, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x01993B80, Kind: bram.KindRAMB36E1},
	{X: 1, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x01993CC0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x01993E00, Kind: bram.KindRAMB36E1}, {X: 1, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x01993F40, Kind: bram.KindRAMB36E1}, {X: 1, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x019940A0, Kind: bram.KindRAMB36E1},
	{X: 1, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x019941E0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01994320, Kind: bram.KindRAMB36E1}, {X: 1, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01994460, Kind: bram.KindRAMB36E1}, {X: 1, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x019945A0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x019F8A40, Kind: bram.KindRAMB36E1}, {X: 2, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x019F8B80, Kind: bram.KindRAMB36E1}, {X: 2, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x019F8CC0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x019F8E00, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x019F8F40, Kind: bram.KindRAMB36E1}, {X: 2, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x019F90A0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x019F91E0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x019F9320, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x019F9460, Kind: bram.KindRAMB36E1}, {X: 2, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x019F95A0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x017FE100, Kind: bram.KindRAMB36E1}, {X: 2, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x017FE240, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x017FE380, Kind: bram.KindRAMB36E1}, {X: 2, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x017FE4C0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x017FE600, Kind: bram.KindRAMB36E1}, {X: 2, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x017FE760, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x017FE8A0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x017FE9E0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x017FEB20, Kind: bram.KindRAMB36E1}, {X: 2, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x017FEC60, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 20, SLRIndex: 0, BitstreamOffsetBits: 0x016037C0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 21, SLRIndex: 0, BitstreamOffsetBits: 0x01603900, Kind: bram.KindRAMB36E1}, {X: 2, Y: 22, SLRIndex: 0, BitstreamOffsetBits: 0x01603A40, Kind: bram.KindRAMB36E1}, {X: 2, Y: 23, SLRIndex: 0, BitstreamOffsetBits: 0x01603B80, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 24, SLRIndex: 0, BitstreamOffsetBits: 0x01603CC0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 25, SLRIndex: 0, BitstreamOffsetBits: 0x01603E20, Kind: bram.KindRAMB36E1}, {X: 2, Y: 26, SLRIndex: 0, BitstreamOffsetBits: 0x01603F60, Kind: bram.KindRAMB36E1}, {X: 2, Y: 27, SLRIndex: 0, BitstreamOffsetBits: 0x016040A0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 28, SLRIndex: 0, BitstreamOffsetBits: 0x016041E0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 29, SLRIndex: 0, BitstreamOffsetBits: 0x01604320, Kind: bram.KindRAMB36E1}, {X: 3, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x01A5E0A0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x01A5E1E0, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01A5E320, Kind: bram.KindRAMB36E1}, {X: 3, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01A5E460, Kind: bram.KindRAMB36E1}, {X: 3, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x01A5E5A0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x01863100, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x01863240, Kind: bram.KindRAMB36E1}, {X: 3, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x01863380, Kind: bram.KindRAMB36E1}, {X: 3, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x018634C0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x01863600, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x01863760, Kind: bram.KindRAMB36E1}, {X: 3, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x018638A0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x018639E0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x01863B20, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x01863C60, Kind: bram.KindRAMB36E1}, {X: 3, Y: 20, SLRIndex: 0, BitstreamOffsetBits: 0x016687C0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 21, SLRIndex: 0, BitstreamOffsetBits: 0x01668900, Kind: bram.KindRAMB36E1}, {X: 3, Y: 22, SLRIndex: 0, BitstreamOffsetBits: 0x01668A40, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 23, SLRIndex: 0, BitstreamOffsetBits: 0x01668B80, Kind: bram.KindRAMB36E1}, {X: 3, Y: 24, SLRIndex: 0, BitstreamOffsetBits: 0x01668CC0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 25, SLRIndex: 0, BitstreamOffsetBits: 0x01668E20, Kind: bram.KindRAMB36E1}, {X: 3, Y: 26, SLRIndex: 0, BitstreamOffsetBits: 0x01668F60, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 27, SLRIndex: 0, BitstreamOffsetBits: 0x016690A0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 28, SLRIndex: 0, BitstreamOffsetBits: 0x016691E0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 29, SLRIndex: 0, BitstreamOffsetBits: 0x01669320, Kind: bram.KindRAMB36E1}, {X: 4, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x018C8100, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x018C8240, Kind: bram.KindRAMB36E1}, {X: 4, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x018C8380, Kind: bram.KindRAMB36E1}, {X: 4, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x018C84C0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x018C8600, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x018C8760, Kind: bram.KindRAMB36E1}, {X: 4, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x018C88A0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x018C89E0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x018C8B20, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x018C8C60, Kind: bram.KindRAMB36E1}, {X: 4, Y: 20, SLRIndex: 0, BitstreamOffsetBits: 0x016CD7C0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 21, SLRIndex: 0, BitstreamOffsetBits: 0x016CD900, Kind: bram.KindRAMB36E1}, {X: 4, Y: 22, SLRIndex: 0, BitstreamOffsetBits: 0x016CDA40, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 23, SLRIndex: 0, BitstreamOffsetBits: 0x016CDB80, Kind: bram.KindRAMB36E1}, {X: 4, Y: 24, SLRIndex: 0, BitstreamOffsetBits: 0x016CDCC0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 25, SLRIndex: 0, BitstreamOffsetBits: 0x016CDE20, Kind: bram.KindRAMB36E1}, {X: 4, Y: 26, SLRIndex: 0, BitstreamOffsetBits: 0x016CDF60, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 27, SLRIndex: 0, BitstreamOffsetBits: 0x016CE0A0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 28, SLRIndex: 0, BitstreamOffsetBits: 0x016CE1E0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 29, SLRIndex: 0, BitstreamOffsetBits: 0x016CE320, Kind: bram.KindRAMB36E1},
}



// tilesXC7Z020 is the fixed RAMB36E1 tile table for XC7Z020, transcribed
// verbatim from the reference device description (x, y, bitstream_offset_bits).
var tilesXC7Z020 = []Tile{
	{X: 0, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x01C795C0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x01C79700, Kind: bram.KindRAMB36E1}, {X: 0, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x01C79840, Kind: bram.KindRAMB36E1}, {X: 0, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x01C79980, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x01C79AC0, Kind: bram.KindRAMB36E1}, {X: 0, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x01C79C20, Kind: bram.KindRAMB36E1}, {X: 0, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x01C79D60, Kind: bram.KindRAMB36E1}, {X: 4, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x01E0D5C0, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01C79EA0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x01E0D700, Kind: bram.KindRAMB36E1}, {X: 0, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01C79FE0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x01E0D840, Kind: bram.KindRAMB36E1},
	{X: 0, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x01C7A120, Kind: bram.KindRAMB36E1}, {X: 4, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x01E0D980, Kind: bram.KindRAMB36E1}, {X: 4, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x01E0DAC0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x01E0DC20, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x01E0DD60, Kind: bram.KindRAMB36E1}, {X: 4, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01E0DEA0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01E0DFE0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x01CDE5C0, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x01E0E120, Kind: bram.KindRAMB36E1}, {X: 1, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x01CDE700, Kind: bram.KindRAMB36E1}, {X: 4, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x01BADC80, Kind: bram.KindRAMB36E1}, {X: 1, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x01CDE840, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x01BADDC0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x01CDE980, Kind: bram.KindRAMB36E1}, {X: 4, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x01BADF00, Kind: bram.KindRAMB36E1}, {X: 1, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x01CDEAC0, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x01BAE040, Kind: bram.KindRAMB36E1}, {X: 1, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x01CDEC20, Kind: bram.KindRAMB36E1}, {X: 4, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x01BAE180, Kind: bram.KindRAMB36E1}, {X: 1, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x01CDED60, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x01BAE2E0, Kind: bram.KindRAMB36E1}, {X: 1, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01CDEEA0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x01BAE420, Kind: bram.KindRAMB36E1}, {X: 1, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01CDEFE0, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x01BAE560, Kind: bram.KindRAMB36E1}, {X: 1, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x01CDF120, Kind: bram.KindRAMB36E1}, {X: 4, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x01BAE6A0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x01BAE7E0, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 20, SLRIndex: 0, BitstreamOffsetBits: 0x0194E340, Kind: bram.KindRAMB36E1}, {X: 2, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x01D435C0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 21, SLRIndex: 0, BitstreamOffsetBits: 0x0194E480, Kind: bram.KindRAMB36E1}, {X: 2, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x01D43700, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 22, SLRIndex: 0, BitstreamOffsetBits: 0x0194E5C0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x01D43840, Kind: bram.KindRAMB36E1}, {X: 4, Y: 23, SLRIndex: 0, BitstreamOffsetBits: 0x0194E700, Kind: bram.KindRAMB36E1}, {X: 2, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x01D43980, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 24, SLRIndex: 0, BitstreamOffsetBits: 0x0194E840, Kind: bram.KindRAMB36E1}, {X: 2, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x01D43AC0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 25, SLRIndex: 0, BitstreamOffsetBits: 0x0194E9A0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x01D43C20, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 26, SLRIndex: 0, BitstreamOffsetBits: 0x0194EAE0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x01D43D60, Kind: bram.KindRAMB36E1}, {X: 4, Y: 27, SLRIndex: 0, BitstreamOffsetBits: 0x0194EC20, Kind: bram.KindRAMB36E1}, {X: 2, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01D43EA0, Kind: bram.KindRAMB36E1},
	{X: 4, Y: 28, SLRIndex: 0, BitstreamOffsetBits: 0x0194ED60, Kind: bram.KindRAMB36E1}, {X: 2, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01D43FE0, Kind: bram.KindRAMB36E1}, {X: 4, Y: 29, SLRIndex: 0, BitstreamOffsetBits: 0x0194EEA0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x01D44120, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x01AE3C80, Kind: bram.KindRAMB36E1}, {X: 2, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x01AE3DC0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x01AE3F00, Kind: bram.KindRAMB36E1}, {X: 2, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x01AE4040, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x01AE4180, Kind: bram.KindRAMB36E1}, {X: 2, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x01AE42E0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x01E725C0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x01AE4420, Kind: bram.KindRAMB36E1},
	{X: 5, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x01E72700, Kind: bram.KindRAMB36E1}, {X: 2, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x01AE4560, Kind: bram.KindRAMB36E1}, {X: 5, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x01E72840, Kind: bram.KindRAMB36E1}, {X: 2, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x01AE46A0, Kind: bram.KindRAMB36E1},
	{X: 5, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x01E72980, Kind: bram.KindRAMB36E1}, {X: 2, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x01AE47E0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x01E72AC0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x01E72C20, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 20, SLRIndex: 0, BitstreamOffsetBits: 0x01884340, Kind: bram.KindRAMB36E1}, {X: 5, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x01E72D60, Kind: bram.KindRAMB36E1}, {X: 2, Y: 21, SLRIndex: 0, BitstreamOffsetBits: 0x01884480, Kind: bram.KindRAMB36E1}, {X: 5, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01E72EA0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 22, SLRIndex: 0, BitstreamOffsetBits: 0x018845C0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01E72FE0, Kind: bram.KindRAMB36E1}, {X: 2, Y: 23, SLRIndex: 0, BitstreamOffsetBits: 0x01884700, Kind: bram.KindRAMB36E1}, {X: 5, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x01E73120, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 24, SLRIndex: 0, BitstreamOffsetBits: 0x01884840, Kind: bram.KindRAMB36E1}, {X: 5, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x01C12C80, Kind: bram.KindRAMB36E1}, {X: 2, Y: 25, SLRIndex: 0, BitstreamOffsetBits: 0x018849A0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x01C12DC0, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 26, SLRIndex: 0, BitstreamOffsetBits: 0x01884AE0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x01C12F00, Kind: bram.KindRAMB36E1}, {X: 2, Y: 27, SLRIndex: 0, BitstreamOffsetBits: 0x01884C20, Kind: bram.KindRAMB36E1}, {X: 5, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x01C13040, Kind: bram.KindRAMB36E1},
	{X: 2, Y: 28, SLRIndex: 0, BitstreamOffsetBits: 0x01884D60, Kind: bram.KindRAMB36E1}, {X: 5, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x01C13180, Kind: bram.KindRAMB36E1}, {X: 2, Y: 29, SLRIndex: 0, BitstreamOffsetBits: 0x01884EA0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x01C132E0, Kind: bram.KindRAMB36E1},
	{X: 5, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x01C13420, Kind: bram.KindRAMB36E1}, {X: 5, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x01C13560, Kind: bram.KindRAMB36E1}, {X: 5, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x01C136A0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x01C137E0, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 0, SLRIndex: 0, BitstreamOffsetBits: 0x01DA85C0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 20, SLRIndex: 0, BitstreamOffsetBits: 0x019B3340, Kind: bram.KindRAMB36E1}, {X: 3, Y: 1, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8700, Kind: bram.KindRAMB36E1}, {X: 5, Y: 21, SLRIndex: 0, BitstreamOffsetBits: 0x019B3480, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 2, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8840, Kind: bram.KindRAMB36E1}, {X: 5, Y: 22, SLRIndex: 0, BitstreamOffsetBits: 0x019B35C0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 3, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8980, Kind: bram.KindRAMB36E1}, {X: 5, Y: 23, SLRIndex: 0, BitstreamOffsetBits: 0x019B3700, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 4, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8AC0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 24, SLRIndex: 0, BitstreamOffsetBits: 0x019B3840, Kind: bram.KindRAMB36E1}, {X: 3, Y: 5, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8C20, Kind: bram.KindRAMB36E1}, {X: 5, Y: 25, SLRIndex: 0, BitstreamOffsetBits: 0x019B39A0, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 6, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8D60, Kind: bram.KindRAMB36E1}, {X: 5, Y: 26, SLRIndex: 0, BitstreamOffsetBits: 0x019B3AE0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 7, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8EA0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 27, SLRIndex: 0, BitstreamOffsetBits: 0x019B3C20, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 8, SLRIndex: 0, BitstreamOffsetBits: 0x01DA8FE0, Kind: bram.KindRAMB36E1}, {X: 5, Y: 28, SLRIndex: 0, BitstreamOffsetBits: 0x019B3D60, Kind: bram.KindRAMB36E1}, {X: 3, Y: 9, SLRIndex: 0, BitstreamOffsetBits: 0x01DA9120, Kind: bram.KindRAMB36E1}, {X: 5, Y: 29, SLRIndex: 0, BitstreamOffsetBits: 0x019B3EA0, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 10, SLRIndex: 0, BitstreamOffsetBits: 0x01B48C80, Kind: bram.KindRAMB36E1}, {X: 3, Y: 11, SLRIndex: 0, BitstreamOffsetBits: 0x01B48DC0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 12, SLRIndex: 0, BitstreamOffsetBits: 0x01B48F00, Kind: bram.KindRAMB36E1}, {X: 3, Y: 13, SLRIndex: 0, BitstreamOffsetBits: 0x01B49040, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 14, SLRIndex: 0, BitstreamOffsetBits: 0x01B49180, Kind: bram.KindRAMB36E1}, {X: 3, Y: 15, SLRIndex: 0, BitstreamOffsetBits: 0x01B492E0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 16, SLRIndex: 0, BitstreamOffsetBits: 0x01B49420, Kind: bram.KindRAMB36E1}, {X: 3, Y: 17, SLRIndex: 0, BitstreamOffsetBits: 0x01B49560, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 18, SLRIndex: 0, BitstreamOffsetBits: 0x01B496A0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 19, SLRIndex: 0, BitstreamOffsetBits: 0x01B497E0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 20, SLRIndex: 0, BitstreamOffsetBits: 0x018E9340, Kind: bram.KindRAMB36E1}, {X: 3, Y: 21, SLRIndex: 0, BitstreamOffsetBits: 0x018E9480, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 22, SLRIndex: 0, BitstreamOffsetBits: 0x018E95C0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 23, SLRIndex: 0, BitstreamOffsetBits: 0x018E9700, Kind: bram.KindRAMB36E1}, {X: 3, Y: 24, SLRIndex: 0, BitstreamOffsetBits: 0x018E9840, Kind: bram.KindRAMB36E1}, {X: 3, Y: 25, SLRIndex: 0, BitstreamOffsetBits: 0x018E99A0, Kind: bram.KindRAMB36E1},
	{X: 3, Y: 26, SLRIndex: 0, BitstreamOffsetBits: 0x018E9AE0, Kind: bram.KindRAMB36E1}, {X: 3, Y: 27, SLRIndex: 0, BitstreamOffsetBits: 0x018E9C20, Kind: bram.KindRAMB36E1}, {X: 3, Y: 28, SLRIndex: 0, BitstreamOffsetBits: 0x018E9D60, Kind: bram.KindRAMB36E1}, {X: 3, Y: 29, SLRIndex: 0, BitstreamOffsetBits: 0x018E9EA0, Kind: bram.KindRAMB36E1},
}
