// Package device is the catalog of known FPGA parts: for a given IDCODE,
// the frame geometry (words per frame, number of SLRs) and the fixed
// table of block-RAM tiles a bitstream decoder needs to locate BRAM
// contents.
//
// Zynq-7000 parts (XC7Z010, XC7Z015, XC7Z020) carry full RAMB36E1 tile
// tables. The Virtex UltraScale+ part (XCVU9P) carries a representative
// RAMB36E2 tile table; see vu9p_tiles.go for the caveat on its provenance.
package device
