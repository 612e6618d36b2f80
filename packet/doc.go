// Package packet implements the Xilinx UG470 configuration packet grammar.
//
// # Packet Grammar
//
// A configuration bitstream is a SYNC word (0xAA995566) followed by a
// stream of 32-bit big-endian packet headers, each optionally followed by
// word_count payload words:
//
//	TYPE1: hdr[31:29]=0b001  op=hdr[28:27]  register=hdr[17:13]  word_count=hdr[10:0]
//	TYPE2: hdr[31:29]=0b010  word_count=hdr[26:0]
//
// A TYPE2 header is only valid immediately after a TYPE1 header whose
// word_count is zero and whose op is not nop; the pair inherits op and
// register from the TYPE1 header and is reported as a single Event.
//
// # Usage
//
//	_, err := packet.Decode(data, packet.Options{}, func(ev packet.Event) packet.Signal {
//	    fmt.Printf("%s %s words=%d\n", ev.Op, ev.Register, ev.WordCount())
//	    return packet.Continue
//	})
package packet
