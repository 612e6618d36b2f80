package packet

// Event is one decoded packet: a TYPE1 header alone, or a TYPE1/TYPE2 pair
// collapsed into a single event per UG470 section 5.3.1.
type Event struct {
	// Op is the packet's operation.
	Op Op

	// Register is the target configuration register.
	Register Register

	// Payload holds the payload words, decoded from the input bytes into
	// a new slice for each Event; it does not alias the decoder's input.
	Payload []uint32

	// HeaderOffset is the byte offset of the packet's (first) header word.
	HeaderOffset int

	// PayloadOffset is the byte offset of the first payload word, i.e.
	// immediately past the TYPE1 header (or past the TYPE1/TYPE2 pair
	// when word_count == 0 paired with a TYPE2).
	PayloadOffset int
}

// WordCount returns the number of payload words carried by this event.
func (e Event) WordCount() int {
	return len(e.Payload)
}

// Signal is returned by a Callback to tell the decoder whether to keep
// going or to halt at the current packet boundary.
type Signal int

const (
	// Continue tells the decoder to proceed to the next packet.
	Continue Signal = iota
	// Stop tells the decoder to halt immediately after this callback.
	Stop
)

// Callback is invoked once per decoded Event, in stream order.
type Callback func(Event) Signal

// Options controls decoder behavior.
type Options struct {
	// StrictSync requires a sync word to be present; without it, Decode
	// fails with UnsynchronizedStreamError instead of treating an
	// un-synced stream as zero-work success.
	StrictSync bool
}
