package wire

// Terminator closes an inbound command frame.
const Terminator byte = 0x00

// DefaultCapacity bounds the size of a single inbound frame.
const DefaultCapacity = 512

// FrameStatus is the result of feeding one byte to the Assembler.
type FrameStatus int

const (
	// FrameIncomplete means more bytes are needed.
	FrameIncomplete FrameStatus = iota
	// FrameComplete means a full frame is available via Bytes.
	FrameComplete
	// FrameOverflow means the frame exceeded capacity before its
	// terminator; the partial frame was discarded.
	FrameOverflow
)

// Assembler accumulates raw bytes into a bounded buffer until a
// terminator is seen. It owns the buffer exclusively and carries no
// state across completed frames.
type Assembler struct {
	buf      []byte
	index    int
	frameLen int
}

// NewAssembler creates an Assembler. Capacities below 1 fall back to
// DefaultCapacity.
func NewAssembler(capacity int) *Assembler {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Assembler{buf: make([]byte, capacity)}
}

// Feed consumes one byte and reports the frame state. After
// FrameComplete the assembled payload is available via Bytes until
// the next Feed; after FrameOverflow the partial frame is gone and
// the assembler accepts a fresh frame.
func (a *Assembler) Feed(b byte) FrameStatus {
	if b == Terminator {
		a.frameLen = a.index
		a.index = 0
		return FrameComplete
	}
	a.buf[a.index] = b
	a.index++
	if a.index >= len(a.buf)-1 {
		a.index = 0
		a.frameLen = 0
		return FrameOverflow
	}
	return FrameIncomplete
}

// Bytes returns the payload of the last completed frame. The slice
// aliases the internal buffer and is only valid until the next Feed.
func (a *Assembler) Bytes() []byte {
	return a.buf[:a.frameLen]
}

// Pending returns the number of bytes buffered for the frame under
// assembly.
func (a *Assembler) Pending() int {
	return a.index
}

// Reset discards any partially assembled frame.
func (a *Assembler) Reset() {
	a.index = 0
	a.frameLen = 0
}
