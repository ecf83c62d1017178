package vehicle

import (
	"context"
	"io"
)

// ByteSource pumps bytes from the serial channel into a buffered
// channel so the control loop can poll without blocking. The reader
// goroutine is the only blocking consumer of the channel.
type ByteSource struct {
	R io.Reader

	ch chan byte
}

// NewByteSource creates a ByteSource buffering up to size bytes
// between polls.
func NewByteSource(r io.Reader, size int) *ByteSource {
	if size < 1 {
		size = 512
	}
	return &ByteSource{R: r, ch: make(chan byte, size)}
}

// Name implements Named.
func (s *ByteSource) Name() string {
	return "byte-source"
}

// Run implements Runnable.
func (s *ByteSource) Run(ctx context.Context) error {
	buf := make([]byte, 64)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		n, err := s.R.Read(buf)
		for _, b := range buf[:n] {
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return err
		}
	}
}

// Poll returns the next buffered byte without blocking.
func (s *ByteSource) Poll() (byte, bool) {
	select {
	case b := <-s.ch:
		return b, true
	default:
		return 0, false
	}
}
