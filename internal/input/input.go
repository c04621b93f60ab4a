// Package input turns raw terminal bytes into key codes and offers them
// through a non-blocking poll.
package input

import (
	"bufio"
)

// Key is a recognised key code.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyRotateCCW
	KeyRotateCW
	KeySoftDrop
	KeyHardDrop
	KeyQuit
	KeyEnter
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRotateCCW:
		return "rotate-ccw"
	case KeyRotateCW:
		return "rotate-cw"
	case KeySoftDrop:
		return "soft-drop"
	case KeyHardDrop:
		return "hard-drop"
	case KeyQuit:
		return "quit"
	case KeyEnter:
		return "enter"
	default:
		return "other"
	}
}

// streamBuffer bounds how many decoded keys can wait for the game loop.
const streamBuffer = 128

// Stream delivers decoded keys via a channel fed by a reader goroutine.
// HasPendingKey and ReadKey must be called from a single goroutine.
type Stream struct {
	ch      chan Key
	peek    Key
	hasPeek bool
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends keys to the stream.
// The goroutine exits when r returns an error; the stream then reports Closed.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan Key, streamBuffer)}
	go func() {
		for {
			k, err := decode(r)
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- k
		}
	}()
	return s
}

// HasPendingKey reports whether a key is waiting. It never blocks.
func (s *Stream) HasPendingKey() bool {
	if s.hasPeek {
		return true
	}
	if s.closed {
		return false
	}
	select {
	case k, ok := <-s.ch:
		if !ok {
			s.closed = true
			return false
		}
		s.peek, s.hasPeek = k, true
		return true
	default:
		return false
	}
}

// ReadKey returns the next pending key, or KeyNone if there is none.
func (s *Stream) ReadKey() Key {
	if !s.HasPendingKey() {
		return KeyNone
	}
	s.hasPeek = false
	return s.peek
}

// Closed reports whether the underlying reader has ended and every key
// has been consumed.
func (s *Stream) Closed() bool {
	return s.closed && !s.hasPeek
}

// Reset discards all pending keys.
func (s *Stream) Reset() {
	for s.HasPendingKey() {
		s.hasPeek = false
	}
}

// decode reads one key from r. Arrow keys arrive as the three-byte CSI
// sequence ESC [ A..D.
func decode(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyNone, err
	}
	if b != '\x1b' || r.Buffered() < 2 {
		return KeyForByte(b), nil
	}
	seq, err := r.Peek(2)
	if err != nil || seq[0] != '[' {
		return KeyOther, nil
	}
	final := seq[1]
	_, _ = r.Discard(2)
	switch final {
	case 'A': // Up arrow
		return KeyRotateCW, nil
	case 'B': // Down arrow
		return KeySoftDrop, nil
	case 'C': // Right arrow
		return KeyRight, nil
	case 'D': // Left arrow
		return KeyLeft, nil
	default:
		return KeyOther, nil
	}
}

// KeyForByte maps a single input byte to its key code.
func KeyForByte(b byte) Key {
	switch b {
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case 'q', 'Q':
		return KeyRotateCCW
	case 'e', 'E':
		return KeyRotateCW
	case 's', 'S':
		return KeySoftDrop
	case ' ':
		return KeyHardDrop
	case '\x7f', '\b', '\x03': // Backspace, Ctrl-H, Ctrl-C
		return KeyQuit
	case '\n', '\r':
		return KeyEnter
	default:
		return KeyOther
	}
}
