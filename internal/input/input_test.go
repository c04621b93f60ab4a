package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, s *Stream) []Key {
	t.Helper()
	var keys []Key
	require.Eventually(t, func() bool {
		for s.HasPendingKey() {
			keys = append(keys, s.ReadKey())
		}
		return s.Closed()
	}, time.Second, time.Millisecond)
	return keys
}

func TestKeyForByte(t *testing.T) {
	tests := []struct {
		b    byte
		want Key
	}{
		{'a', KeyLeft},
		{'D', KeyRight},
		{'q', KeyRotateCCW},
		{'e', KeyRotateCW},
		{'s', KeySoftDrop},
		{' ', KeyHardDrop},
		{'\x7f', KeyQuit},
		{'\x03', KeyQuit},
		{'\r', KeyEnter},
		{'z', KeyOther},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, KeyForByte(tt.b))
		})
	}
}

func TestStreamDecodesKeysInOrder(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("ad\x1b[A\x1b[B\x1b[C\x1b[Dq \x7f")))
	keys := readAll(t, s)
	assert.Equal(t, []Key{
		KeyLeft, KeyRight,
		KeyRotateCW, KeySoftDrop, KeyRight, KeyLeft,
		KeyRotateCCW, KeyHardDrop, KeyQuit,
	}, keys)
}

func TestStreamUnknownEscape(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("\x1b[Zs")))
	assert.Equal(t, []Key{KeyOther, KeySoftDrop}, readAll(t, s))
}

func TestLoneEscape(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("\x1b")))
	assert.Equal(t, []Key{KeyOther}, readAll(t, s))
}

func TestPollNeverBlocks(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s := StartStream(bufio.NewReader(pr))

	assert.False(t, s.HasPendingKey())
	assert.Equal(t, KeyNone, s.ReadKey())
	assert.False(t, s.Closed())

	go func() { _, _ = pw.Write([]byte("d")) }()
	require.Eventually(t, s.HasPendingKey, time.Second, time.Millisecond)
	assert.True(t, s.HasPendingKey(), "peeking must not consume")
	assert.Equal(t, KeyRight, s.ReadKey())
	assert.False(t, s.HasPendingKey())
}

func TestReset(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("aaaa")))
	// Reset until the reader goroutine has hit EOF and nothing is left.
	require.Eventually(t, func() bool {
		s.Reset()
		return s.Closed()
	}, time.Second, time.Millisecond)
	assert.False(t, s.HasPendingKey())
}
