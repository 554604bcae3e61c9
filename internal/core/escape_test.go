package core

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEscaped(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{name: "no escapes", src: []byte("hello"), want: []byte("hello")},
		{
			name: "zero run",
			src:  append([]byte("ab"), 0xFF, 0x03, 'c'),
			want: append([]byte("ab\x00\x00\x00"), 'c'),
		},
		{
			name: "ff run",
			src:  append([]byte("ab"), 0xFF, 0x83, 'c'),
			want: append([]byte("ab\xff\xff\xff"), 'c'),
		},
		{
			name: "zero-length run is a no-op",
			src:  append([]byte("ab"), 0xFF, 0x00, 'c'),
			want: []byte("abc"),
		},
		{
			name: "truncated escape at end of input",
			src:  append([]byte("ab"), 0xFF),
			want: []byte("ab"),
		},
		{
			name: "empty input",
			src:  nil,
			want: []byte{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeEscaped(tt.src))
		})
	}
}

func TestEscapeDecoderReadsIncrementally(t *testing.T) {
	src := append([]byte("x"), 0xFF, 0x85, 'y')
	dec := NewEscapeDecoder(src)
	buf := make([]byte, 1)
	var out []byte
	for {
		n, err := dec.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
	}
	assert.Equal(t, []byte("x\xff\xff\xff\xff\xffy"), out)
}
