package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCHRPHeaderRoundTrip(t *testing.T) {
	h := CHRPHeader{Signature: 0x70, SizeUnits: 0x0800, Name: []byte("common")}
	buf := h.Serialize(nil)
	require.Len(t, buf, chrpHeaderSize)

	got, err := ParseCHRPHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.True(t, got.NameIs("common"))
	assert.False(t, got.NameIs("system"))
}

func TestParseCHRPHeaderBadChecksum(t *testing.T) {
	h := CHRPHeader{Signature: 0x70, SizeUnits: 0x0800, Name: []byte("common")}
	buf := h.Serialize(nil)
	buf[1] ^= 0xFF // corrupt the checksum byte

	_, err := ParseCHRPHeader(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestParseCHRPHeaderShortBuffer(t *testing.T) {
	_, err := ParseCHRPHeader(make([]byte, 4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}
