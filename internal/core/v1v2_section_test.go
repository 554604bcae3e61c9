package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionRoundTrip(t *testing.T) {
	s := Section{
		Header: CHRPHeader{Signature: 0x70, SizeUnits: 4, Name: []byte("common")},
		Values: map[string]*V1V2Variable{
			"boot-args": {Key: []byte("boot-args"), RawValue: []byte("-v"), Kind: KindCommon},
		},
	}
	buf, err := s.Serialize(nil)
	require.NoError(t, err)
	assert.Len(t, buf, s.SizeBytes())

	got, err := ParseSection(buf)
	require.NoError(t, err)
	assert.Equal(t, KindCommon, got.Values["boot-args"].Kind)
	assert.Equal(t, []byte("-v"), got.Values["boot-args"].RawValue)
}

func TestParseSectionDerivesKindFromHeaderName(t *testing.T) {
	s := Section{
		Header: CHRPHeader{Signature: 0x70, SizeUnits: 4, Name: []byte("system")},
		Values: map[string]*V1V2Variable{
			"key": {Key: []byte("key"), RawValue: []byte("val"), Kind: KindCommon}, // kind here is irrelevant to serialization
		},
	}
	buf, err := s.Serialize(nil)
	require.NoError(t, err)

	got, err := ParseSection(buf)
	require.NoError(t, err)
	assert.Equal(t, KindSystem, got.Values["key"].Kind)
}

func TestSectionSerializeTooBig(t *testing.T) {
	s := Section{
		Header: CHRPHeader{Signature: 0x70, SizeUnits: 1, Name: []byte("common")}, // 16 bytes: fits only the header
		Values: map[string]*V1V2Variable{
			"boot-args": {Key: []byte("boot-args"), RawValue: []byte("-v"), Kind: KindCommon},
		},
	}
	_, err := s.Serialize(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSectionTooBig)
}
