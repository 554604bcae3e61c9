package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPartition(t *testing.T) *V1V2Partition {
	t.Helper()
	return &V1V2Partition{
		Header:     CHRPHeader{Signature: 0x70, SizeUnits: 256, Name: []byte("nvram")},
		Generation: 3,
		Common: Section{
			Header: CHRPHeader{Signature: 0x70, SizeUnits: 64, Name: []byte("common")},
			Values: map[string]*V1V2Variable{
				"boot-args": {Key: []byte("boot-args"), RawValue: []byte("-v"), Kind: KindCommon},
			},
		},
		System: Section{
			Header: CHRPHeader{Signature: 0x71, SizeUnits: 64, Name: []byte("system")},
			Values: map[string]*V1V2Variable{
				"little-endian?": {Key: []byte("little-endian?"), RawValue: []byte("true"), Kind: KindSystem},
			},
		},
	}
}

func TestV1V2PartitionRoundTrip(t *testing.T) {
	p := newTestPartition(t)
	buf, err := p.Serialize(nil)
	require.NoError(t, err)
	assert.Len(t, buf, p.SizeBytes())

	got, err := ParseV1V2Partition(buf)
	require.NoError(t, err)
	assert.Equal(t, p.Generation, got.Generation)
	assert.Equal(t, []byte("-v"), got.GetVariable([]byte("boot-args"), KindCommon).RawValue)
	assert.Equal(t, []byte("true"), got.GetVariable([]byte("little-endian?"), KindSystem).RawValue)
}

func TestV1V2PartitionDetectsCorruption(t *testing.T) {
	p := newTestPartition(t)
	buf, err := p.Serialize(nil)
	require.NoError(t, err)

	buf[40] ^= 0xFF // corrupt inside the common section, after the adler32

	_, err = ParseV1V2Partition(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestV1V2PartitionInsertAndRemove(t *testing.T) {
	p := newTestPartition(t)
	p.InsertVariable([]byte("new-key"), []byte("new-value"), KindCommon)
	assert.Equal(t, []byte("new-value"), p.GetVariable([]byte("new-key"), KindCommon).RawValue)

	p.RemoveVariable([]byte("new-key"), KindCommon)
	assert.Nil(t, p.GetVariable([]byte("new-key"), KindCommon))
}

func TestV1V2PartitionClone(t *testing.T) {
	p := newTestPartition(t)
	clone := p.Clone()
	clone.InsertVariable([]byte("boot-args"), []byte("-s"), KindCommon)

	assert.Equal(t, []byte("-v"), p.GetVariable([]byte("boot-args"), KindCommon).RawValue)
	assert.Equal(t, []byte("-s"), clone.GetVariable([]byte("boot-args"), KindCommon).RawValue)
}
