package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvramkit/nvram/internal/writer"
)

func buildV3Image(t *testing.T, numBanks int, gens map[int]uint32, valid map[int]bool) []byte {
	t.Helper()
	img := make([]byte, 0, numBanks*V3BankSize)
	for i := 0; i < numBanks; i++ {
		if !valid[i] {
			img = append(img, make([]byte, V3BankSize)...)
			for j := len(img) - V3BankSize; j < len(img); j++ {
				img[j] = 0xFF
			}
			continue
		}
		p := &V3Partition{
			Header: StoreHeader{Size: V3BankSize, Generation: gens[i], Version: 1, SystemSize: 0x4000, CommonSize: 0x4000},
		}
		p.InsertVariable([]byte("boot-args"), []byte("-v"), KindCommon)
		buf, err := p.Serialize(nil)
		require.NoError(t, err)
		img = append(img, buf...)
	}
	return img
}

func TestParseV3ContainerSelectsMaxGeneration(t *testing.T) {
	img := buildV3Image(t, 2, map[int]uint32{0: 3, 1: 7}, map[int]bool{0: true, 1: true})
	c, err := ParseV3Container(img)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Active)
	assert.Equal(t, BankValid, c.States[0])
	assert.Equal(t, BankValid, c.States[1])
}

func TestParseV3ContainerTieBreaksToLowestIndex(t *testing.T) {
	img := buildV3Image(t, 2, map[int]uint32{0: 5, 1: 5}, map[int]bool{0: true, 1: true})
	c, err := ParseV3Container(img)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Active)
}

func TestParseV3ContainerClassifiesValidAndEmpty(t *testing.T) {
	img := buildV3Image(t, 2, map[int]uint32{0: 1}, map[int]bool{0: true, 1: false})
	c, err := ParseV3Container(img)
	require.NoError(t, err)
	assert.Equal(t, BankValid, c.States[0])
	assert.Equal(t, BankEmpty, c.States[1])
}

func TestParseV3ContainerRequiresOneValidBank(t *testing.T) {
	img := make([]byte, V3BankSize)
	for i := range img {
		img[i] = 0x42
	}
	_, err := ParseV3Container(img)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestV3ContainerSerializePreservesUnparsedBanks(t *testing.T) {
	img := buildV3Image(t, 2, map[int]uint32{0: 1}, map[int]bool{0: true, 1: false})
	c, err := ParseV3Container(img)
	require.NoError(t, err)

	out, err := c.Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, img, out)
}

func TestV3ContainerApplyInPlace(t *testing.T) {
	img := buildV3Image(t, 2, map[int]uint32{0: 1}, map[int]bool{0: true, 1: false})
	c, err := ParseV3Container(img)
	require.NoError(t, err)

	c.Banks[c.Active].InsertVariable([]byte("backlight-level"), []byte("5"), KindSystem)
	w := writer.NewMemory(img)
	require.NoError(t, c.Apply(w))

	assert.Equal(t, 0, c.Active)
	assert.Equal(t, 0, w.EraseCount(0))

	bank := w.Bank(0, V3BankSize)
	reparsed, err := ParseV3Partition(bank)
	require.NoError(t, err)
	assert.NotNil(t, reparsed.GetVariable([]byte("backlight-level"), KindSystem))
}

func TestV3ContainerApplyRotatesWhenBankIsFull(t *testing.T) {
	live := NewRecord([]byte("boot-args"), []byte("-v"), KindCommon)
	filler := &Record{Header: VarHeader{State: VarSuperseded, NameSize: 1, DataSize: 70000, GUID: AppleCommonGUID}}

	active := &V3Partition{
		Header:  StoreHeader{Size: V3BankSize, Generation: 4, Version: 1, SystemSize: 0xFFFF, CommonSize: 0xFFFF},
		Records: []*Record{filler, live},
	}
	c := &V3Container{NumBanks: 3, Active: 0}
	c.States[0] = BankValid
	c.Banks[0] = active
	c.States[1] = BankInvalid // not empty: Apply must erase before writing into it
	c.States[2] = BankEmpty

	w := writer.NewMemory(make([]byte, 3*V3BankSize))
	require.NoError(t, c.Apply(w))

	assert.Equal(t, 1, c.Active)
	assert.Equal(t, BankValid, c.States[1])
	assert.Equal(t, 1, w.EraseCount(V3BankSize))

	bank := w.Bank(V3BankSize, V3BankSize)
	reparsed, err := ParseV3Partition(bank)
	require.NoError(t, err)
	require.Len(t, reparsed.Records, 1)
	assert.Equal(t, c.Banks[1].Header.Generation, active.Header.Generation+1)
	assert.Equal(t, []byte("-v"), reparsed.GetVariable([]byte("boot-args"), KindCommon).Value)
}

func TestV3ContainerApplyRejectsQuotaOverflow(t *testing.T) {
	active := &V3Partition{
		Header: StoreHeader{Size: V3BankSize, Generation: 1, Version: 1, SystemSize: 0, CommonSize: 0xFFFF},
	}
	active.InsertVariable([]byte("boot-args"), []byte("-v"), KindSystem)

	c := &V3Container{NumBanks: 1, Active: 0}
	c.States[0] = BankValid
	c.Banks[0] = active

	w := writer.NewMemory(make([]byte, V3BankSize))
	err := c.Apply(w)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSectionTooBig))
}
