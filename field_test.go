package dbf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFieldsDescriptors(t *testing.T) {
	b := &tableBuilder{
		version: 0x03,
		fields: []fieldSpec{
			{name: "NAME", typ: 'C', length: 20},
			{name: "PRICE", typ: 'N', length: 10, decimals: 2, workArea: 7, indexed: true},
			{name: "BLOB", typ: 'Z', length: 4},
		},
	}
	data := b.build()
	h, err := decodeHeader(data)
	require.NoError(t, err)

	fields, err := decodeFields(data, h, latin1())
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "NAME", fields[0].Name)
	assert.Equal(t, byte('C'), fields[0].Type)
	assert.Equal(t, "Character", fields[0].TypeName)
	assert.Equal(t, 20, fields[0].Length)
	assert.Equal(t, 0, fields[0].DecimalCount)
	assert.False(t, fields[0].HasIndex)

	assert.Equal(t, "PRICE", fields[1].Name)
	assert.Equal(t, "Numeric", fields[1].TypeName)
	assert.Equal(t, 10, fields[1].Length)
	assert.Equal(t, 2, fields[1].DecimalCount)
	assert.Equal(t, byte(7), fields[1].WorkAreaID)
	assert.True(t, fields[1].HasIndex)

	assert.Equal(t, "Unknown", fields[2].TypeName)
}

func TestDecodeFieldsNameStopsAtNul(t *testing.T) {
	b := &tableBuilder{
		version: 0x03,
		fields:  []fieldSpec{{name: "IGNORED", typ: 'C', length: 5}},
	}
	data := b.build()
	copy(data[headerSize:headerSize+11], []byte{'A', 'B', 0x00, 'X', 'X', 'X', 'X', 'X', 'X', 'X', 'X'})

	h, err := decodeHeader(data)
	require.NoError(t, err)
	fields, err := decodeFields(data, h, latin1())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "AB", fields[0].Name)
}

func TestDecodeFieldsStopsAtTerminator(t *testing.T) {
	b := &tableBuilder{
		version: 0x03,
		fields: []fieldSpec{
			{name: "A", typ: 'C', length: 1},
			{name: "B", typ: 'C', length: 1},
		},
	}
	data := b.build()
	data[headerSize+descriptorSize] = fieldTerminator

	h, err := decodeHeader(data)
	require.NoError(t, err)
	fields, err := decodeFields(data, h, latin1())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "A", fields[0].Name)
}

func TestDecodeFieldsStopsAtHeaderLengthBound(t *testing.T) {
	b := &tableBuilder{
		version: 0x03,
		fields:  []fieldSpec{{name: "ONLY", typ: 'C', length: 3}},
	}
	data := b.build()
	// overwrite the terminator; the headerLength-1 bound must stop the scan
	data[b.headerLength()-1] = 0x00

	h, err := decodeHeader(data)
	require.NoError(t, err)
	fields, err := decodeFields(data, h, latin1())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "ONLY", fields[0].Name)
}

func TestDecodeFieldsPermissiveRanges(t *testing.T) {
	b := &tableBuilder{
		version: 0x03,
		fields:  []fieldSpec{{name: "WIDE", typ: 'N', length: 250, decimals: 99}},
	}
	data := b.build()

	h, err := decodeHeader(data)
	require.NoError(t, err)
	fields, err := decodeFields(data, h, latin1())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, 250, fields[0].Length)
	assert.Equal(t, 99, fields[0].DecimalCount)
}

func TestDecodeFieldsTruncatedDescriptorStops(t *testing.T) {
	// headerLength promises a second descriptor the input cannot hold
	data := make([]byte, 70)
	data[0] = 0x03
	binary.LittleEndian.PutUint16(data[8:10], 70)
	copy(data[32:], "ONLY")
	data[32+11] = 'C'
	data[32+16] = 1
	data[64] = 'X'

	h, err := decodeHeader(data)
	require.NoError(t, err)
	fields, err := decodeFields(data, h, latin1())
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "ONLY", fields[0].Name)
}

func TestDecodeFieldsTruncatedInput(t *testing.T) {
	b := &tableBuilder{
		version: 0x03,
		fields:  []fieldSpec{{name: "NAME", typ: 'C', length: 5}},
	}
	data := b.build()

	_, err := decodeFields(data[:40], Header{HeaderLength: 65}, latin1())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncated)
}
