package dbf

import (
	"bytes"
	"encoding/binary"
	"math"
)

// fieldSpec describes one descriptor entry of a synthetic DBF image.
type fieldSpec struct {
	name     string
	typ      byte
	length   byte
	decimals byte
	workArea byte
	indexed  bool
}

// recordSpec describes one record. A zero flag means active; cells shorter
// than their field stay space-padded on the right, missing cells stay all
// spaces.
type recordSpec struct {
	flag  byte
	cells [][]byte
}

// tableBuilder assembles complete DBF byte images for tests: header,
// descriptor entries, terminator, space-padded fixed-width records, and the
// EOF trailer byte.
type tableBuilder struct {
	version     byte
	year        byte // stored form, actual year minus 1900
	month       byte
	day         byte
	language    byte
	transaction bool
	encrypted   bool
	indexed     bool
	fields      []fieldSpec
	records     []recordSpec
}

func (b *tableBuilder) headerLength() int {
	return headerSize + len(b.fields)*descriptorSize + 1
}

func (b *tableBuilder) recordLength() int {
	n := 1
	for _, f := range b.fields {
		n += int(f.length)
	}
	return n
}

func (b *tableBuilder) build() []byte {
	headerLen := b.headerLength()
	recordLen := b.recordLength()
	buf := make([]byte, 0, headerLen+len(b.records)*recordLen+1)

	hdr := make([]byte, headerSize)
	hdr[0] = b.version
	hdr[1], hdr[2], hdr[3] = b.year, b.month, b.day
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(b.records)))
	binary.LittleEndian.PutUint16(hdr[8:10], uint16(headerLen))
	binary.LittleEndian.PutUint16(hdr[10:12], uint16(recordLen))
	if b.transaction {
		hdr[14] = 1
	}
	if b.encrypted {
		hdr[15] = 1
	}
	if b.indexed {
		hdr[28] = 1
	}
	hdr[29] = b.language
	buf = append(buf, hdr...)

	for _, f := range b.fields {
		d := make([]byte, descriptorSize)
		copy(d[0:11], f.name)
		d[11] = f.typ
		d[16] = f.length
		d[17] = f.decimals
		d[20] = f.workArea
		if f.indexed {
			d[31] = 1
		}
		buf = append(buf, d...)
	}
	buf = append(buf, fieldTerminator)

	for _, r := range b.records {
		rec := bytes.Repeat([]byte{recordActive}, recordLen)
		if r.flag != 0 {
			rec[0] = r.flag
		}
		pos := 1
		for i, f := range b.fields {
			if i < len(r.cells) {
				copy(rec[pos:pos+int(f.length)], r.cells[i])
			}
			pos += int(f.length)
		}
		buf = append(buf, rec...)
	}
	return append(buf, eofMarker)
}

// latin1 is the default decoder (Windows-1252) most tests read text with.
func latin1() textDecoder {
	text, _ := resolveCharset("", 0)
	return text
}

func cells(vals ...string) [][]byte {
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func lef64(v float64) []byte {
	return le64(math.Float64bits(v))
}

// dtCell builds the 8-byte DateTime form: Julian day, then milliseconds
// since midnight, both little-endian.
func dtCell(julian, millis uint32) []byte {
	return append(le32(julian), le32(millis)...)
}
