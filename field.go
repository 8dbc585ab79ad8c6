package dbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// descriptorSize is the byte length of one field descriptor entry.
	descriptorSize = 32
	// fieldTerminator ends the descriptor area.
	fieldTerminator = 0x0D
)

// Field is one decoded column definition from the descriptor area. Order
// matters: a field's byte offset within a record is the cumulative sum of
// the lengths of the fields before it, plus the deletion flag.
type Field struct {
	Name         string
	Type         byte
	TypeName     string
	Length       int
	DecimalCount int
	WorkAreaID   byte
	HasIndex     bool
}

var fieldTypeNames = map[byte]string{
	'C': "Character",
	'N': "Numeric",
	'F': "Float",
	'L': "Logical",
	'D': "Date",
	'T': "DateTime",
	'@': "Timestamp",
	'I': "Integer",
	'Y': "Currency",
	'B': "Double",
	'M': "Memo",
	'G': "General",
	'P': "Picture",
	'+': "Autoincrement",
}

func fieldTypeName(t byte) string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// decodeFields reads 32-byte descriptor entries starting at offset 32,
// stopping at the 0x0D terminator or at offset headerLength-1. Length and
// decimal counts are passed through unvalidated; corrupt values surface in
// the output rather than failing the decode.
func decodeFields(data []byte, h Header, text textDecoder) ([]Field, error) {
	if len(data) < int(h.HeaderLength) {
		return nil, fmt.Errorf("descriptor area ends at %d, have %d bytes: %w", h.HeaderLength, len(data), ErrTruncated)
	}
	var fields []Field
	for off := headerSize; off < int(h.HeaderLength)-1; off += descriptorSize {
		if data[off] == fieldTerminator {
			break
		}
		if off+descriptorSize > len(data) {
			// headerLength points past the input; stop scanning
			break
		}
		var raw rawFieldDescriptor
		if err := binary.Read(bytes.NewReader(data[off:off+descriptorSize]), binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("read field descriptor at %d: %w", off, err)
		}
		name := raw.Name[:]
		if i := bytes.IndexByte(name, 0x00); i >= 0 {
			name = name[:i]
		}
		fields = append(fields, Field{
			Name:         text(name),
			Type:         raw.Type,
			TypeName:     fieldTypeName(raw.Type),
			Length:       int(raw.Length),
			DecimalCount: int(raw.Decimal),
			WorkAreaID:   raw.WorkAreaID,
			HasIndex:     raw.IndexFlag != 0,
		})
	}
	return fields, nil
}
