package dbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// headerSize is the fixed byte length of the file header region.
const headerSize = 32

// Header is the decoded file header. Counts and offsets are carried as
// unsigned values exactly as stored; LastUpdateYear already includes the
// +1900 offset applied to the stored byte.
type Header struct {
	Version               byte
	VersionName           string
	LastUpdateYear        int
	LastUpdateMonth       int
	LastUpdateDay         int
	RecordCount           uint32
	HeaderLength          uint16
	RecordLength          uint16
	IncompleteTransaction bool
	Encrypted             bool
	HasIndex              bool
	LanguageDriverID      byte
}

var versionNames = map[byte]string{
	0x02: "FoxBASE",
	0x03: "dBASE III",
	0x04: "dBASE IV",
	0x05: "dBASE V",
	0x07: "Visual Objects",
	0x30: "Visual FoxPro",
	0x31: "Visual FoxPro, autoincrement",
	0x32: "Visual FoxPro, varchar",
	0x43: "dBASE IV SQL table",
	0x63: "dBASE IV SQL system",
	0x7B: "dBASE IV with memo",
	0x83: "dBASE III with memo",
	0x8B: "dBASE IV with memo",
	0xCB: "dBASE IV SQL table with memo",
	0xE5: "Clipper SIX with SMT memo",
	0xF5: "FoxPro 2.x with memo",
	0xFB: "FoxBASE with memo",
}

func versionName(v byte) string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (0x%02x)", v)
}

// decodeHeader reads the 32-byte header at the start of data.
func decodeHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("header needs %d bytes, have %d: %w", headerSize, len(data), ErrTruncated)
	}
	var raw rawHeader
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &raw); err != nil {
		return Header{}, fmt.Errorf("read header: %w", err)
	}
	return Header{
		Version:               raw.Version,
		VersionName:           versionName(raw.Version),
		LastUpdateYear:        int(raw.LastUpdateYear) + 1900,
		LastUpdateMonth:       int(raw.LastUpdateMonth),
		LastUpdateDay:         int(raw.LastUpdateDay),
		RecordCount:           raw.RecordCount,
		HeaderLength:          raw.HeaderLength,
		RecordLength:          raw.RecordLength,
		IncompleteTransaction: raw.TransactionFlag != 0,
		Encrypted:             raw.EncryptionFlag != 0,
		HasIndex:              raw.IndexFlag != 0,
		LanguageDriverID:      raw.LanguageDriverID,
	}, nil
}
