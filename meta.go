package dbf

// rawHeader is the on-disk layout of the 32-byte file header, read with
// binary.Read in little-endian order. Reserved regions are kept so the
// struct size matches the format exactly.
type rawHeader struct {
	Version          byte
	LastUpdateYear   byte
	LastUpdateMonth  byte
	LastUpdateDay    byte
	RecordCount      uint32
	HeaderLength     uint16
	RecordLength     uint16
	Reserved         [2]byte
	TransactionFlag  byte
	EncryptionFlag   byte
	Reserved2        [12]byte
	IndexFlag        byte
	LanguageDriverID byte
	Reserved3        [2]byte
}

// rawFieldDescriptor is the on-disk layout of one 32-byte field descriptor
// from the area between the header and the record data.
type rawFieldDescriptor struct {
	Name       [11]byte
	Type       byte
	Reserved1  [4]byte
	Length     byte
	Decimal    byte
	Reserved2  [2]byte
	WorkAreaID byte
	Reserved3  [10]byte
	IndexFlag  byte
}
