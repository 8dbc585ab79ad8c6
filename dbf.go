// Package dbf decodes dBASE/xBase table files (.dbf) into a spreadsheet
// style representation: typed columns, row values, and file metadata.
//
// Decoding is a pure function over a fully loaded byte image. The pipeline
// runs header, field descriptors, records, metadata, sheet assembly, in
// that order, and never aborts on data-level anomalies: malformed values
// decode to null, unknown versions and field types get labeled, and only
// structural truncation fails the call.
package dbf

// DecodeOptions adjusts a decode call. The zero value decodes sequentially
// with the charset implied by the file's language driver id.
type DecodeOptions struct {
	// Encoding overrides the language driver charset with a named one,
	// resolved through mahonia ("gbk", "big5", "cp1251", ...). Unknown
	// names fall back to the language driver id.
	Encoding string
	// Workers > 1 decodes records on that many goroutines. Output is
	// identical to the sequential decode.
	Workers int
}

// Table is the decoded model before sheet assembly: the header, ordered
// fields, active rows in record order, and the original positions of
// deleted records.
type Table struct {
	Header         Header
	Fields         []Field
	Rows           [][]Value
	DeletedIndices []int
	Meta           *Metadata
}

// Decode decodes a complete DBF byte image with default options.
func Decode(data []byte) (*Spreadsheet, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// DecodeWithOptions decodes a complete DBF byte image into the spreadsheet
// holder: one sheet carrying columns, rows, and metadata.
func DecodeWithOptions(data []byte, opts DecodeOptions) (*Spreadsheet, error) {
	t, err := DecodeTable(data, opts)
	if err != nil {
		return nil, err
	}
	return &Spreadsheet{Sheets: []*Sheet{buildSheet(t.Fields, t.Rows, t.Meta)}}, nil
}

// DecodeTable runs the decode pipeline and returns the raw table model,
// for callers that want the decoded data without the spreadsheet shaping.
func DecodeTable(data []byte, opts DecodeOptions) (*Table, error) {
	header, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	text, charset := resolveCharset(opts.Encoding, header.LanguageDriverID)
	fields, err := decodeFields(data, header, text)
	if err != nil {
		return nil, err
	}
	rows, deletedIndices, err := decodeRecords(data, header, fields, text, opts.Workers)
	if err != nil {
		return nil, err
	}
	meta := buildMetadata(header, fields, len(rows), deletedIndices, charset)
	return &Table{
		Header:         header,
		Fields:         fields,
		Rows:           rows,
		DeletedIndices: deletedIndices,
		Meta:           meta,
	}, nil
}
