package dbf

import "fmt"

// Metadata is the descriptive block attached to a decoded table. Field
// names follow the JSON surface consumed by spreadsheet frontends.
type Metadata struct {
	VersionCode           byte        `json:"versionCode"`
	VersionName           string      `json:"versionName"`
	LastUpdate            string      `json:"lastUpdate"`
	TotalRecords          int         `json:"totalRecords"`
	ActiveRecords         int         `json:"activeRecords"`
	DeletedRecords        int         `json:"deletedRecords"`
	RecordLength          int         `json:"recordLength"`
	HeaderLength          int         `json:"headerLength"`
	IncompleteTransaction bool        `json:"incompleteTransaction"`
	Encrypted             bool        `json:"encrypted"`
	HasIndex              bool        `json:"hasIndex"`
	LanguageDriverID      byte        `json:"languageDriverId"`
	Charset               string      `json:"charset"`
	Fields                []FieldMeta `json:"fields"`
	DeletedRecordIndices  []int       `json:"deletedRecordIndices,omitempty"`
}

// FieldMeta describes one field for the metadata block.
type FieldMeta struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	TypeName     string `json:"typeName"`
	Length       int    `json:"length"`
	DecimalCount int    `json:"decimalCount"`
	DisplayType  string `json:"displayType,omitempty"`
}

// buildMetadata aggregates header, field and record statistics. The last
// update date is formatted as stored, without calendar normalization.
func buildMetadata(h Header, fields []Field, activeRecords int, deletedIndices []int, charset string) *Metadata {
	m := &Metadata{
		VersionCode:           h.Version,
		VersionName:           h.VersionName,
		LastUpdate:            fmt.Sprintf("%04d-%02d-%02d", h.LastUpdateYear, h.LastUpdateMonth, h.LastUpdateDay),
		TotalRecords:          int(h.RecordCount),
		ActiveRecords:         activeRecords,
		DeletedRecords:        len(deletedIndices),
		RecordLength:          int(h.RecordLength),
		HeaderLength:          int(h.HeaderLength),
		IncompleteTransaction: h.IncompleteTransaction,
		Encrypted:             h.Encrypted,
		HasIndex:              h.HasIndex,
		LanguageDriverID:      h.LanguageDriverID,
		Charset:               charset,
		Fields:                make([]FieldMeta, len(fields)),
		DeletedRecordIndices:  deletedIndices,
	}
	for i, f := range fields {
		m.Fields[i] = FieldMeta{
			Name:         f.Name,
			Type:         string(f.Type),
			TypeName:     f.TypeName,
			Length:       f.Length,
			DecimalCount: f.DecimalCount,
			DisplayType:  displayType(f.Type),
		}
	}
	return m
}
