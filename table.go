package dbf

import "strings"

// sheetName labels the single sheet every decode produces.
const sheetName = "DBF Data"

const (
	minColumnWidth = 100
	widthPerChar   = 10

	dateFormat     = "YYYY-MM-DD"
	dateTimeFormat = "YYYY-MM-DD HH24:MI"
	currencyMask   = "0.00"
)

// Column is one spreadsheet column definition derived from a field.
type Column struct {
	Type    string         `json:"type,omitempty"`
	Title   string         `json:"title"`
	Name    string         `json:"name"`
	Width   int            `json:"width"`
	Decimal string         `json:"decimal,omitempty"`
	Mask    string         `json:"mask,omitempty"`
	Options *ColumnOptions `json:"options,omitempty"`
}

// ColumnOptions carries calendar display settings for date-like columns.
type ColumnOptions struct {
	Format string `json:"format"`
	Time   bool   `json:"time,omitempty"`
}

// Sheet is one assembled table: rows aligned to the column order, plus the
// metadata block.
type Sheet struct {
	Name    string    `json:"name"`
	Data    [][]Value `json:"data"`
	Columns []Column  `json:"columns"`
	Meta    *Metadata `json:"meta"`
}

// Spreadsheet is the holder handed to callers. DBF input always yields
// exactly one sheet.
type Spreadsheet struct {
	Sheets []*Sheet `json:"sheets"`
}

// displayTypes maps field type codes to spreadsheet column types. Codes
// without an entry (General, Picture, unknown) get no explicit type.
var displayTypes = map[byte]string{
	'C': "text",
	'M': "text",
	'N': "numeric",
	'F': "numeric",
	'I': "numeric",
	'Y': "numeric",
	'B': "numeric",
	'+': "numeric",
	'L': "checkbox",
	'D': "calendar",
	'T': "calendar",
	'@': "calendar",
}

func displayType(t byte) string {
	return displayTypes[t]
}

// buildColumns derives one column definition per field: pixel width from
// the field length, display type, and per-type formatting (decimal masks
// for fractional numerics, fixed two decimals for currency, calendar
// formats for date-like types).
func buildColumns(fields []Field) []Column {
	columns := make([]Column, len(fields))
	for i, f := range fields {
		col := Column{
			Type:  displayType(f.Type),
			Title: f.Name,
			Name:  f.Name,
			Width: columnWidth(f.Length),
		}
		switch f.Type {
		case 'N', 'F':
			if f.DecimalCount > 0 {
				col.Decimal = "."
				col.Mask = decimalMask(f.DecimalCount)
			}
		case 'Y':
			col.Decimal = "."
			col.Mask = currencyMask
		case 'D':
			col.Options = &ColumnOptions{Format: dateFormat}
		case 'T', '@':
			col.Options = &ColumnOptions{Format: dateTimeFormat, Time: true}
		}
		columns[i] = col
	}
	return columns
}

func columnWidth(length int) int {
	if w := length * widthPerChar; w > minColumnWidth {
		return w
	}
	return minColumnWidth
}

func decimalMask(places int) string {
	return "0." + strings.Repeat("0", places)
}

func buildSheet(fields []Field, rows [][]Value, meta *Metadata) *Sheet {
	return &Sheet{
		Name:    sheetName,
		Data:    rows,
		Columns: buildColumns(fields),
		Meta:    meta,
	}
}
