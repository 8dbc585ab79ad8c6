package dbf

import (
	"fmt"
	"sync"
)

const (
	// recordActive marks a live record; recordDeleted a soft-deleted one.
	// Any other flag byte is treated as active so files touched by sloppy
	// writers keep their rows.
	recordActive  = 0x20
	recordDeleted = 0x2A
	// eofMarker optionally trails the record area.
	eofMarker = 0x1A
)

// decodeRecords decodes all recordCount records starting at headerLength.
// Active rows come back in original record order; deleted records are
// excluded from rows and their zero-based indices collected in ascending
// order. workers > 1 decodes records concurrently with identical output.
func decodeRecords(data []byte, h Header, fields []Field, text textDecoder, workers int) ([][]Value, []int, error) {
	need := int64(h.HeaderLength) + int64(h.RecordCount)*int64(h.RecordLength)
	if int64(len(data)) < need {
		return nil, nil, fmt.Errorf("record area needs %d bytes, have %d: %w", need, len(data), ErrTruncated)
	}

	count := int(h.RecordCount)
	values := make([][]Value, count)
	deleted := make([]bool, count)

	if workers > count {
		workers = count
	}
	if workers > 1 {
		// Workers own disjoint index strides and write into per-index
		// slots, so assembly below restores original record order without
		// sorting.
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(start int) {
				defer wg.Done()
				for i := start; i < count; i += workers {
					values[i], deleted[i] = decodeRecord(data, h, fields, text, i)
				}
			}(w)
		}
		wg.Wait()
	} else {
		for i := 0; i < count; i++ {
			values[i], deleted[i] = decodeRecord(data, h, fields, text, i)
		}
	}

	rows := make([][]Value, 0, count)
	var deletedIndices []int
	for i := 0; i < count; i++ {
		if deleted[i] {
			deletedIndices = append(deletedIndices, i)
			continue
		}
		rows = append(rows, values[i])
	}
	return rows, deletedIndices, nil
}

// decodeRecord decodes one record: the deletion-flag byte, then
// field.Length bytes per field in descriptor order. Field slices that would
// overrun the input (corrupt descriptor lengths) are clamped; the values
// they cover decode to nil.
func decodeRecord(data []byte, h Header, fields []Field, text textDecoder, index int) ([]Value, bool) {
	row := make([]Value, len(fields))
	base := int(h.HeaderLength) + index*int(h.RecordLength)
	if base >= len(data) {
		return row, false
	}
	isDeleted := data[base] == recordDeleted

	pos := base + 1
	for i, f := range fields {
		end := pos + f.Length
		if end > len(data) {
			end = len(data)
		}
		var raw []byte
		if pos < end {
			raw = data[pos:end]
		}
		row[i] = decodeValue(raw, f, text)
		pos += f.Length
	}
	return row, isDeleted
}
