package dbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Value is one decoded cell: string, float64, bool, or nil for null.
// Numbers are always float64 regardless of field type, matching spreadsheet
// number semantics.
type Value = any

const (
	// julianUnixEpoch is the Julian day number of 1970-01-01.
	julianUnixEpoch = 2440588
	millisPerDay    = 86400000
	// isoInstantLayout renders UTC instants with millisecond precision and
	// a trailing Z.
	isoInstantLayout = "2006-01-02T15:04:05.000Z07:00"
)

// decodeValue converts the raw bytes of one field of one record into a
// Value. raw is exactly field.Length bytes (shorter only when clamped at
// the end of corrupt input). Anomalies never error: anything that fails its
// type rule decodes to nil, and a whitespace-only slice is nil for every
// type. Binary forms (Integer, DateTime, Currency, Double, Autoincrement)
// interpret the untrimmed bytes when the raw length matches; text fallbacks
// parse the trimmed text.
func decodeValue(raw []byte, f Field, text textDecoder) Value {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	switch f.Type {
	case 'C', 'M':
		return text(trimmed)
	case 'N', 'F':
		return parseDecimal(trimmed)
	case 'I', '+':
		if len(raw) == 4 {
			return float64(binary.LittleEndian.Uint32(raw))
		}
		return parseInteger(trimmed)
	case 'L':
		return parseLogical(trimmed)
	case 'D':
		return parseDate(trimmed)
	case 'T':
		return parseDateTime(raw)
	case 'Y':
		if len(raw) == 8 {
			low := binary.LittleEndian.Uint32(raw[0:4])
			high := binary.LittleEndian.Uint32(raw[4:8])
			return float64(uint64(high)<<32|uint64(low)) / 10000
		}
		return parseDecimal(trimmed)
	case 'B':
		if len(raw) == 8 {
			return math.Float64frombits(binary.LittleEndian.Uint64(raw))
		}
		return parseDecimal(trimmed)
	case '@':
		return text(trimmed)
	case 'G', 'P':
		return fmt.Sprintf("[binary %d bytes]", len(raw))
	default:
		return text(trimmed)
	}
}

func parseDecimal(trimmed []byte) Value {
	n, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return nil
	}
	return n
}

func parseInteger(trimmed []byte) Value {
	n, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return nil
	}
	return float64(n)
}

func parseLogical(trimmed []byte) Value {
	c := trimmed[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 'T', 'Y':
		return true
	case 'F', 'N':
		return false
	}
	return nil
}

// parseDate accepts exactly eight digits "YYYYMMDD" and reshapes them as
// "YYYY-MM-DD". No calendar validation: 20231399 passes through reshaped.
func parseDate(trimmed []byte) Value {
	if len(trimmed) != 8 {
		return nil
	}
	for _, c := range trimmed {
		if c < '0' || c > '9' {
			return nil
		}
	}
	s := string(trimmed)
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
}

// parseDateTime decodes the 8-byte FoxPro timestamp: little-endian Julian
// day count, then little-endian milliseconds since midnight. Day zero and
// any other raw length decode to nil.
func parseDateTime(raw []byte) Value {
	if len(raw) != 8 {
		return nil
	}
	julian := binary.LittleEndian.Uint32(raw[0:4])
	millis := binary.LittleEndian.Uint32(raw[4:8])
	if julian == 0 {
		return nil
	}
	days := int64(julian) - julianUnixEpoch
	instant := days*millisPerDay + int64(millis)
	return time.UnixMilli(instant).UTC().Format(isoInstantLayout)
}
