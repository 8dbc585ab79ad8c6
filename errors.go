package dbf

import "errors"

// ErrTruncated reports input too short to hold a structural region of the
// file: the 32-byte header, the field descriptor area, or the record data
// promised by the header counts. It is the only fatal decode condition;
// everything below the structural level degrades to null values or
// "Unknown" labels instead of failing.
var ErrTruncated = errors.New("dbf: truncated input")
