package dbf

import (
	"fmt"
	"io"
	"os"
)

// Load reads a whole DBF file into memory. Decoding never streams; the
// complete byte image is the unit of work.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return data, nil
}

// LoadReader drains r into memory, for callers holding an open handle
// instead of a path.
func LoadReader(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load reader: %w", err)
	}
	return data, nil
}

// DecodeFile loads and decodes path with default options.
func DecodeFile(path string) (*Spreadsheet, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Config drives the callback-style entry points. Exactly one of OnLoad and
// OnError runs per call; a nil callback drops its outcome.
type Config struct {
	Options DecodeOptions
	OnLoad  func(*Spreadsheet)
	OnError func(error)
}

// Parse decodes data and reports the outcome through cfg's callbacks.
func Parse(data []byte, cfg Config) {
	sheet, err := DecodeWithOptions(data, cfg.Options)
	if err != nil {
		if cfg.OnError != nil {
			cfg.OnError(err)
		}
		return
	}
	if cfg.OnLoad != nil {
		cfg.OnLoad(sheet)
	}
}

// ParseFile loads path and decodes it through the same callback contract
// as Parse. Load failures go to OnError.
func ParseFile(path string, cfg Config) {
	data, err := Load(path)
	if err != nil {
		if cfg.OnError != nil {
			cfg.OnError(err)
		}
		return
	}
	Parse(data, cfg)
}
