package dbf

import (
	"github.com/axgle/mahonia"
	"golang.org/x/text/encoding/charmap"
)

// textDecoder converts raw single-byte text to a Go string. Implementations
// must be safe for concurrent use; the parallel record path shares one
// decoder across workers.
type textDecoder func([]byte) string

// languageDriverCharmaps maps the header's languageDriverId byte to the
// single-byte code page it declares. Ids whose page has no charmap table
// (Kamenicky, Mazovia, the multi-byte CJK pages) are absent and fall back
// to Windows-1252.
var languageDriverCharmaps = map[byte]*charmap.Charmap{
	0x01: charmap.CodePage437,
	0x02: charmap.CodePage850,
	0x03: charmap.Windows1252,
	0x04: charmap.Macintosh,
	0x08: charmap.CodePage865,
	0x09: charmap.CodePage437,
	0x0A: charmap.CodePage850,
	0x0B: charmap.CodePage437,
	0x0D: charmap.CodePage437,
	0x0E: charmap.CodePage850,
	0x0F: charmap.CodePage437,
	0x10: charmap.CodePage850,
	0x11: charmap.CodePage437,
	0x12: charmap.CodePage850,
	0x14: charmap.CodePage850,
	0x15: charmap.CodePage437,
	0x16: charmap.CodePage850,
	0x17: charmap.CodePage865,
	0x18: charmap.CodePage437,
	0x19: charmap.CodePage437,
	0x1A: charmap.CodePage850,
	0x1B: charmap.CodePage437,
	0x1C: charmap.CodePage863,
	0x1D: charmap.CodePage850,
	0x1F: charmap.CodePage852,
	0x22: charmap.CodePage852,
	0x23: charmap.CodePage852,
	0x24: charmap.CodePage860,
	0x25: charmap.CodePage850,
	0x26: charmap.CodePage866,
	0x37: charmap.CodePage850,
	0x40: charmap.CodePage852,
	0x50: charmap.Windows874,
	0x57: charmap.Windows1252,
	0x58: charmap.Windows1252,
	0x59: charmap.Windows1252,
	0x64: charmap.CodePage852,
	0x65: charmap.CodePage866,
	0x66: charmap.CodePage865,
	0x6C: charmap.CodePage863,
	0x7C: charmap.Windows874,
	0x7D: charmap.Windows1255,
	0x7E: charmap.Windows1256,
	0x87: charmap.CodePage852,
	0x96: charmap.MacintoshCyrillic,
	0xC8: charmap.Windows1250,
	0xC9: charmap.Windows1251,
	0xCA: charmap.Windows1254,
	0xCB: charmap.Windows1253,
	0xCC: charmap.Windows1257,
}

// resolveCharset picks the byte→text decoder for one decode call and the
// charset name reported in metadata. A non-empty encoding name is resolved
// through mahonia; unknown names fall back to the language driver id, and
// unknown driver ids fall back to Windows-1252.
func resolveCharset(encoding string, driver byte) (textDecoder, string) {
	if encoding != "" {
		if d := mahonia.NewDecoder(encoding); d != nil {
			return func(raw []byte) string {
				return d.ConvertString(string(raw))
			}, encoding
		}
	}
	cm, ok := languageDriverCharmaps[driver]
	if !ok {
		cm = charmap.Windows1252
	}
	return charmapDecoder(cm), cm.String()
}

// charmapDecoder maps each byte through the code page table. DecodeByte is
// a pure lookup, so the returned decoder is goroutine-safe.
func charmapDecoder(cm *charmap.Charmap) textDecoder {
	return func(raw []byte) string {
		runes := make([]rune, len(raw))
		for i, b := range raw {
			runes[i] = cm.DecodeByte(b)
		}
		return string(runes)
	}
}
