package table

import "testing"

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"NoEscapes", "plain text", "plain text"},
		{"Newline", `a\nb`, "a\nb"},
		{"Tab", `a\tb`, "a\tb"},
		{"CarriageReturn", `a\rb`, "a\rb"},
		{"Alert", `\a`, "\a"},
		{"Backspace", `\b`, "\b"},
		{"FormFeed", `\f`, "\f"},
		{"VerticalTab", `\v`, "\v"},
		{"Escape", `\e[31m`, "\x1b[31m"},
		{"Backslash", `a\\b`, `a\b`},
		{"HexUpper", `\x41`, "A"},
		{"HexLower", `\x6a`, "j"},
		{"HexSingleDigit", `\x4!`, "\x04!"},
		{"HexNoDigits", `\xg`, `\xg`},
		{"HexStopsAfterTwo", `\x411`, "A1"},
		{"OctalZeroPrefixed", `\0101`, "A"},
		{"OctalBare", `\101`, "A"},
		{"OctalNul", `\0`, "\x00"},
		{"OctalWrapsByte", `\0777`, "\xff"},
		{"EightIsNotOctal", `\8`, `\8`},
		{"TruncateAtC", `ab\cdef`, "ab"},
		{"UnknownKeptVerbatim", `\q`, `\q`},
		{"TrailingBackslash", `ab\`, `ab\`},
		{"EmojiFromHexBytes", `\xf0\x9f\x98\x80`, "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeEscapes(tt.in); got != tt.want {
				t.Errorf("decodeEscapes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
