package textwrap

import (
	"reflect"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []string
	}{
		{"Empty", "", Options{Width: 5}, []string{""}},
		{"Fits", "abc", Options{Width: 5}, []string{"abc"}},
		{"SoftWrap", "foo bar baz", Options{Width: 3}, []string{"foo", "bar", "baz"}},
		{"SoftWrapUneven", "foo bar baz", Options{Width: 7}, []string{"foo bar", "baz"}},
		{"ZeroWidthPassthrough", "foo bar", Options{}, []string{"foo bar"}},
		{
			name: "ZeroWidthKeepsHardNewlines",
			in:   "foo\nbar",
			opts: Options{},
			want: []string{"foo", "bar"},
		},
		{
			name: "HardNewlinesPreserved",
			in:   "ab\ncd ef",
			opts: Options{Width: 2, KeepNewlines: true},
			want: []string{"ab", "cd", "ef"},
		},
		{
			name: "OverlongWordKeptIntact",
			in:   "abcdef",
			opts: Options{Width: 3},
			want: []string{"abcdef"},
		},
		{
			name: "OverlongWordHardBroken",
			in:   "abcdef",
			opts: Options{Width: 3, BreakWords: true},
			want: []string{"abc", "def"},
		},
		{
			name: "HyphenBreakpoint",
			in:   "foo-bar",
			opts: Options{Width: 4},
			want: []string{"foo-", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.in, &tt.opts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLineWidths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want []int
	}{
		{"Empty", "", Options{Width: 4}, []int{0}},
		{"TwoLines", "foo bar", Options{Width: 3}, []int{3, 3}},
		{"OverlongReported", "abcdef", Options{Width: 3}, []int{6}},
		{"AnsiIgnored", "\x1b[31mred\x1b[0m", Options{Width: 10}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineWidths(tt.in, &tt.opts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LineWidths(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"Empty", "", 0},
		{"ASCII", "abc", 3},
		{"AnsiStripped", "\x1b[1mbold\x1b[0m", 4},
		{"WideRunes", "日本", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestVarWidths(t *testing.T) {
	vw := NewVarWidths(Options{KeepNewlines: true})

	a := vw.AtWidth(3)
	if a.Width != 3 {
		t.Errorf("AtWidth(3).Width = %d, want 3", a.Width)
	}

	b := vw.AtWidth(7)
	if b.Width != 7 {
		t.Errorf("AtWidth(7).Width = %d, want 7", b.Width)
	}
	if a != b {
		t.Error("AtWidth should return the same underlying Options")
	}
	if !b.KeepNewlines {
		t.Error("AtWidth should preserve the other option fields")
	}
}
