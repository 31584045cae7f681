package functions

import (
	"math"
	"testing"

	"github.com/FocuswithJustin/sparkfn/core/sparksql/internal/utf"
)

func TestSubstr(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		start  int32
		length int32
		want   string
	}{
		{"prefix", "Hello world", 1, 5, "Hello"},
		{"zero start", "Hello", 0, 3, "Hel"},
		{"middle", "hello", 2, 3, "ell"},
		{"negative start", "hello", -2, 2, "lo"},
		{"length past end", "hello", 1, 100, "hello"},
		{"zero length", "hello", 1, 0, ""},
		{"negative length", "hello", 2, -1, ""},
		{"start past end", "hello", 6, 1, ""},
		{"start far past end", "hello", 100, 5, ""},
		{"very negative start", "hello", -100, math.MaxInt32, "hello"},
		{"very negative start short length", "hello", -7, 3, "h"},
		{"negative start fully before", "hello", -10, 3, ""},
		{"overflowing last", "hello", 3, math.MaxInt32, "llo"},
		{"min start", "hello", math.MinInt32, math.MaxInt32, "hell"},
		{"unicode", "世界你好", 1, 2, "世界"},
		{"unicode negative", "aé日𐍈b", -3, 2, "日𐍈"},
		{"empty", "", 1, 5, ""},
		{"empty zero start", "", 0, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substr(tt.s, tt.start, tt.length); got != tt.want {
				t.Errorf("Substr(%q, %d, %d) = %q, want %q", tt.s, tt.start, tt.length, got, tt.want)
			}
		})
	}
}

func TestSubstrFrom(t *testing.T) {
	tests := []struct {
		s     string
		start int32
		want  string
	}{
		{"Hello world", -5, "world"},
		{"Hello world", 7, "world"},
		{"Hello world", 0, "Hello world"},
		{"Hello world", 12, ""},
		{"Hello world", -20, "Hello world"},
		{"ééé", 2, "éé"},
	}

	for _, tt := range tests {
		if got := SubstrFrom(tt.s, tt.start); got != tt.want {
			t.Errorf("SubstrFrom(%q, %d) = %q, want %q", tt.s, tt.start, got, tt.want)
		}
	}
}

func TestSubstrWholeString(t *testing.T) {
	for _, s := range []string{"", "a", "Hello world", "日本語テキスト", "mixé𐍈"} {
		if got := Substr(s, 1, Length(s)); got != s {
			t.Errorf("Substr(%q, 1, length) = %q", s, got)
		}
	}
}

func TestSubstrBorrowsInput(t *testing.T) {
	s := "Hello world"
	got := Substr(s, 7, 5)
	r := resolveRange(utf.ASCII, s, 7, 5)
	if got != s[r.Start:r.End] || r.Start != 6 || r.End != 11 {
		t.Errorf("resolveRange = %+v, result %q", r, got)
	}
}

func TestResolvePositions(t *testing.T) {
	tests := []struct {
		name     string
		numChars int32
		start    int32
		length   int32
		first    int32
		n        int32
		ok       bool
	}{
		{"basic", 11, 1, 5, 1, 5, true},
		{"zero start", 5, 0, 3, 1, 3, true},
		{"negative start", 11, -5, math.MaxInt32, 7, 5, true},
		{"length short circuits", 5, 100, 0, 0, 0, false},
		{"start beyond", 5, 6, 1, 0, 0, false},
		{"overflow clamps", 5, 2, math.MaxInt32, 2, 4, true},
		{"very negative clamps start", 5, -100, math.MaxInt32, 1, 5, true},
		{"empty string", 0, 1, 1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, n, ok := resolvePositions(tt.numChars, tt.start, tt.length)
			if first != tt.first || n != tt.n || ok != tt.ok {
				t.Errorf("resolvePositions(%d, %d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.numChars, tt.start, tt.length, first, n, ok, tt.first, tt.n, tt.ok)
			}
		})
	}
}

func TestSubstrASCIIPathMatchesUTF8Path(t *testing.T) {
	inputs := []string{"", "a", "Hello world", "  x  "}
	positions := []int32{math.MinInt32, -20, -3, -1, 0, 1, 2, 5, 11, 12, math.MaxInt32}
	lengths := []int32{math.MinInt32, -1, 0, 1, 3, 11, math.MaxInt32}

	for _, s := range inputs {
		for _, start := range positions {
			for _, length := range lengths {
				a := substrWith(utf.ASCII, s, start, length)
				u := substrWith(utf.UTF8, s, start, length)
				if a != u {
					t.Errorf("substr(%q, %d, %d): ascii %q, utf8 %q", s, start, length, a, u)
				}
			}
		}
	}
}

func TestSubstrFunc(t *testing.T) {
	if got := call(t, "substr", testStr("Hello world"), testInt(-5)).AsString(); got != "world" {
		t.Errorf("substr('Hello world', -5) = %q", got)
	}
	if got := call(t, "substr", testStr("Hello"), testInt(0), testInt(3)).AsString(); got != "Hel" {
		t.Errorf("substr('Hello', 0, 3) = %q", got)
	}
	// Arguments outside int32 saturate before position math.
	if got := call(t, "substr", testStr("Hello"), testInt(2), testInt(math.MaxInt64)).AsString(); got != "ello" {
		t.Errorf("substr('Hello', 2, maxint64) = %q", got)
	}
}

func BenchmarkSubstrASCII(b *testing.B) {
	s := "The quick brown fox jumps over the lazy dog"
	for i := 0; i < b.N; i++ {
		Substr(s, 5, 10)
	}
}

func BenchmarkSubstrUTF8(b *testing.B) {
	s := "Příliš žluťoučký kůň úpěl ďábelské ódy"
	for i := 0; i < b.N; i++ {
		Substr(s, 5, 10)
	}
}
