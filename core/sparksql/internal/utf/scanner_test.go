package utf

import "testing"

func TestScannerFor(t *testing.T) {
	if ScannerFor("abc", "def") != ASCII {
		t.Error("ScannerFor(ascii...) should pick ASCII")
	}
	if ScannerFor("abc", "dé") != UTF8 {
		t.Error("ScannerFor(non-ascii) should pick UTF8")
	}
	if ScannerFor() != ASCII {
		t.Error("ScannerFor() should pick ASCII")
	}
}

func TestByteRange(t *testing.T) {
	tests := []struct {
		name   string
		sc     Scanner
		s      string
		start  int
		length int
		want   ByteRange
	}{
		{"ascii prefix", ASCII, "Hello world", 1, 5, ByteRange{0, 5}},
		{"ascii tail", ASCII, "Hello world", 7, 5, ByteRange{6, 11}},
		{"ascii clipped", ASCII, "Hello", 4, 10, ByteRange{3, 5}},
		{"ascii past end", ASCII, "Hello", 9, 2, ByteRange{5, 5}},
		{"utf8 prefix", UTF8, "世界你好", 1, 2, ByteRange{0, 6}},
		{"utf8 middle", UTF8, "aé日𐍈b", 2, 3, ByteRange{1, 10}},
		{"utf8 clipped", UTF8, "éé", 2, 10, ByteRange{2, 4}},
		{"utf8 past end", UTF8, "éé", 5, 1, ByteRange{4, 4}},
		{"zero length", UTF8, "éé", 1, 0, ByteRange{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sc.ByteRange(tt.s, tt.start, tt.length)
			if got != tt.want {
				t.Errorf("ByteRange(%q, %d, %d) = %+v, want %+v", tt.s, tt.start, tt.length, got, tt.want)
			}
			if got.Start < 0 || got.Start > got.End || got.End > len(tt.s) {
				t.Errorf("ByteRange(%q) = %+v is out of bounds", tt.s, got)
			}
		})
	}
}

func TestScannersAgreeOnASCII(t *testing.T) {
	inputs := []string{"", "a", "Hello world", "  padded  ", "x.y.z"}
	for _, s := range inputs {
		if ASCII.Len(s) != UTF8.Len(s) {
			t.Errorf("Len(%q) differs: %d vs %d", s, ASCII.Len(s), UTF8.Len(s))
		}
		for start := 1; start <= len(s)+1; start++ {
			for length := 0; length <= len(s)+1; length++ {
				a := ASCII.ByteRange(s, start, length)
				u := UTF8.ByteRange(s, start, length)
				if a != u {
					t.Errorf("ByteRange(%q, %d, %d): ASCII %+v, UTF8 %+v", s, start, length, a, u)
				}
			}
		}
		for end := 0; end <= len(s); end++ {
			if a, u := ASCII.Prev(s, 0, end), UTF8.Prev(s, 0, end); a != u {
				t.Errorf("Prev(%q, %d): ASCII %d, UTF8 %d", s, end, a, u)
			}
		}
	}
}

func TestUTF8PrevFindsBoundary(t *testing.T) {
	s := "a日𐍈"
	if got := UTF8.Prev(s, 0, len(s)); got != 4 {
		t.Errorf("Prev(end) = %d, want 4", got)
	}
	if got := UTF8.Prev(s, 0, 4); got != 1 {
		t.Errorf("Prev(4) = %d, want 1", got)
	}
	if got := UTF8.Prev(s, 0, 1); got != 0 {
		t.Errorf("Prev(1) = %d, want 0", got)
	}
	if got := UTF8.Prev(s, 2, 4); got != 2 {
		t.Errorf("Prev with floor = %d, want 2", got)
	}
	if got := UTF8.Prev(s, 0, 0); got != 0 {
		t.Errorf("Prev(0) = %d, want 0", got)
	}
}

func TestByteRangeHelpers(t *testing.T) {
	r := ByteRange{Start: 2, End: 5}
	if r.Len() != 3 || r.Empty() {
		t.Errorf("ByteRange %+v: Len=%d Empty=%v", r, r.Len(), r.Empty())
	}
	if got := r.Slice("abcdefg"); got != "cde" {
		t.Errorf("Slice = %q, want %q", got, "cde")
	}
	if !(ByteRange{3, 3}).Empty() {
		t.Error("zero-width range should be empty")
	}
}
