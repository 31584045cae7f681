package utf

// ByteRange is a half-open [Start, End) range of byte offsets into a string.
// It always satisfies 0 <= Start <= End <= len(s) for the string it was
// computed from.
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range covers no bytes.
func (r ByteRange) Empty() bool {
	return r.End <= r.Start
}

// Slice returns s[r.Start:r.End]. The result shares s's storage.
func (r ByteRange) Slice(s string) string {
	return s[r.Start:r.End]
}

// Scanner steps through a string one character at a time. ASCII treats every
// byte as a character; UTF8 follows code-point boundaries. Both agree on
// strings that contain only ASCII bytes.
type Scanner interface {
	// Len returns the number of characters in s.
	Len(s string) int

	// Next returns the byte length of the character starting at s[i].
	Next(s string, i int) int

	// Prev returns the offset of the character that ends at end, never
	// moving below floor.
	Prev(s string, floor, end int) int

	// ByteRange converts the 1-based character range [start, start+length)
	// into byte offsets. start must be >= 1 and length >= 0; ranges running
	// past the end of s are clipped.
	ByteRange(s string, start, length int) ByteRange
}

// ASCII is the single-byte Scanner.
var ASCII Scanner = asciiScanner{}

// UTF8 is the code-point Scanner.
var UTF8 Scanner = utf8Scanner{}

// ScannerFor returns ASCII when every argument is pure ASCII and UTF8
// otherwise.
func ScannerFor(strs ...string) Scanner {
	for _, s := range strs {
		if !IsASCII(s) {
			return UTF8
		}
	}
	return ASCII
}

type asciiScanner struct{}

func (asciiScanner) Len(s string) int { return len(s) }

func (asciiScanner) Next(s string, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	return 1
}

func (asciiScanner) Prev(s string, floor, end int) int {
	if end <= floor {
		return floor
	}
	return end - 1
}

func (asciiScanner) ByteRange(s string, start, length int) ByteRange {
	return clipRange(len(s), start-1, start-1+length)
}

type utf8Scanner struct{}

func (utf8Scanner) Len(s string) int { return Length(s) }

func (utf8Scanner) Next(s string, i int) int { return CharLengthAt(s, i) }

func (utf8Scanner) Prev(s string, floor, end int) int {
	if end > len(s) {
		end = len(s)
	}
	if end <= floor {
		return floor
	}
	p := end - 1
	for p > floor && !IsLeadByte(s[p]) {
		p--
	}
	return p
}

func (utf8Scanner) ByteRange(s string, start, length int) ByteRange {
	i := 0
	for skip := start - 1; skip > 0 && i < len(s); skip-- {
		i += CharLengthAt(s, i)
	}
	j := i
	for ; length > 0 && j < len(s); length-- {
		j += CharLengthAt(s, j)
	}
	return ByteRange{Start: i, End: j}
}

func clipRange(n, start, end int) ByteRange {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return ByteRange{Start: start, End: end}
}
