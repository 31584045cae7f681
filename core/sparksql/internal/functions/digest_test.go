package functions

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestMd5Hex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	}

	for _, tt := range tests {
		if got := Md5Hex([]byte(tt.in)); got != tt.want {
			t.Errorf("Md5Hex(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSha1Hex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	}

	for _, tt := range tests {
		if got := Sha1Hex([]byte(tt.in)); got != tt.want {
			t.Errorf("Sha1Hex(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSha2Hex(t *testing.T) {
	tests := []struct {
		bits int32
		want string
	}{
		{224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{0, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{384, "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{512, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, tt := range tests {
		got, ok := Sha2Hex([]byte("abc"), tt.bits)
		if !ok {
			t.Errorf("Sha2Hex(abc, %d) reported unsupported", tt.bits)
			continue
		}
		if got != tt.want {
			t.Errorf("Sha2Hex(abc, %d) = %s, want %s", tt.bits, got, tt.want)
		}
		if len(got) != 2*int(bitsOrDefault(tt.bits)/8) {
			t.Errorf("Sha2Hex(abc, %d) length = %d", tt.bits, len(got))
		}
	}
}

func bitsOrDefault(bits int32) int32 {
	if bits == 0 {
		return 256
	}
	return bits
}

func TestSha2HexUnsupported(t *testing.T) {
	for _, bits := range []int32{123, 1, -256, 128, 160, 1024} {
		if got, ok := Sha2Hex([]byte("abc"), bits); ok || got != "" {
			t.Errorf("Sha2Hex(abc, %d) = (%q, %v), want unsupported", bits, got, ok)
		}
	}
}

func TestSha2ZeroMatches256(t *testing.T) {
	for _, in := range [][]byte{nil, {}, []byte("Spark"), {0x00, 0xff, 0x10}} {
		zero, _ := Sha2Hex(in, 0)
		full, _ := Sha2Hex(in, 256)
		if zero != full {
			t.Errorf("sha2(%x, 0) = %s, sha2(%x, 256) = %s", in, zero, in, full)
		}
	}
}

func TestBlake3Hex(t *testing.T) {
	got := Blake3Hex(nil)
	if want := "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"; got != want {
		t.Errorf("Blake3Hex(empty) = %s, want %s", got, want)
	}
}

func TestEncodeDigestToBase16(t *testing.T) {
	digest := []byte{0x00, 0x01, 0x7f, 0x80, 0xab, 0xff}
	buf := make([]byte, 2*len(digest))
	copy(buf, digest)
	encodeDigestToBase16(buf, len(digest))
	if got, want := string(buf), hex.EncodeToString(digest); got != want {
		t.Errorf("encodeDigestToBase16 = %s, want %s", got, want)
	}
}

func TestHexDigestMatchesEncodingHex(t *testing.T) {
	for _, in := range []string{"", "a", "The quick brown fox", "日本語"} {
		sum := sha256.Sum256([]byte(in))
		if got, want := hexDigest(DefaultHasher, SHA256, []byte(in)), hex.EncodeToString(sum[:]); got != want {
			t.Errorf("hexDigest(%q) = %s, want %s", in, got, want)
		}
	}
}

// reallocHasher returns its digest in a fresh slice instead of appending
// to dst.
type reallocHasher struct{}

func (reallocHasher) AppendSum(_ []byte, alg Algorithm, data []byte) []byte {
	return DefaultHasher.AppendSum(nil, alg, data)
}

func TestHexDigestCustomHasher(t *testing.T) {
	got := hexDigest(reallocHasher{}, MD5, nil)
	if got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("hexDigest(reallocHasher) = %s", got)
	}
}

func TestAlgorithmSizes(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		size int
		name string
	}{
		{MD5, 16, "md5"},
		{SHA1, 20, "sha1"},
		{SHA224, 28, "sha224"},
		{SHA256, 32, "sha256"},
		{SHA384, 48, "sha384"},
		{SHA512, 64, "sha512"},
		{BLAKE3, 32, "blake3"},
		{Algorithm(99), 0, "unknown"},
	}

	for _, tt := range tests {
		if tt.alg.Size() != tt.size || tt.alg.String() != tt.name {
			t.Errorf("%v: Size() = %d, want %d", tt.alg, tt.alg.Size(), tt.size)
		}
	}
}

func TestDigestFuncs(t *testing.T) {
	if got := call(t, "md5", testStr("")).AsString(); got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("md5('') = %s", got)
	}
	if got := call(t, "md5", testBin([]byte("abc"))).AsString(); got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("md5(binary abc) = %s", got)
	}
	if got := call(t, "sha1", testBin([]byte("abc"))).AsString(); got != "a9993e364706816aba3e25717850c26c9cd0d89d" {
		t.Errorf("sha1(abc) = %s", got)
	}
	if got := call(t, "sha2", testBin([]byte("abc")), testInt(123)); !got.IsNull() {
		t.Errorf("sha2(abc, 123) = %v, want NULL", got)
	}
	if got := call(t, "sha2", testBin([]byte("abc")), testInt(0)).AsString(); len(got) != 64 {
		t.Errorf("sha2(abc, 0) = %s", got)
	}
	if got := call(t, "blake3", testBin(nil)).AsString(); len(got) != 64 {
		t.Errorf("blake3('') = %s", got)
	}
}

func BenchmarkSha2Hex(b *testing.B) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	for i := 0; i < b.N; i++ {
		Sha2Hex(data, 256)
	}
}
