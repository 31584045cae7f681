package functions

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/zeebo/blake3"
)

// Algorithm identifies a digest function.
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	BLAKE3
)

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case MD5:
		return md5.Size
	case SHA1:
		return sha1.Size
	case SHA224:
		return sha256.Size224
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	case BLAKE3:
		return 32
	default:
		return 0
	}
}

func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA224:
		return "sha224"
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	case BLAKE3:
		return "blake3"
	default:
		return "unknown"
	}
}

// Hasher computes digests. AppendSum appends the digest of data under alg
// to dst and returns the extended slice.
type Hasher interface {
	AppendSum(dst []byte, alg Algorithm, data []byte) []byte
}

// DefaultHasher is backed by the Go crypto packages and zeebo/blake3.
var DefaultHasher Hasher = standardHasher{}

type standardHasher struct{}

func (standardHasher) AppendSum(dst []byte, alg Algorithm, data []byte) []byte {
	var h hash.Hash
	switch alg {
	case MD5:
		h = md5.New()
	case SHA1:
		h = sha1.New()
	case SHA224:
		h = sha256.New224()
	case SHA256:
		h = sha256.New()
	case SHA384:
		h = sha512.New384()
	case SHA512:
		h = sha512.New()
	case BLAKE3:
		h = blake3.New()
	default:
		return dst
	}
	h.Write(data)
	return h.Sum(dst)
}

const hexDigits = "0123456789abcdef"

// encodeDigestToBase16 expands the digestSize bytes at the front of buf into
// 2*digestSize lowercase hex characters, in place. It walks backwards so no
// byte is overwritten before it has been read. len(buf) must be at least
// 2*digestSize.
func encodeDigestToBase16(buf []byte, digestSize int) {
	for i := digestSize - 1; i >= 0; i-- {
		b := buf[i]
		buf[2*i] = hexDigits[b>>4]
		buf[2*i+1] = hexDigits[b&0x0F]
	}
}

// hexDigest computes the digest of data and returns it as a new lowercase
// hex string of exactly 2*alg.Size() characters.
func hexDigest(h Hasher, alg Algorithm, data []byte) string {
	size := alg.Size()
	buf := make([]byte, 2*size)
	// The sum normally lands in buf already; the copy covers Hashers that
	// allocate their own slice.
	copy(buf[:size], h.AppendSum(buf[:0], alg, data))
	encodeDigestToBase16(buf, size)
	return string(buf)
}

// Md5Hex implements md5(input): 32 hex characters.
func Md5Hex(data []byte) string {
	return hexDigest(DefaultHasher, MD5, data)
}

// Sha1Hex implements sha1(input): 40 hex characters.
func Sha1Hex(data []byte) string {
	return hexDigest(DefaultHasher, SHA1, data)
}

// Sha2Hex implements sha2(input, bitLength). bitLength 0 means 256. For any
// bit length other than 224, 256, 384 or 512, ok is false and the SQL result
// is NULL.
func Sha2Hex(data []byte, bitLength int32) (digest string, ok bool) {
	alg, ok := sha2Algorithm(bitLength)
	if !ok {
		return "", false
	}
	return hexDigest(DefaultHasher, alg, data), true
}

// Blake3Hex returns the 256-bit BLAKE3 digest of data as 64 hex characters.
func Blake3Hex(data []byte) string {
	return hexDigest(DefaultHasher, BLAKE3, data)
}

func sha2Algorithm(bitLength int32) (Algorithm, bool) {
	switch bitLength {
	case 0, 256:
		return SHA256, true
	case 224:
		return SHA224, true
	case 384:
		return SHA384, true
	case 512:
		return SHA512, true
	default:
		return 0, false
	}
}
