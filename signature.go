package ssdeep

import (
	"strconv"
	"strings"
)

// Signature is the parsed form of a ssdeep digest: a block size and the two
// eliminated digest strings computed at that size and twice that size.
// Comparators and indexes should prefer this over the raw string once a
// signature is going to be compared more than once.
type Signature struct {
	BlockSize uint64
	Block1    string
	Block2    string
}

// String renders the canonical "blockSize:block1:block2" textual form.
func (s Signature) String() string {
	var b strings.Builder
	b.Grow(len(s.Block1) + len(s.Block2) + 22)
	b.WriteString(strconv.FormatUint(s.BlockSize, 10))
	b.WriteByte(':')
	b.WriteString(s.Block1)
	b.WriteByte(':')
	b.WriteString(s.Block2)
	return b.String()
}

// Compatible reports whether two block sizes admit a non-zero comparison:
// equal, double, or half. This is the only relation the core defines a
// score for; no broader notion of compatibility is supported.
func (s Signature) Compatible(other Signature) bool {
	return compatibleBlockSizes(s.BlockSize, other.BlockSize)
}

func compatibleBlockSizes(a, b uint64) bool {
	return a == b || a*2 == b || a == b*2
}

// ParseSignature parses the textual form "DIGITS:B64*:B64*". Run-length
// elimination is re-applied to both blocks: the reference implementation
// does not guarantee its callers already eliminated a string before storing
// it, and eliminate is idempotent, so re-applying it here is always safe.
func ParseSignature(s string) (Signature, error) {
	first := strings.IndexByte(s, ':')
	if first < 0 {
		return Signature{}, ErrMalformedSignature
	}
	second := strings.IndexByte(s[first+1:], ':')
	if second < 0 {
		return Signature{}, ErrMalformedSignature
	}
	second += first + 1

	sizeStr := s[:first]
	block1 := s[first+1 : second]
	block2 := s[second+1:]

	// A third colon anywhere past the second field is malformed, not just
	// ignored: the grammar is exactly three fields.
	if strings.IndexByte(block2, ':') >= 0 {
		return Signature{}, ErrMalformedSignature
	}

	if sizeStr == "" {
		return Signature{}, ErrMalformedSignature
	}
	blockSize, err := strconv.ParseUint(sizeStr, 10, 64)
	if err != nil {
		return Signature{}, ErrMalformedSignature
	}

	if !isBase64String(block1) || !isBase64String(block2) {
		return Signature{}, ErrMalformedSignature
	}

	return Signature{
		BlockSize: blockSize,
		Block1:    eliminate(block1),
		Block2:    eliminate(block2),
	}, nil
}

func isBase64String(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(base64Alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
