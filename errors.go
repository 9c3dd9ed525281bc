package ssdeep

import "errors"

var (
	// ErrSizeTooLarge is returned by SetTotalInputLength, or surfaced as an
	// empty digest from Digest, when a size exceeds maxTotalSize.
	ErrSizeTooLarge = errors.New("ssdeep: input size exceeds maximum addressable by any block size")
	// ErrSizeHintConflict is returned by SetTotalInputLength when called a
	// second time with a value that disagrees with the first.
	ErrSizeHintConflict = errors.New("ssdeep: conflicting total input length hint")
	// ErrMalformedSignature is returned by ParseSignature for any string
	// that is not DIGITS ":" B64* ":" B64*.
	ErrMalformedSignature = errors.New("ssdeep: malformed signature")
)
