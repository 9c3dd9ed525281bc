package ssdeep

// These constants are fixed by wire compatibility with the reference ssdeep
// implementation. Do not "clean up" any of these values: they are load
// bearing for every byte of a signature this package emits.
const (
	// minBlockSize is the smallest candidate block size, SSDEEP_BS(0).
	minBlockSize = 3
	// numBlockHashes is the number of parallel block-hash contexts tracked
	// by a FuzzyState.
	numBlockHashes = 31
	// hashInit seeds every block-hash accumulator.
	hashInit = 0x27
	// rollingWindow is the width, in bytes, of the rolling-hash window.
	rollingWindow = 7
	// spamSumLength bounds the length of block1; block2 is always truncated
	// to half that. There is no untruncated mode.
	spamSumLength = 64
	// spamSumLengthHalf is the truncation point for block2 and the digest
	// length at which a block hash's half-digest snapshot freezes.
	spamSumLengthHalf = spamSumLength / 2
)

// base64Alphabet is the ssdeep digest alphabet. Its ordering is part of the
// wire format and must never be swapped for a standard base64 table.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// blockSizeAt returns SSDEEP_BS(i), the block size for block-hash index i.
func blockSizeAt(i int) uint64 {
	return uint64(minBlockSize) << uint(i)
}

// maxTotalSize is the largest input size a FuzzyState can faithfully digest:
// beyond this, even the largest block size can't keep the digest within
// spamSumLength characters.
var maxTotalSize = blockSizeAt(numBlockHashes-1) * spamSumLength
