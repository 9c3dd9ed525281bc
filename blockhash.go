package ssdeep

// blockHashContext is the accumulator for one candidate block size. A
// FuzzyState keeps numBlockHashes of these, only a contiguous window of
// which ([bhStart, bhEnd)) is "active" at any point in the input.
type blockHashContext struct {
	h     uint8 // accumulating byte-hash for the main digest
	halfH uint8 // accumulating byte-hash for the half-digest snapshot

	digest [spamSumLength - 1]byte // up to 63 characters
	dindex int                     // number of valid bytes in digest

	lastDigest    byte // candidate char that would overflow a full digest
	hasLastDigest bool

	halfDigest    byte // char snapshotted when dindex first reached 32
	hasHalfDigest bool
}

// reset reinitializes a context to a fresh state seeded with hashInit.
func (b *blockHashContext) reset() {
	b.h = hashInit
	b.halfH = hashInit
	b.dindex = 0
	b.hasLastDigest = false
	b.hasHalfDigest = false
}

// forkFrom seeds a newly activated context from the largest active one:
// the new context starts wherever the previous largest block size's hash
// state currently is, not from scratch.
func (b *blockHashContext) forkFrom(src *blockHashContext) {
	b.h = src.h
	b.halfH = src.halfH
	b.dindex = 0
	b.hasLastDigest = false
	b.hasHalfDigest = false
}

// digestString returns the valid portion of digest as a string.
func (b *blockHashContext) digestString() string {
	return string(b.digest[:b.dindex])
}

// full reports whether digest has no room left for another character.
func (b *blockHashContext) full() bool {
	return b.dindex >= len(b.digest)
}

// pushDigest appends the character derived from h to digest if room
// remains; otherwise it records the character as lastDigest and reports
// that the digest is saturated (the caller should attempt a reduce).
func (b *blockHashContext) pushDigest(c byte) (appended bool) {
	if b.dindex < len(b.digest) {
		b.digest[b.dindex] = c
		b.dindex++
		return true
	}
	b.lastDigest = c
	b.hasLastDigest = true
	return false
}
