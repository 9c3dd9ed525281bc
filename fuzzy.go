package ssdeep

import "sync"

// FuzzyState is one hashing session: a rolling-window hash plus up to
// numBlockHashes parallel block-hash accumulators. It is not safe for
// concurrent use: exactly one goroutine may drive a given FuzzyState at a
// time, though distinct instances are fully independent.
type FuzzyState struct {
	totalSize uint64
	fixedSize uint64
	sizeFixed bool

	bh      [numBlockHashes]blockHashContext
	bhStart int
	bhEnd   int

	bhEndLimit int

	reduceBorder uint64
	rollmask     uint32

	lastH        uint8
	needLastHash bool

	roll rollingState
}

var fuzzyStatePool = sync.Pool{
	New: func() any { return &FuzzyState{} },
}

// Open returns a freshly reset FuzzyState, pulled from a pool to keep
// repeated one-shot hashing allocation-free.
func Open() *FuzzyState {
	f := fuzzyStatePool.Get().(*FuzzyState)
	f.reset()
	return f
}

// Release returns a FuzzyState to the pool. Callers that used Open should
// call Release once they are done with the signature; it is not required
// for correctness, only for reuse.
func (f *FuzzyState) Release() {
	fuzzyStatePool.Put(f)
}

func (f *FuzzyState) reset() {
	*f = FuzzyState{
		bhEnd:        1,
		bhEndLimit:   numBlockHashes - 1,
		reduceBorder: minBlockSize * spamSumLength,
	}
	f.bh[0].reset()
}

// SetTotalInputLength records an optional hint about the total number of
// bytes that will be fed to Update. It narrows the range of block sizes
// the engine will consider, which can shorten the digest of a large input
// that would otherwise need many forks to converge. It is never required
// for correctness: without it, the engine forks block hashes on demand as
// bytes arrive.
func (f *FuzzyState) SetTotalInputLength(n uint64) error {
	if n > maxTotalSize {
		return ErrSizeTooLarge
	}
	if f.sizeFixed {
		if f.fixedSize != n {
			return ErrSizeHintConflict
		}
		return nil
	}

	bi := 0
	for blockSizeAt(bi)*spamSumLength < n {
		bi++
	}
	if bi > numBlockHashes-2 {
		bi = numBlockHashes - 2
	}

	f.sizeFixed = true
	f.fixedSize = n
	f.bhEndLimit = bi + 1
	return nil
}

// Write feeds bytes into the hashing session. It always consumes all of p
// and never returns an error of its own; the (int, error) signature exists
// so a FuzzyState composes with io.Copy.
func (f *FuzzyState) Write(p []byte) (int, error) {
	for _, c := range p {
		f.writeByte(c)
	}
	return len(p), nil
}

// Update is an alias for Write, named to match the usual incremental-hash
// vocabulary.
func (f *FuzzyState) Update(p []byte) {
	_, _ = f.Write(p)
}

func (f *FuzzyState) writeByte(c byte) {
	f.totalSize++
	f.roll.update(c)

	horg := f.roll.sum() + 1
	h := horg / minBlockSize

	masked := c & 0x3f
	for i := f.bhStart; i < f.bhEnd; i++ {
		bh := &f.bh[i]
		bh.h = sumTable[bh.h][masked]
		bh.halfH = sumTable[bh.halfH][masked]
	}
	if f.needLastHash {
		f.lastH = sumTable[f.lastH][masked]
	}

	if horg == 0 {
		return
	}
	if (h & f.rollmask) != 0 {
		return
	}
	if horg%minBlockSize != 0 {
		return
	}

	shifted := h >> uint(f.bhStart)
	for i := f.bhStart; i < f.bhEnd; i, shifted = i+1, shifted>>1 {
		bh := &f.bh[i]

		if bh.dindex == 0 {
			f.tryFork()
		}

		bh.halfDigest = base64Alphabet[bh.halfH&0x3f]
		bh.hasHalfDigest = true

		ch := base64Alphabet[bh.h&0x3f]
		if bh.pushDigest(ch) {
			bh.h = hashInit
			if bh.dindex < spamSumLengthHalf {
				bh.halfH = hashInit
				bh.hasHalfDigest = false
			}
		} else {
			f.tryReduce()
		}

		// The next (doubled) block size triggers too only if this bit is 0.
		if shifted&1 == 1 {
			break
		}
	}
}

// tryFork extends the active window by one more (larger) block size,
// seeding it from the currently-largest active context. Once the array is
// exhausted, it instead starts tracking a standalone "last hash" so the
// finalizer can still emit a tail character for the largest possible size.
func (f *FuzzyState) tryFork() {
	if f.bhEnd <= f.bhEndLimit {
		f.bh[f.bhEnd].forkFrom(&f.bh[f.bhEnd-1])
		f.bhEnd++
		return
	}
	if f.bhEnd == numBlockHashes && !f.needLastHash {
		f.needLastHash = true
		f.lastH = f.bh[f.bhEnd-1].h
	}
}

// tryReduce retires the smallest active block size once it is clear the
// finalizer would never pick it anyway: its digest has saturated and a
// larger size already has a healthy digest of its own.
func (f *FuzzyState) tryReduce() {
	if f.bhEnd-f.bhStart < 2 {
		return
	}
	if f.totalSize <= f.reduceBorder {
		return
	}
	if f.bh[f.bhStart+1].dindex < spamSumLengthHalf {
		return
	}

	f.bhStart++
	f.reduceBorder *= 2
	f.rollmask = (f.rollmask << 1) | 1
}

// Digest finalizes the session and returns the signature string. It
// returns the empty string for the two size-overflow error conditions
// (total size exceeds the maximum any block size can address, or a
// declared fixed size turned out to be wrong); no partial digest is ever
// emitted on error.
//
// Calling Digest does not reset the state: Update may be called again
// afterward, and a subsequent Digest reflects the combined input. Open
// always returns a fresh state if that is not what's wanted.
func (f *FuzzyState) Digest() string {
	if f.totalSize > maxTotalSize {
		return ""
	}
	if f.sizeFixed && f.fixedSize != f.totalSize {
		return ""
	}

	bi := f.bhStart
	for blockSizeAt(bi)*spamSumLength < f.totalSize {
		bi++
	}
	if bi > f.bhEnd-1 {
		bi = f.bhEnd - 1
	}
	for bi > f.bhStart && f.bh[bi].dindex < spamSumLengthHalf {
		bi--
	}

	rsum := f.roll.sum()

	elim1 := eliminate(f.bh[bi].digestString())
	block1 := appendTail(elim1, rsum, f.bh[bi].h, f.bh[bi].lastDigest, f.bh[bi].hasLastDigest)

	var block2 string
	if bi < f.bhEnd-1 {
		next := &f.bh[bi+1]
		truncated := next.digestString()
		if len(truncated) > spamSumLengthHalf-1 {
			truncated = truncated[:spamSumLengthHalf-1]
		}
		elim2 := eliminate(truncated)
		block2 = appendTail(elim2, rsum, next.halfH, next.halfDigest, next.hasHalfDigest)
	} else if rsum != 0 {
		switch {
		case bi == 0:
			block2 = string(base64Alphabet[f.bh[bi].h&0x3f])
		case bi == numBlockHashes-1:
			block2 = string(base64Alphabet[f.lastH&0x3f])
		}
	}

	return Signature{
		BlockSize: blockSizeAt(bi),
		Block1:    block1,
		Block2:    block2,
	}.String()
}

// appendTail implements the anti-tail-run-guarded tail character logic
// shared by block1 and block2: if the rolling sum is non-zero, one more
// character derived from h is due; otherwise the saturation fallback
// character (lastDigest/halfDigest) is used if one was ever recorded. The
// character is dropped if it would extend a run of four identical
// characters at the very end of the digest.
func appendTail(digest string, rollSum uint32, h uint8, fallback byte, hasFallback bool) string {
	var c byte
	var have bool

	if rollSum != 0 {
		c = base64Alphabet[h&0x3f]
		have = true
	} else if hasFallback {
		c = fallback
		have = true
	}

	if !have {
		return digest
	}
	if len(digest) >= 3 && digest[len(digest)-1] == c && digest[len(digest)-2] == c && digest[len(digest)-3] == c {
		return digest
	}
	return digest + string(c)
}
