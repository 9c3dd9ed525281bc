package ssdeep

import "io"

// Hash computes the fuzzy hash signature of data in one shot.
func Hash(data []byte) (string, error) {
	f := Open()
	defer f.Release()

	if err := f.SetTotalInputLength(uint64(len(data))); err != nil {
		return "", err
	}
	f.Update(data)
	return f.Digest(), nil
}

// HashStream reads r until EOF and returns its fuzzy hash. It hashes in a
// single pass regardless of whether the total size is known ahead of time:
// the engine forks block-hash contexts on demand as bytes arrive, so no
// pre-buffering is needed to pick a starting block size. When r's size is
// cheaply knowable (io.Seeker or an os.File-like Stat), it's used only as
// an optional hint, narrowing which block sizes the engine considers.
func HashStream(r io.Reader) (string, error) {
	f := Open()
	defer f.Release()

	if size, ok := probeSize(r); ok {
		_ = f.SetTotalInputLength(uint64(size))
	}

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return f.Digest(), nil
}

// File computes the fuzzy hash of the file at path. If opts includes
// WithCleanup, the file's pages are evicted from the kernel page cache
// after hashing, which is useful when scanning many large files that
// won't be read again soon.
func File(path string, opts ...Option) (string, error) {
	return hashFile(path, opts...)
}
