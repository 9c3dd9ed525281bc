package ssdeep

import (
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// statReader is satisfied by *os.File: it lets probeSize learn a stream's
// length without consuming it.
type statReader interface {
	io.Reader
	Stat() (os.FileInfo, error)
}

// probeSize cheaply learns r's total length, if it's knowable without
// consuming bytes: via Stat on a statReader, or via Seek on a ReadSeeker
// (restored to its original position afterward). It never reads ahead.
func probeSize(r io.Reader) (int64, bool) {
	if sr, ok := r.(statReader); ok {
		info, err := sr.Stat()
		if err != nil || !info.Mode().IsRegular() {
			return 0, false
		}
		return info.Size(), true
	}
	if rs, ok := r.(io.ReadSeeker); ok {
		cur, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, false
		}
		end, err := rs.Seek(0, io.SeekEnd)
		if err != nil {
			return 0, false
		}
		if _, err := rs.Seek(cur, io.SeekStart); err != nil {
			return 0, false
		}
		return end - cur, true
	}
	return 0, false
}

// hashFile opens path, hashes it in a single streaming pass, and, when
// WithCleanup is given, evicts its pages from the kernel's page cache once
// hashing has consumed the whole file: a cache-friendliness hint for
// callers sweeping a large tree of files they won't reread soon.
func hashFile(path string, opts ...Option) (string, error) {
	var o hashOptions
	for _, opt := range opts {
		opt.apply(&o)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	f := Open()
	defer f.Release()

	if info, err := file.Stat(); err == nil {
		_ = f.SetTotalInputLength(uint64(info.Size()))
	}

	if _, err := io.Copy(f, file); err != nil {
		return "", err
	}
	sig := f.Digest()

	if o.cleanup {
		fd := int(file.Fd())
		_ = syscall.Fdatasync(fd)
		_ = unix.Fadvise(fd, 0, 0, unix.FADV_DONTNEED)
	}

	return sig, nil
}
