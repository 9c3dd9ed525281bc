package ssdeep

// hashOptions collects the tunables accepted by File.
type hashOptions struct {
	cleanup bool
}

// Option configures a one-shot hashing call using the standard Go
// functional-options shape.
type Option interface {
	apply(*hashOptions)
}

type cleanupOption bool

func (o cleanupOption) apply(h *hashOptions) { h.cleanup = bool(o) }

// WithCleanup asks File to advise the kernel to drop the hashed file's
// pages from cache once hashing completes. Useful when scanning a large
// corpus of files that won't be reread soon. Only File accepts options;
// Hash and HashStream take none.
func WithCleanup() Option { return cleanupOption(true) }
