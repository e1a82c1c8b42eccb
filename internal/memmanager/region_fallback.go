//go:build !unix

package memmanager

// acquireRegion obtains the backing region as a plain heap buffer on
// platforms without an anonymous-mapping syscall path wired up. The
// observable contract (a contiguous region of exactly nBytes) is the
// same as the unix mmap-backed path in region_unix.go.
func acquireRegion(nBytes int) ([]byte, error) {
	return make([]byte, nBytes), nil
}

// releaseRegion is a no-op for heap-backed regions; the buffer is
// reclaimed by the garbage collector once the manager drops its
// reference.
func releaseRegion(buf []byte) error {
	return nil
}
