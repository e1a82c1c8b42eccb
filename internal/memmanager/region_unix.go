//go:build unix

package memmanager

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// acquireRegion obtains the backing region as an anonymous, private
// memory mapping. This is the portable replacement for the legacy
// sbrk-based acquisition the source used (see SPEC_FULL.md §4.1): a
// contiguous region of exactly nBytes, owned by this manager until
// releaseRegion is called.
func acquireRegion(nBytes int) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, nBytes, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, &AllocatorError{Code: ErrOutOfMemory, Message: fmt.Sprintf("mmap %d bytes: %v", nBytes, err)}
	}

	return buf, nil
}

// releaseRegion unmaps a region obtained from acquireRegion.
func releaseRegion(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	if err := unix.Munmap(buf); err != nil {
		return &AllocatorError{Code: ErrIO, Message: fmt.Sprintf("munmap: %v", err)}
	}

	return nil
}
