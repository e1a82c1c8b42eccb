package main

import "unsafe"

// addrOf and ptrOf convert between unsafe.Pointer and uintptr so
// allocated addresses can be stored in a plain slice between the
// allocate and free passes below. The manager keeps its region alive
// for the lifetime of this process, so the addresses stay valid.
func addrOf(p unsafe.Pointer) uintptr {
	return uintptr(p)
}

func ptrOf(addr uintptr) unsafe.Pointer {
	return unsafe.Pointer(addr) //nolint:govet // converting a previously-valid address back for Free.
}
