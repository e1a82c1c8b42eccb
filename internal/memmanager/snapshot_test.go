package memmanager

import (
	"reflect"
	"testing"
)

func TestBuildHoleSnapshotOmitsAllocatedSpans(t *testing.T) {
	list := newSpanList(26)
	splitAfter(list, 1) // word 0 allocated below, [1, 25] hole
	splitAfter(list.next, 2) // [1, 3) allocated below, [3, 23] hole
	list.Hole = false
	list.next.Hole = false

	got := BuildHoleSnapshot(list)
	want := []uint16{1, 3, 23}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildHoleSnapshot() = %v, want %v", got, want)
	}
}

func TestBuildHoleSnapshotEmpty(t *testing.T) {
	list := newSpanList(4)
	list.Hole = false

	got := BuildHoleSnapshot(list)
	want := []uint16{0}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildHoleSnapshot() = %v, want %v", got, want)
	}
}

func TestBuildBitmapAllFree(t *testing.T) {
	list := newSpanList(8)

	got := BuildBitmap(list, 8)
	want := []byte{0x01, 0x00, 0x00}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildBitmap() = %v, want %v", got, want)
	}
}

func TestBuildBitmapMarksAllocatedWords(t *testing.T) {
	list := newSpanList(8)
	splitAfter(list, 3)
	list.Hole = false

	got := BuildBitmap(list, 8)
	want := []byte{0x01, 0x00, 0x07}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildBitmap() = %v, want %v", got, want)
	}
}

func TestBuildBitmapTrailingByteFullyInitialized(t *testing.T) {
	// N not a multiple of 8: payload must still be ceil(N/8) bytes,
	// with the tail bits beyond N-1 left as 0 rather than uninitialized
	// (SPEC_FULL.md §9, resolving the source's partial-byte bug).
	list := newSpanList(10)
	list.Hole = false

	got := BuildBitmap(list, 10)
	if len(got) != 2+2 {
		t.Fatalf("BuildBitmap() length = %d, want 4", len(got))
	}

	if got[0] != 2 || got[1] != 0 {
		t.Fatalf("length prefix = (%d, %d), want (2, 0)", got[0], got[1])
	}

	if got[2] != 0xFF || got[3] != 0x03 {
		t.Fatalf("payload = %08b %08b, want 11111111 00000011", got[2], got[3])
	}
}
