package inspect

import (
	"encoding/binary"
	"net/http/httptest"
	"reflect"
	"testing"
)

type fakeSnapshotter struct {
	holes  []uint16
	bitmap []byte
}

func (f fakeSnapshotter) Holes() []uint16 { return f.holes }
func (f fakeSnapshotter) Bitmap() []byte  { return f.bitmap }

func TestHandleHolesEncodesLittleEndian(t *testing.T) {
	s := &Server{snap: fakeSnapshotter{holes: []uint16{1, 3, 23}}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/holes", nil)

	s.handleHoles(rec, req)

	want := make([]byte, 6)
	binary.LittleEndian.PutUint16(want[0:], 1)
	binary.LittleEndian.PutUint16(want[2:], 3)
	binary.LittleEndian.PutUint16(want[4:], 23)

	if got := rec.Body.Bytes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("handleHoles body = %v, want %v", got, want)
	}
}

func TestHandleBitmapPassesThroughVerbatim(t *testing.T) {
	bitmap := []byte{0x01, 0x00, 0x07}
	s := &Server{snap: fakeSnapshotter{bitmap: bitmap}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bitmap", nil)

	s.handleBitmap(rec, req)

	if got := rec.Body.Bytes(); !reflect.DeepEqual(got, bitmap) {
		t.Fatalf("handleBitmap body = %v, want %v", got, bitmap)
	}
}
