// Package inspect exposes a running allocator's hole snapshot and
// bitmap to a remote viewer over HTTP/3, without the caller having to
// shell out to read a dumped file. It carries no allocator semantics
// itself.
package inspect

import (
	"context"
	"crypto/tls"
	"encoding/binary"
	"net/http"

	http3 "github.com/quic-go/quic-go/http3"
)

// Snapshotter is the read-only view a Server needs from a manager.
type Snapshotter interface {
	Holes() []uint16
	Bitmap() []byte
}

// Server serves a Snapshotter's views over HTTP/3.
type Server struct {
	tlsCfg *tls.Config
	snap   Snapshotter
	addr   string
}

// NewServer creates a server bound to addr, serving snap's views. A nil
// tlsCfg gets a minimal TLS 1.3 / h3 configuration, matching the
// teacher's own NewHTTP3Server default (internal/runtime/netstack/http3.go).
func NewServer(addr string, tlsCfg *tls.Config, snap Snapshotter) *Server {
	if tlsCfg == nil {
		tlsCfg = &tls.Config{MinVersion: tls.VersionTLS13, NextProtos: []string{"h3"}}
	} else if tlsCfg.MinVersion < tls.VersionTLS13 {
		c := tlsCfg.Clone()
		c.MinVersion = tls.VersionTLS13

		if len(c.NextProtos) == 0 {
			c.NextProtos = []string{"h3"}
		}

		tlsCfg = c
	}

	return &Server{addr: addr, tlsCfg: tlsCfg, snap: snap}
}

// ListenAndServe blocks serving /holes and /bitmap until ctx is
// cancelled or the server errors.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/holes", s.handleHoles)
	mux.HandleFunc("/bitmap", s.handleBitmap)

	srv := &http3.Server{Addr: s.addr, TLSConfig: s.tlsCfg, Handler: mux}

	errC := make(chan error, 1)

	go func() { errC <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		srv.Close()

		return ctx.Err()
	case err := <-errC:
		return err
	}
}

// handleHoles writes the §4.3 hole snapshot as little-endian uint16
// words.
func (s *Server) handleHoles(w http.ResponseWriter, r *http.Request) {
	holes := s.snap.Holes()

	w.Header().Set("Content-Type", "application/octet-stream")

	buf := make([]byte, len(holes)*2)
	for i, v := range holes {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}

	w.Write(buf)
}

// handleBitmap writes the §4.4 bitmap verbatim; it already carries its
// own little-endian length prefix.
func (s *Server) handleBitmap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(s.snap.Bitmap())
}
