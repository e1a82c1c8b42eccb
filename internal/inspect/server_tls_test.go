package inspect

import (
	"crypto/tls"
	"testing"
)

func TestNewServerDefaultsToTLS13(t *testing.T) {
	s := NewServer(":0", nil, fakeSnapshotter{})

	if s.tlsCfg.MinVersion != tls.VersionTLS13 {
		t.Fatalf("MinVersion = %v, want TLS 1.3", s.tlsCfg.MinVersion)
	}

	if len(s.tlsCfg.NextProtos) == 0 || s.tlsCfg.NextProtos[0] != "h3" {
		t.Fatalf("NextProtos = %v, want [h3]", s.tlsCfg.NextProtos)
	}
}

func TestNewServerUpgradesWeakMinVersion(t *testing.T) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	s := NewServer(":0", cfg, fakeSnapshotter{})

	if s.tlsCfg.MinVersion != tls.VersionTLS13 {
		t.Fatalf("MinVersion = %v, want upgraded to TLS 1.3", s.tlsCfg.MinVersion)
	}

	if cfg.MinVersion != tls.VersionTLS12 {
		t.Fatal("NewServer must not mutate the caller's tls.Config")
	}
}
