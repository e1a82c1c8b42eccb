// memmanager-inspectd runs a word-granular memory manager and serves
// its hole snapshot and bitmap over HTTP/3 so a remote viewer can
// attach to a long-running process instead of reading a dumped file.
//
// Flags mirror memmanager-cli's region setup; -addr picks the listen
// address (host:port).
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/orizon-lang/memmanager/internal/cli"
	"github.com/orizon-lang/memmanager/internal/inspect"
	"github.com/orizon-lang/memmanager/internal/memmanager"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		addr        = flag.String("addr", ":4433", "listen address for the HTTP/3 inspection endpoint")
		wordSize    = flag.Int("wordsize", 8, "bytes per word")
		words       = flag.Int("words", 1024, "region size in words")
		policyName  = flag.String("policy", "bestfit", "placement policy: bestfit, worstfit, firstfit, nextfit")
		policyFile  = flag.String("policy-file", "", "path to watch for live policy changes")
		certFile    = flag.String("cert", "", "TLS certificate file (self-signed cert generated if omitted)")
		keyFile     = flag.String("key", "", "TLS key file")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Serve a memory manager's hole map and bitmap over HTTP/3.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("memmanager-inspectd", *jsonOutput)

		return
	}

	policy, err := resolvePolicy(*policyName)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	m := memmanager.New(*wordSize, policy)
	m.Initialize(*words)
	defer m.Shutdown()

	if *policyFile != "" {
		watcher, err := memmanager.WatchPolicyFile(*policyFile, m)
		if err != nil {
			cli.ExitWithError("watch policy file: %v", err)
		}

		defer watcher.Close()
	}

	tlsCfg, err := loadOrGenerateTLS(*certFile, *keyFile)
	if err != nil {
		cli.ExitWithError("TLS setup: %v", err)
	}

	server := inspect.NewServer(*addr, tlsCfg, m)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := cli.NewLogger(true)
	log.Info("serving format %s on %s (policy=%s)", memmanager.FormatVersion, *addr, *policyName)

	if err := server.ListenAndServe(ctx); err != nil && ctx.Err() == nil {
		cli.ExitWithError("inspect server: %v", err)
	}
}

func resolvePolicy(name string) (memmanager.PolicyFunc, error) {
	switch name {
	case "bestfit":
		return memmanager.BestFit, nil
	case "worstfit":
		return memmanager.WorstFit, nil
	case "firstfit":
		return memmanager.FirstFit, nil
	case "nextfit":
		return memmanager.NewNextFitCursor().Policy(), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

func loadOrGenerateTLS(certFile, keyFile string) (*tls.Config, error) {
	if certFile == "" || keyFile == "" {
		cert, err := generateSelfSignedCert()
		if err != nil {
			return nil, err
		}

		return &tls.Config{Certificates: []tls.Certificate{cert}}, nil
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}

	pool := x509.NewCertPool()

	return &tls.Config{Certificates: []tls.Certificate{cert}, RootCAs: pool}, nil
}
