// memmanager-cli drives a word-granular memory manager end to end:
// initialize a region, run a sequence of allocations, optionally free
// some of them, then dump the resulting hole map.
//
// Flags:
//
//	-wordsize  bytes per word (default 8)
//	-words     region size in words (default 1024)
//	-policy    bestfit, worstfit, firstfit, or nextfit (default bestfit)
//	-alloc     comma-separated byte sizes to allocate in order
//	-free      comma-separated 0-based indexes into -alloc to free afterward
//	-dump      path to write the hole map to (default stdout)
//	-min-format  semver constraint the allocator's snapshot format must satisfy
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/orizon-lang/memmanager/internal/cli"
	"github.com/orizon-lang/memmanager/internal/memmanager"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		wordSize    = flag.Int("wordsize", 8, "bytes per word")
		words       = flag.Int("words", 1024, "region size in words")
		policyName  = flag.String("policy", "bestfit", "placement policy: bestfit, worstfit, firstfit, nextfit")
		allocList   = flag.String("alloc", "", "comma-separated byte sizes to allocate in order")
		freeList    = flag.String("free", "", "comma-separated indexes into -alloc to free afterward")
		dumpPath    = flag.String("dump", "", "path to write the hole map to (default stdout)")
		minFormat   = flag.String("min-format", "", "semver constraint the snapshot format must satisfy")
		verbose     = flag.Bool("verbose", false, "verbose output")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drive a word-granular memory manager and dump its hole map.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		cli.PrintVersion("memmanager-cli", *jsonOutput)

		return
	}

	logger := cli.NewLogger(*verbose)

	if *minFormat != "" {
		ok, err := memmanager.CheckFormatCompatibility(*minFormat)
		if err != nil {
			cli.ExitWithError("invalid -min-format constraint: %v", err)
		}

		if !ok {
			cli.ExitWithError("snapshot format %s does not satisfy %s", memmanager.FormatVersion, *minFormat)
		}
	}

	policy, err := resolvePolicy(*policyName)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	m := memmanager.New(*wordSize, policy)
	m.Initialize(*words)

	addrs, err := runAllocations(m, *allocList, logger)
	if err != nil {
		cli.ExitWithError("%v", err)
	}

	if err := runFrees(m, addrs, *freeList, logger); err != nil {
		cli.ExitWithError("%v", err)
	}

	if err := dumpResult(m, *dumpPath); err != nil {
		cli.ExitWithError("%v", err)
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

func runAllocations(m *memmanager.Manager, allocList string, logger *cli.Logger) ([]uintptr, error) {
	var addrs []uintptr

	for _, field := range splitNonEmpty(allocList) {
		size, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid -alloc entry %q: %w", field, err)
		}

		ptr := m.Allocate(size)
		addrs = append(addrs, addrOf(ptr))

		if ptr == nil {
			logger.Info("allocate(%d) failed: no hole fits", size)
		} else {
			logger.Info("allocate(%d) -> word %d", size, (addrOf(ptr)-addrOf(m.MemoryStart()))/uintptr(m.WordSize()))
		}
	}

	return addrs, nil
}

func runFrees(m *memmanager.Manager, addrs []uintptr, freeList string, logger *cli.Logger) error {
	for _, field := range splitNonEmpty(freeList) {
		idx, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("invalid -free entry %q: %w", field, err)
		}

		if idx < 0 || idx >= len(addrs) {
			return fmt.Errorf("-free index %d out of range (have %d allocations)", idx, len(addrs))
		}

		m.Free(ptrOf(addrs[idx]))
		logger.Info("free(index %d)", idx)
	}

	return nil
}

func dumpResult(m *memmanager.Manager, path string) error {
	if path == "" {
		holes := m.Holes()

		fmt.Print(formatHoles(holes))
		fmt.Println()

		return nil
	}

	if err := m.DumpMemoryMapErr(path); err != nil {
		return err
	}

	return nil
}

func formatHoles(holes []uint16) string {
	count := int(holes[0])

	var sb strings.Builder

	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(" - ")
		}

		fmt.Fprintf(&sb, "[%d, %d]", holes[1+i*2], holes[2+i*2])
	}

	return sb.String()
}

func splitNonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return strings.Split(s, ",")
}
