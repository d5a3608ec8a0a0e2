// Command pfbinfo prints properties of PFB prototype filters.
//
// Usage:
//
//	pfbinfo [flags] [shape-name ...]
//
// Without arguments it prints info for all known shapes.
//
// Examples:
//
//	pfbinfo hanning
//	pfbinfo -channels 1024 -taps 4 sinc hamming
//	pfbinfo -channels 256 -per-tap hanning
//	pfbinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/window"
)

type shapeEntry struct {
	name  string
	shape window.Shape
}

var registry = []shapeEntry{
	{"sinc", window.ShapeSinc},
	{"hanning", window.ShapeHanning},
	{"hamming", window.ShapeHamming},
}

func main() {
	channels := flag.Int("channels", 1024, "number of frequency channels")
	taps := flag.Int("taps", window.DefaultTaps, "number of filter taps")
	perTap := flag.Bool("per-tap", false, "tile the shape window per tap instead of spanning the full filter")
	noSinc := flag.Bool("no-sinc", false, "drop the sinc base, leaving the raw shape window")
	list := flag.Bool("list", false, "list available shape names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pfbinfo [flags] [shape-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of PFB prototype filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all shapes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo hanning\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo -channels 1024 -taps 4 sinc hamming\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching shapes\n")
		os.Exit(1)
	}

	var opts []window.Option
	if *perTap {
		opts = append(opts, window.WithPerTapWindow())
	}
	if *noSinc {
		opts = append(opts, window.WithoutSincBase())
	}

	printAnalysis(entries, *channels, *taps, opts)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []shapeEntry {
	byName := make(map[string]shapeEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []shapeEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown shape %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(entries []shapeEntry, channels, taps int, opts []window.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Shape\tChannels\tTaps\tLength\tCoherent Gain\tBranch Ripple\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t--------\t----\t------\t-------------\t-------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		coeffs, err := window.Prototype[float64](channels, taps, e.shape, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}

		sums := window.BranchSums(coeffs, channels)
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.6f\t%.6f\n",
			e.name,
			channels,
			taps,
			len(coeffs),
			window.CoherentGain(coeffs),
			branchRipple(sums),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// branchRipple is the peak-to-peak spread of the per-channel branch sums,
// a quick flatness figure for the polyphase decomposition.
func branchRipple(sums []float64) float64 {
	if len(sums) == 0 {
		return 0
	}
	lo, hi := sums[0], sums[0]
	for _, s := range sums[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return hi - lo
}
