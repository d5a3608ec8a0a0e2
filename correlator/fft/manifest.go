package fft

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Manifest file format: one "<precision> <length>" pair per line, where
// precision is "complex64" or "complex128". Lines starting with '#' are
// comments.

// LoadManifest pre-builds plans for every size listed in the file at
// path and returns whether the manifest was applied. A missing file is
// not an error; the cache simply starts cold.
func LoadManifest(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("fft: open manifest: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return false, fmt.Errorf("fft: manifest line %d: want 2 fields, got %d", line, len(fields))
		}

		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("fft: manifest line %d: %w", line, err)
		}

		switch fields[0] {
		case "complex64":
			if _, err := ForwardPlan[complex64](n); err != nil {
				return false, fmt.Errorf("fft: manifest line %d: %w", line, err)
			}
		case "complex128":
			if _, err := ForwardPlan[complex128](n); err != nil {
				return false, fmt.Errorf("fft: manifest line %d: %w", line, err)
			}
		default:
			return false, fmt.Errorf("fft: manifest line %d: unknown precision %q", line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("fft: read manifest: %w", err)
	}

	global.mu.Lock()
	global.loaded = true
	global.mu.Unlock()

	return true, nil
}

// SaveManifest writes the currently cached plan sizes so a later
// process can pre-build them via LoadManifest.
func SaveManifest(path string) error {
	global.mu.Lock()
	keys := make([]planKey, 0, len(global.plans))
	for k := range global.plans {
		keys = append(keys, k)
	}
	global.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].bits != keys[j].bits {
			return keys[i].bits < keys[j].bits
		}
		return keys[i].length < keys[j].length
	})

	var sb strings.Builder
	sb.WriteString("# transform plan manifest\n")
	for _, k := range keys {
		name := "complex128"
		if k.bits == 32 {
			name = "complex64"
		}
		fmt.Fprintf(&sb, "%s %d\n", name, k.length)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("fft: write manifest: %w", err)
	}

	return nil
}
