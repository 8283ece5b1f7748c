package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is a single parsed KEY=VALUE pair.
type Entry struct {
	Key   string
	Value string
}

// Parse reads shell-export style lines from r and returns the parsed
// entries in file order.
//
// Recognized line shapes:
//   - blank lines and lines starting with "#" are skipped
//   - KEY=VALUE
//   - export KEY=VALUE
//
// VALUE may be wrapped in matching single or double quotes, which are
// stripped. Values are split on the first "=", so an embedded "=" stays
// in the value. Malformed lines (no "=", empty key) are skipped, never
// an error; the only error Parse returns is a read failure from r.
//
// Duplicate keys are preserved in order so that callers applying entries
// sequentially get last-write-wins semantics.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		entries = append(entries, Entry{Key: key, Value: unquote(strings.TrimSpace(value))})
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("envfile: read: %w", err)
	}
	return entries, nil
}

// Load opens the file at path and parses it.
//
// A missing file is reported via the returned error so callers can
// distinguish "no secrets to inject" (os.IsNotExist) from a real read
// failure. Both are expected to be treated as non-fatal at startup.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Merge collapses entries into a map, applying last-write-wins for
// duplicate keys.
func Merge(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
