package secret

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandStrict expands ${VAR} references in s against lookup.
//
// Semantics:
//   - `${VAR}` is replaced by lookup("VAR").
//   - If `${VAR}` is present but VAR is missing, it errors (all missing
//     variables are reported at once).
//   - `$$` emits a literal `$` (escape hatch).
//   - Bare `$VAR` without braces is left untouched.
//
// A nil lookup falls back to os.LookupEnv.
func ExpandStrict(s string, lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	const dollarSentinel = "\x00SECRETBOOT_DOLLAR\x00"
	s = strings.ReplaceAll(s, "$$", dollarSentinel)

	missing := make(map[string]struct{})
	for _, match := range envVarPattern.FindAllStringSubmatch(s, -1) {
		key := match[1]
		if _, ok := lookup(key); !ok {
			missing[key] = struct{}{}
		}
	}
	if len(missing) > 0 {
		keys := make([]string, 0, len(missing))
		for k := range missing {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", fmt.Errorf("%w: %s", ErrMissingVariables, strings.Join(keys, ", "))
	}

	s = envVarPattern.ReplaceAllStringFunc(s, func(ref string) string {
		key := ref[2 : len(ref)-1]
		v, _ := lookup(key)
		return v
	})
	s = strings.ReplaceAll(s, dollarSentinel, "$")
	return s, nil
}
