package secret

import (
	"errors"
	"strings"
	"testing"
)

func TestExpandStrict(t *testing.T) {
	lookup := mapLookup(map[string]string{
		"HOST": "db.internal",
		"PORT": "5432",
	})

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "single variable", input: "${HOST}", want: "db.internal"},
		{name: "multiple variables", input: "${HOST}:${PORT}", want: "db.internal:5432"},
		{name: "no variables", input: "plain", want: "plain"},
		{name: "escaped dollar", input: "cost: $$5", want: "cost: $5"},
		{name: "bare dollar untouched", input: "$HOST", want: "$HOST"},
		{name: "missing variable", input: "${NOPE}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandStrict(tt.input, lookup)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingVariables) {
					t.Fatalf("ExpandStrict() error = %v, want ErrMissingVariables", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExpandStrict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExpandStrict() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandStrict_ReportsAllMissing(t *testing.T) {
	_, err := ExpandStrict("${B} ${A}", mapLookup(nil))
	if err == nil {
		t.Fatal("expected error")
	}
	// Sorted, deduplicated listing.
	if msg := err.Error(); !strings.Contains(msg, "A, B") {
		t.Errorf("error = %q, want missing keys listed as %q", msg, "A, B")
	}
}

func TestExpandStrict_NilLookupUsesProcessEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_KEY", "from-process")

	got, err := ExpandStrict("${EXPAND_TEST_KEY}", nil)
	if err != nil {
		t.Fatalf("ExpandStrict() error = %v", err)
	}
	if got != "from-process" {
		t.Errorf("ExpandStrict() = %q, want %q", got, "from-process")
	}
}
