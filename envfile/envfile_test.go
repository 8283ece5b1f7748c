package envfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "export with double quotes",
			input: `export DB_PASSWORD="s3cr3t"`,
			want:  []Entry{{Key: "DB_PASSWORD", Value: "s3cr3t"}},
		},
		{
			name:  "export with single quotes",
			input: `export TOKEN='abc'`,
			want:  []Entry{{Key: "TOKEN", Value: "abc"}},
		},
		{
			name:  "plain assignment without export",
			input: "ENV=k8s-vault",
			want:  []Entry{{Key: "ENV", Value: "k8s-vault"}},
		},
		{
			name:  "blank lines and comments skipped",
			input: "\n# injected by vault-agent\n\nexport ENV=prod\n",
			want:  []Entry{{Key: "ENV", Value: "prod"}},
		},
		{
			name:  "value with embedded equals splits on first",
			input: `export DSN="postgres://u:p@db?sslmode=disable"`,
			want:  []Entry{{Key: "DSN", Value: "postgres://u:p@db?sslmode=disable"}},
		},
		{
			name:  "line without equals skipped",
			input: "not-an-assignment\nexport ENV=dev",
			want:  []Entry{{Key: "ENV", Value: "dev"}},
		},
		{
			name:  "empty key skipped",
			input: "=orphan\nexport ENV=dev",
			want:  []Entry{{Key: "ENV", Value: "dev"}},
		},
		{
			name:  "empty value kept",
			input: "export EMPTY=",
			want:  []Entry{{Key: "EMPTY", Value: ""}},
		},
		{
			name:  "duplicate keys preserved in order",
			input: "export KEY=A\nexport KEY=B",
			want:  []Entry{{Key: "KEY", Value: "A"}, {Key: "KEY", Value: "B"}},
		},
		{
			name:  "mismatched quotes kept verbatim",
			input: `export ODD="half`,
			want:  []Entry{{Key: "ODD", Value: `"half`}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMerge_LastWriteWins(t *testing.T) {
	entries := []Entry{
		{Key: "KEY", Value: "A"},
		{Key: "OTHER", Value: "x"},
		{Key: "KEY", Value: "B"},
	}

	m := Merge(entries)

	if m["KEY"] != "B" {
		t.Errorf("Merge()[KEY] = %q, want %q", m["KEY"], "B")
	}
	if m["OTHER"] != "x" {
		t.Errorf("Merge()[OTHER] = %q, want %q", m["OTHER"], "x")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.txt")
	content := "export ENV=\"k8s-vault\"\nexport DB_PASSWORD=\"hunter2\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []Entry{
		{Key: "ENV", Value: "k8s-vault"},
		{Key: "DB_PASSWORD", Value: "hunter2"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Load() = %#v, want %#v", entries, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("Load() error = %v, want os.IsNotExist", err)
	}
}
