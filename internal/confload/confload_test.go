package confload

import (
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string   `yaml:"name" toml:"name"`
	Count int      `yaml:"count" toml:"count"`
	Tags  []string `yaml:"tags" toml:"tags"`
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Format
	}{
		{"calendar.yaml", FormatYAML},
		{"calendar.YML", FormatYAML},
		{"calendar.toml", FormatTOML},
		{"calendar.conf", FormatTOML},
		{"calendar", FormatTOML},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"yaml", FormatYAML, "name: office\ncount: 2\ntags: [a, b]\n"},
		{"toml", FormatTOML, "name = \"office\"\ncount = 2\ntags = [\"a\", \"b\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got sample
			if err := Unmarshal([]byte(tt.data), tt.format, &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got.Name != "office" || got.Count != 2 || len(got.Tags) != 2 {
				t.Errorf("Unmarshal = %+v", got)
			}
		})
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	t.Parallel()

	var v sample
	if err := Unmarshal([]byte("name = "), FormatTOML, &v); err == nil {
		t.Error("expected TOML error")
	}
	if err := Unmarshal([]byte("name: [unterminated"), FormatYAML, &v); err == nil {
		t.Error("expected YAML error")
	}
	if err := Unmarshal(nil, Format(42), &v); err == nil {
		t.Error("expected unsupported format error")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.yml")
	if err := os.WriteFile(path, []byte("name: office\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got sample
	if err := LoadFile(path, &got); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Name != "office" {
		t.Errorf("Name = %q, want office", got.Name)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), &got); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{".yml", FormatYAML, false},
		{"TOML", FormatTOML, false},
		{"json", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
