package layoutio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openlayout/gridarb/pkg/errors"
)

const sampleJSON = `{
  "cols": 10,
  "verticalCompact": false,
  "items": [
    {"id": "cpu", "x": 0, "y": 0, "w": 6, "h": 4},
    {"id": "logo", "x": 8, "y": 0, "w": 2, "h": 2, "static": true}
  ]
}`

func TestReadJSON(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}

	if doc.Cols != 10 {
		t.Errorf("Cols = %g, want 10", doc.Cols)
	}
	if doc.VerticalCompact {
		t.Error("VerticalCompact = true, want false")
	}
	if len(doc.Layout) != 2 {
		t.Fatalf("items = %d, want 2", len(doc.Layout))
	}

	cpu := doc.Layout.Find("cpu")
	if cpu == nil || cpu.W != 6 || cpu.H != 4 {
		t.Errorf("cpu = %v, want 6x4", cpu)
	}
	logo := doc.Layout.Find("logo")
	if logo == nil || !logo.Static {
		t.Errorf("logo = %v, want static", logo)
	}
}

func TestReadJSONDefaults(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(`{"items": []}`))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if doc.Cols != DefaultCols {
		t.Errorf("Cols = %g, want %d", doc.Cols, DefaultCols)
	}
	if !doc.VerticalCompact {
		t.Error("VerticalCompact should default to true")
	}
}

func TestReadJSONRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "malformed json",
			input:    `{"items": [`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "missing id",
			input:    `{"items": [{"x": 0, "y": 0, "w": 2, "h": 2}]}`,
			wantCode: errors.ErrCodeInvalidItem,
		},
		{
			name:     "duplicate id",
			input:    `{"items": [{"id": "a", "w": 2, "h": 2}, {"id": "a", "x": 4, "w": 2, "h": 2}]}`,
			wantCode: errors.ErrCodeDuplicateID,
		},
		{
			name:     "negative width",
			input:    `{"items": [{"id": "a", "w": -2, "h": 2}]}`,
			wantCode: errors.ErrCodeInvalidItem,
		},
		{
			name:     "zero cols",
			input:    `{"cols": 0, "items": []}`,
			wantCode: errors.ErrCodeInvalidColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("ReadJSON = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}

	var buf strings.Builder
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	again, err := ReadJSON(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-import error: %v", err)
	}

	if again.Cols != doc.Cols || again.VerticalCompact != doc.VerticalCompact {
		t.Errorf("settings changed in round trip: %+v", again)
	}
	if len(again.Layout) != len(doc.Layout) {
		t.Fatalf("item count changed in round trip")
	}
	for i, it := range doc.Layout {
		got := again.Layout[i]
		if got.ID != it.ID || got.X != it.X || got.Y != it.Y ||
			got.W != it.W || got.H != it.H || got.Static != it.Static {
			t.Errorf("item %d changed: %v -> %v", i, it, got)
		}
	}
}

func TestParseManifest(t *testing.T) {
	manifest := `
cols = 8
vertical_compact = false

[[panel]]
id = "cpu"
x = 0
y = 0
w = 4
h = 3

[[panel]]
x = 4
y = 0
w = 4
h = 3
static = true
`
	path := filepath.Join(t.TempDir(), "dash.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ParseManifest(path)
	if err != nil {
		t.Fatalf("ParseManifest error: %v", err)
	}

	if doc.Cols != 8 {
		t.Errorf("Cols = %g, want 8", doc.Cols)
	}
	if doc.VerticalCompact {
		t.Error("VerticalCompact = true, want false")
	}
	if len(doc.Layout) != 2 {
		t.Fatalf("panels = %d, want 2", len(doc.Layout))
	}
	if doc.Layout[0].ID != "cpu" {
		t.Errorf("first panel id = %s, want cpu", doc.Layout[0].ID)
	}
	// The anonymous panel gets a generated id.
	if doc.Layout[1].ID == "" {
		t.Error("anonymous panel has no generated id")
	}
	if !doc.Layout[1].Static {
		t.Error("second panel should be static")
	}
}

func TestParseManifestRejectsDuplicates(t *testing.T) {
	manifest := `
[[panel]]
id = "a"
w = 2
h = 2

[[panel]]
id = "a"
x = 4
w = 2
h = 2
`
	path := filepath.Join(t.TempDir(), "dash.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseManifest(path)
	if !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("ParseManifest = %v, want DUPLICATE_ID", err)
	}
}

func TestImportDispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "snap.json")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(jsonPath); err != nil {
		t.Errorf("Import(json) error: %v", err)
	}

	tomlPath := filepath.Join(dir, "dash.toml")
	if err := os.WriteFile(tomlPath, []byte("[[panel]]\nid = \"a\"\nw = 2\nh = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(tomlPath); err != nil {
		t.Errorf("Import(toml) error: %v", err)
	}

	if _, err := Import(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import(missing) = %v, want FILE_NOT_FOUND", err)
	}
}
