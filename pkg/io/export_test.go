package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/mazegen/pkg/maze"
)

func fixture() *maze.Grid {
	g := maze.New(3, 3)
	g.Init()
	g.Connect(maze.Coordinate{X: 0, Y: 0}, maze.Coordinate{X: 2, Y: 0})
	g.Connect(maze.Coordinate{X: 2, Y: 0}, maze.Coordinate{X: 2, Y: 2})
	return g
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(fixture(), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var doc document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Width != 3 || doc.Height != 3 {
		t.Errorf("size = %dx%d, want 3x3", doc.Width, doc.Height)
	}
	if doc.End != (maze.Coordinate{X: 2, Y: 2}) {
		t.Errorf("end = %v", doc.End)
	}

	wantRows := []string{"S  ", "## ", " #E"}
	if len(doc.Rows) != len(wantRows) {
		t.Fatalf("rows = %q, want %q", doc.Rows, wantRows)
	}
	for i := range wantRows {
		if doc.Rows[i] != wantRows[i] {
			t.Errorf("row %d = %q, want %q", i, doc.Rows[i], wantRows[i])
		}
	}
	if len(doc.Passages) != 2 {
		t.Errorf("passages = %v, want 2", doc.Passages)
	}
}

func TestWriteJSONKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(fixture(), &buf); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"width"`, `"start"`, `"x": 0`, `"passages"`} {
		if !bytes.Contains(buf.Bytes(), []byte(key)) {
			t.Errorf("output missing %s:\n%s", key, buf.String())
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() overwrite error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "maze.bmp")
	if err := WriteFile(path, []byte("x")); err == nil {
		t.Error("WriteFile() into a missing directory should fail")
	}
}
