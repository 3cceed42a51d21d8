package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mazegen/pkg/maze"
)

type document struct {
	Width    int                  `json:"width"`
	Height   int                  `json:"height"`
	Start    maze.Coordinate      `json:"start"`
	End      maze.Coordinate      `json:"end"`
	Rows     []string             `json:"rows"`
	Passages [][2]maze.Coordinate `json:"passages"`
}

// WriteJSON encodes g as JSON and writes it to w.
func WriteJSON(g *maze.Grid, w io.Writer) error {
	out := document{
		Width:    g.Width(),
		Height:   g.Height(),
		Start:    g.Start(),
		End:      g.End(),
		Rows:     strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n"),
		Passages: g.Passages(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes data to path atomically: it writes a temporary file in
// the same directory and renames it over path.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
