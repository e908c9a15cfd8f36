package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meghashyamc/debugview/geometry"
	"gopkg.in/yaml.v3"
)

type storedPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type storedScene struct {
	LineStart storedPoint `yaml:"line_start"`
	LineEnd   storedPoint `yaml:"line_end"`
	Point     storedPoint `yaml:"point"`
}

// Store persists scene snapshots as YAML so an edited layout survives restarts.
type Store struct {
	filePath string
}

func NewStore(dataDir, filename string) *Store {
	return &Store{filePath: filepath.Join(dataDir, filename)}
}

func (st *Store) Path() string {
	return st.filePath
}

// Load reads the stored snapshot. ok is false when nothing has been saved yet.
func (st *Store) Load() (snap Snapshot, ok bool, err error) {
	data, err := os.ReadFile(st.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to read scene file %s: %w", st.filePath, err)
	}

	var stored storedScene
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to parse scene file %s: %w", st.filePath, err)
	}

	return Snapshot{
		LineStart: geometry.Vector{X: stored.LineStart.X, Y: stored.LineStart.Y},
		LineEnd:   geometry.Vector{X: stored.LineEnd.X, Y: stored.LineEnd.Y},
		Point:     geometry.Vector{X: stored.Point.X, Y: stored.Point.Y},
	}, true, nil
}

func (st *Store) Save(snap Snapshot) error {
	stored := storedScene{
		LineStart: storedPoint{snap.LineStart.X, snap.LineStart.Y},
		LineEnd:   storedPoint{snap.LineEnd.X, snap.LineEnd.Y},
		Point:     storedPoint{snap.Point.X, snap.Point.Y},
	}

	data, err := yaml.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(st.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	return os.WriteFile(st.filePath, data, 0644)
}
