// Package storage keeps a gallery of saved renders on disk: one
// directory per render holding the PNG and a metadata file describing
// the viewpoint it was taken from.
package storage

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RenderMetadata records everything needed to reproduce a saved render.
type RenderMetadata struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	CenterRe      float64       `json:"center_re"`
	CenterIm      float64       `json:"center_im"`
	Zoom          float64       `json:"zoom"`
	MaxIterations uint32        `json:"max_iterations"`
	Scheme        string        `json:"scheme"`
	Equalized     bool          `json:"equalized"`
	RenderTime    time.Duration `json:"render_time_ns"`
}

// Save writes a render and its metadata to a new gallery entry and
// returns the entry ID.
func (s *Store) Save(meta RenderMetadata, img image.Image) (string, error) {
	id := fmt.Sprintf("render_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta.ID = id
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	imgFile, err := os.Create(filepath.Join(dir, "image.png"))
	if err != nil {
		return "", err
	}
	defer imgFile.Close()

	if err := png.Encode(imgFile, img); err != nil {
		return "", err
	}

	return id, nil
}

// Load reads the metadata for a gallery entry.
func (s *Store) Load(id string) (*RenderMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("load render %s: %w", id, err)
	}
	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("load render %s: %w", id, err)
	}
	return &meta, nil
}

// ImagePath returns the path of a gallery entry's PNG.
func (s *Store) ImagePath(id string) string {
	return filepath.Join(s.baseDir, id, "image.png")
}

// List returns the metadata of all gallery entries, newest first.
func (s *Store) List() ([]*RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var metas []*RenderMetadata
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "render_") {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		metas = append(metas, meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp.After(metas[j].Timestamp)
	})

	return metas, nil
}
