package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/weztui/internal/config/extract"
	"github.com/dshills/weztui/internal/config/luagen"
	"github.com/dshills/weztui/internal/config/schema"
)

// Store reads and writes the configuration at a resolved location.
type Store struct {
	dirOverride string
}

// New returns a Store. dirOverride, when non-empty, pins the config
// directory instead of searching.
func New(dirOverride string) *Store {
	return &Store{dirOverride: dirOverride}
}

// LoadResult is a loaded snapshot plus where it came from.
type LoadResult struct {
	Config *schema.Config
	// Path is the file the snapshot was read from, or where a save will
	// land when Exists is false.
	Path     string
	Exists   bool
	Raw      string
	Warnings []string
}

// Load reads and extracts the config file. Load never fails on the file
// itself: a missing file yields defaults with Exists false, and an
// unreadable one yields defaults plus a warning so the editor still opens.
func (s *Store) Load() (*LoadResult, error) {
	path, err := ResolveFile(s.dirOverride)
	if err != nil {
		return nil, fmt.Errorf("resolve config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &LoadResult{Config: schema.DefaultConfig(), Path: path}, nil
	}
	if err != nil {
		return &LoadResult{
			Config:   schema.DefaultConfig(),
			Path:     path,
			Exists:   true,
			Warnings: []string{fmt.Sprintf("read %s: %v", path, err)},
		}, nil
	}

	res := extract.Extract(string(data))
	return &LoadResult{
		Config:   res.Config,
		Path:     path,
		Exists:   true,
		Raw:      res.Raw,
		Warnings: res.Warnings,
	}, nil
}

// SaveResult reports what a save touched.
type SaveResult struct {
	Dir            string
	FilesWritten   []string
	BackupsCreated []string
}

// Save regenerates the config file from cfg. When backup is set and a file
// already exists, the previous content is kept next to it as wezterm.lua.bak
// before the write. The write itself goes through a temp file and rename so
// a crash cannot leave a half-written config behind.
func (s *Store) Save(cfg *schema.Config, backup bool) (*SaveResult, error) {
	path, err := ResolveFile(s.dirOverride)
	if err != nil {
		return nil, fmt.Errorf("resolve config file: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	result := &SaveResult{Dir: dir}

	if backup {
		if prev, err := os.ReadFile(path); err == nil {
			bak := path + ".bak"
			if err := os.WriteFile(bak, prev, 0o644); err != nil {
				return nil, fmt.Errorf("write backup: %w", err)
			}
			result.BackupsCreated = append(result.BackupsCreated, bak)
		}
	}

	if err := writeAtomic(path, []byte(luagen.Generate(cfg))); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	result.FilesWritten = append(result.FilesWritten, path)
	return result, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".wezterm-*.lua")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
