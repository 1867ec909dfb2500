package extract

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink persists extracted artifacts. Create must refuse to overwrite an
// existing artifact: the engine never retries and treats a sink failure as
// fatal for the whole run.
type Sink interface {
	Create(name string, data []byte) error
}

// DirSink writes artifacts into a single flat directory.
type DirSink struct {
	root string
}

// NewDirSink creates the output directory and fails if it already exists,
// so repeated runs never silently mix artifacts.
func NewDirSink(root string) (*DirSink, error) {
	if err := os.Mkdir(root, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &DirSink{root: root}, nil
}

// Root returns the directory artifacts are written into.
func (d *DirSink) Root() string {
	return d.root
}

func (d *DirSink) Create(name string, data []byte) error {
	path := filepath.Join(d.root, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close artifact %s: %w", name, err)
	}
	return nil
}
