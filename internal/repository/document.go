package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned by Load when the document does not exist yet.
var ErrNotFound = errors.New("document not found")

// document is the shared low-level access type the typed repositories
// embed. A document is one JSON file rewritten wholesale on every save;
// Backup puts a timestamped copy next to it before an overwrite.
type document struct {
	path      string
	backupDir string
}

func newDocument(path, backupDir string) document {
	return document{path: path, backupDir: backupDir}
}

// Load decodes the document into v. A missing file yields ErrNotFound
// so the caller can fall back to defaults.
func (d document) Load(v any) error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", d.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", d.path, err)
	}
	return nil
}

// Save rewrites the document wholesale.
func (d document) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}

// Backup copies the currently persisted document into the backup
// directory with a timestamp suffix. A missing source is not an error:
// there is nothing to back up before the first save.
func (d document) Backup() (string, error) {
	src, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(d.backupDir, 0o755); err != nil {
		return "", err
	}
	ts := strings.ReplaceAll(time.Now().UTC().Format("2006-01-02T15-04-05.000Z"), ":", "-")
	dest := filepath.Join(d.backupDir, fmt.Sprintf("%s.%s.bak", filepath.Base(d.path), ts))

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return dest, nil
}
