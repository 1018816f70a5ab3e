// Package store persists named layout snapshots on disk.
//
// Snapshots let the CLI save an arrangement under a name and restore it
// later, independent of the layout file it came from. Each snapshot is a
// JSON file in a config directory, written atomically enough for a single
// user: the store serializes its own access but does not coordinate
// between processes.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openlayout/gridarb/pkg/errors"
	"github.com/openlayout/gridarb/pkg/layoutio"
)

// Snapshot is a named, timestamped copy of a layout document.
type Snapshot struct {
	ID       string
	Name     string
	SavedAt  time.Time
	Document *layoutio.Document
}

// snapshotJSON is the on-disk form. The document is stored in the same
// wire format layoutio writes, so a snapshot file and a restored layout
// file agree field for field.
type snapshotJSON struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	SavedAt  time.Time    `json:"savedAt"`
	Document documentJSON `json:"document"`
}

type documentJSON struct {
	Cols            float64             `json:"cols"`
	VerticalCompact bool                `json:"verticalCompact"`
	Items           []layoutio.WireItem `json:"items"`
}

func (s *Snapshot) toJSON() snapshotJSON {
	return snapshotJSON{
		ID:      s.ID,
		Name:    s.Name,
		SavedAt: s.SavedAt,
		Document: documentJSON{
			Cols:            s.Document.Cols,
			VerticalCompact: s.Document.VerticalCompact,
			Items:           layoutio.ToWire(s.Document.Layout),
		},
	}
}

func (j snapshotJSON) toSnapshot() *Snapshot {
	return &Snapshot{
		ID:      j.ID,
		Name:    j.Name,
		SavedAt: j.SavedAt,
		Document: &layoutio.Document{
			Cols:            j.Document.Cols,
			VerticalCompact: j.Document.VerticalCompact,
			Layout:          layoutio.FromWire(j.Document.Items),
		},
	}
}

// FileStore keeps snapshots as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based snapshot store.
// If baseDir is empty, defaults to ~/.config/gridarb/snapshots/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".config", "gridarb", "snapshots")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create snapshot dir")
	}
	return &FileStore{baseDir: baseDir}, nil
}

// validateName rejects names that would escape the snapshot directory or
// clash with the file naming scheme.
func validateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "snapshot name is empty")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return errors.New(errors.ErrCodeInvalidInput,
				"snapshot name %q may only contain letters, digits, - and _", name)
		}
	}
	return nil
}

func (s *FileStore) snapshotPath(name string) string {
	return filepath.Join(s.baseDir, name+".json")
}

// Save stores doc under name, replacing any previous snapshot with the
// same name. The document is deep-copied so later edits to it do not leak
// into the stored snapshot.
func (s *FileStore) Save(ctx context.Context, name string, doc *layoutio.Document) (*Snapshot, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := errors.ValidateLayout(doc.Layout); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		ID:      uuid.NewString(),
		Name:    name,
		SavedAt: time.Now().UTC(),
		Document: &layoutio.Document{
			Cols:            doc.Cols,
			VerticalCompact: doc.VerticalCompact,
			Layout:          doc.Layout.Clone(),
		},
	}

	data, err := json.MarshalIndent(snap.toJSON(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal snapshot %s", name)
	}
	if err := os.WriteFile(s.snapshotPath(name), data, 0600); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write snapshot %s", name)
	}
	return snap, nil
}

// Load retrieves the snapshot stored under name.
func (s *FileStore) Load(ctx context.Context, name string) (*Snapshot, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.snapshotPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeNotFound, "no snapshot named %q", name)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read snapshot %s", name)
	}

	var snap snapshotJSON
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse snapshot %s", name)
	}
	return snap.toSnapshot(), nil
}

// List returns all stored snapshots, newest first. Files that fail to
// parse are skipped rather than failing the whole listing.
func (s *FileStore) List(ctx context.Context) ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read snapshot dir")
	}

	var snaps []*Snapshot
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var snap snapshotJSON
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		snaps = append(snaps, snap.toSnapshot())
	}

	sort.Slice(snaps, func(i, j int) bool {
		if snaps[i].SavedAt.Equal(snaps[j].SavedAt) {
			return strings.Compare(snaps[i].Name, snaps[j].Name) < 0
		}
		return snaps[i].SavedAt.After(snaps[j].SavedAt)
	})
	return snaps, nil
}

// Delete removes the snapshot stored under name. Deleting a snapshot that
// does not exist is not an error.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.snapshotPath(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeInternal, err, "remove snapshot %s", name)
	}
	return nil
}

// Path returns the base directory for snapshot files.
func (s *FileStore) Path() string {
	return s.baseDir
}
