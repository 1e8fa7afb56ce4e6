// Package resolver adapts the dependency resolver's installed-packages export
// into a read-only resolution snapshot.
package resolver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// snapshotFile is the resolver's export format.
type snapshotFile struct {
	Root     rootEntry       `json:"root"`
	Packages []resolvedEntry `json:"packages"`
}

type rootEntry struct {
	Name string `json:"name"`
}

type resolvedEntry struct {
	Name        string `json:"name"`
	InstallPath string `json:"install_path"`
	AliasOf     string `json:"alias_of,omitempty"`
}

// Snapshot implements ports.ResolutionSnapshot over a parsed export file.
type Snapshot struct {
	workdir  string
	rootName string
	packages []domain.ResolvedPackage
	byName   map[string]domain.ResolvedPackage
	digest   uint64
}

var _ ports.ResolutionSnapshot = (*Snapshot)(nil)

// Load reads and parses the export at path. Relative install paths are made
// absolute against workdir.
func Load(path, workdir string) (*Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the project configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.Wrap(domain.ErrSnapshotReadFailed, fmt.Sprintf("no snapshot at %s", path))
		}
		return nil, zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error())
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotParseFailed.Error())
	}

	snap := &Snapshot{
		workdir:  workdir,
		rootName: file.Root.Name,
		packages: make([]domain.ResolvedPackage, 0, len(file.Packages)),
		byName:   make(map[string]domain.ResolvedPackage, len(file.Packages)),
		digest:   xxhash.Sum64(data),
	}

	for _, entry := range file.Packages {
		pkg := domain.ResolvedPackage{
			Name:        entry.Name,
			InstallPath: absAgainst(workdir, entry.InstallPath),
			IsAlias:     entry.AliasOf != "",
			AliasOf:     entry.AliasOf,
		}
		snap.packages = append(snap.packages, pkg)
		if !pkg.IsAlias {
			snap.byName[pkg.Name] = pkg
		}
	}

	return snap, nil
}

// ListPackages returns every package in the resolution, aliases included.
func (s *Snapshot) ListPackages() ([]domain.ResolvedPackage, error) {
	return s.packages, nil
}

// ResolveAlias returns the underlying target of an alias entry.
func (s *Snapshot) ResolveAlias(pkg domain.ResolvedPackage) (domain.ResolvedPackage, error) {
	if !pkg.IsAlias {
		return pkg, nil
	}

	target, ok := s.byName[pkg.AliasOf]
	if !ok {
		return domain.ResolvedPackage{}, zerr.Wrap(domain.ErrAliasTargetMissing,
			fmt.Sprintf("alias %s points at %s", pkg.Name, pkg.AliasOf))
	}
	return target, nil
}

// RootPackageName returns the resolved root package's display name.
func (s *Snapshot) RootPackageName() string {
	return s.rootName
}

// WorkingDir returns the resolver's working directory.
func (s *Snapshot) WorkingDir() string {
	return s.workdir
}

// Digest returns the xxhash fingerprint of the export contents.
func (s *Snapshot) Digest() uint64 {
	return s.digest
}

// Loader implements ports.SnapshotLoader.
type Loader struct{}

// NewLoader creates a new snapshot loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the snapshot at path.
func (l *Loader) Load(path, workdir string) (ports.ResolutionSnapshot, error) {
	return Load(path, workdir)
}

func absAgainst(workdir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workdir, path)
}
