// Package registry implements the managed-package registry as a YAML file.
package registry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk representation of the registry.
type registryFile struct {
	RootPackage string         `yaml:"root_package,omitempty"`
	Packages    []packageEntry `yaml:"packages"`
}

type packageEntry struct {
	Name        string `yaml:"name"`
	InstallPath string `yaml:"install_path"`
	Installer   string `yaml:"installer"`
}

// Store implements ports.PackageRegistry backed by a single YAML file. Every
// mutation rewrites the file in full; a missing file is an empty registry.
type Store struct {
	path            string
	rootInstallPath string
	state           registryFile
}

var _ ports.PackageRegistry = (*Store)(nil)

// Open loads the registry file at path, or starts empty if it does not exist.
func Open(path, rootInstallPath string) (*Store, error) {
	s := &Store{path: path, rootInstallPath: rootInstallPath}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the project configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, &s.state); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}

	return s, nil
}

// ByInstaller returns every package installed under the given tag.
func (s *Store) ByInstaller(tag string) ([]domain.ManagedPackage, error) {
	var pkgs []domain.ManagedPackage
	for _, entry := range s.state.Packages {
		if entry.Installer != tag {
			continue
		}
		pkgs = append(pkgs, domain.ManagedPackage{
			Name:         entry.Name,
			InstallPath:  entry.InstallPath,
			InstallerTag: entry.Installer,
		})
	}
	return pkgs, nil
}

// IsInstalledAtPath reports whether any package is recorded at the given path.
func (s *Store) IsInstalledAtPath(path string) (bool, error) {
	for _, entry := range s.state.Packages {
		if entry.InstallPath == path {
			return true, nil
		}
	}
	return false, nil
}

// Install registers a package. An existing entry with the same name is
// replaced, keeping names unique across the registry.
func (s *Store) Install(path, name, tag string) error {
	entry := packageEntry{Name: name, InstallPath: path, Installer: tag}

	replaced := false
	for i := range s.state.Packages {
		if s.state.Packages[i].Name == name {
			s.state.Packages[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.Packages = append(s.state.Packages, entry)
	}

	return s.persist()
}

// Remove deletes the package with the given name.
func (s *Store) Remove(name string) error {
	kept := s.state.Packages[:0]
	for _, entry := range s.state.Packages {
		if entry.Name != name {
			kept = append(kept, entry)
		}
	}
	s.state.Packages = kept

	return s.persist()
}

// RootPackageInstallPath returns the install path of the root package.
func (s *Store) RootPackageInstallPath() string {
	return s.rootInstallPath
}

// SetRootPackageName records the root package's display name.
func (s *Store) SetRootPackageName(name string) error {
	if s.state.RootPackage == name {
		return nil
	}
	s.state.RootPackage = name
	return s.persist()
}

func (s *Store) persist() error {
	data, err := yaml.Marshal(&s.state)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryCreateFailed.Error())
	}

	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	return nil
}

// Opener implements ports.RegistryOpener.
type Opener struct{}

// NewOpener creates a new registry opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the registry at path.
func (o *Opener) Open(path, rootInstallPath string) (ports.PackageRegistry, error) {
	return Open(path, rootInstallPath)
}
