// Package config provides the configuration loader for weld.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file discovered upward
// from the working directory.
type Loader struct{}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers weld.yaml upward from cwd and returns the resolved
// configuration. All paths come back absolute, resolved against the
// directory containing the file.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // Path was discovered under the caller's cwd
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file weldfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return resolve(filepath.Dir(configPath), file)
}

func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigNotFound.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.WeldFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.Wrap(domain.ErrConfigNotFound, fmt.Sprintf("searched upward from %s", cwd))
}

func resolve(root string, file weldfile) (*domain.Config, error) {
	if file.Autoload.FactoryClass == "" {
		return nil, zerr.Wrap(domain.ErrConfigInvalid, "autoload.factory_class is required")
	}
	if file.Autoload.FactoryFile == "" {
		return nil, zerr.Wrap(domain.ErrConfigInvalid, "autoload.factory_file is required")
	}
	if file.Autoload.BootstrapFile == "" {
		return nil, zerr.Wrap(domain.ErrConfigInvalid, "autoload.bootstrap_file is required")
	}
	if file.Autoload.ClassMapFile == "" {
		return nil, zerr.Wrap(domain.ErrConfigInvalid, "autoload.classmap_file is required")
	}

	installer := file.Installer
	if installer == "" {
		installer = domain.DefaultInstallerTag
	}

	snapshot := file.Resolver.Snapshot
	if snapshot == "" {
		snapshot = domain.DefaultSnapshotPath
	}

	registryPath := file.Registry.Path
	if registryPath == "" {
		registryPath = filepath.Join(domain.WeldDirName, domain.RegistryFileName)
	}

	// The generated class map declares its base variable as the project
	// root, so relative entries default to being relative to it.
	classMapBase := file.Autoload.ClassMapBase
	if classMapBase == "" {
		classMapBase = "."
	}

	return &domain.Config{
		Root:             root,
		InstallerTag:     installer,
		SnapshotPath:     absAgainst(root, snapshot),
		RegistryPath:     absAgainst(root, registryPath),
		FactoryClassName: file.Autoload.FactoryClass,
		FactoryFilePath:  file.Autoload.FactoryFile,
		BootstrapFile:    file.Autoload.BootstrapFile,
		ClassMapFile:     file.Autoload.ClassMapFile,
		ClassMapBaseDir:  classMapBase,
		Repository: domain.RebuildCommands{
			Clear: file.Rebuild.Repository.Clear,
			Build: file.Rebuild.Repository.Build,
		},
		Discovery: domain.RebuildCommands{
			Clear: file.Rebuild.Discovery.Clear,
			Build: file.Rebuild.Discovery.Build,
		},
	}, nil
}

func absAgainst(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
