package ports

import "go.trai.ch/weld/internal/core/domain"

// PackageRegistry is the persistent store of managed packages. It is the sole
// authority for ManagedPackage lifetime.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type PackageRegistry interface {
	// ByInstaller returns every managed package installed under the given tag.
	ByInstaller(tag string) ([]domain.ManagedPackage, error)

	// IsInstalledAtPath reports whether any package is recorded at the given
	// install path. Membership is tested by path, not name, since a path may
	// be installed under a provisional state.
	IsInstalledAtPath(path string) (bool, error)

	// Install registers a package at the given path under the installer tag.
	Install(path, name, tag string) error

	// Remove deletes the package with the given name from the registry.
	Remove(name string) error

	// RootPackageInstallPath returns the install path of the root package.
	RootPackageInstallPath() string

	// SetRootPackageName records the resolved root package's display name in
	// the registry metadata.
	SetRootPackageName(name string) error
}

// RegistryOpener constructs a PackageRegistry from its on-disk location. The
// registry file is created on first mutation if it does not exist.
type RegistryOpener interface {
	// Open loads the registry at path. rootInstallPath is the install path
	// reported for the root package.
	Open(path, rootInstallPath string) (PackageRegistry, error)
}
