package ports

import "go.trai.ch/weld/internal/core/domain"

// ResolutionSnapshot is a read-only view of the dependency resolver's current
// package list. It is never mutated by weld.
//
//go:generate mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type ResolutionSnapshot interface {
	// ListPackages returns every package in the resolution, aliases included.
	ListPackages() ([]domain.ResolvedPackage, error)

	// ResolveAlias returns the underlying target of an alias entry. Non-alias
	// entries are returned unchanged.
	ResolveAlias(pkg domain.ResolvedPackage) (domain.ResolvedPackage, error)

	// RootPackageName returns the resolved root package's display name.
	RootPackageName() string

	// WorkingDir returns the resolver's working directory. Generated-file
	// locations from configuration are made absolute against it.
	WorkingDir() string

	// Digest returns a fingerprint of the snapshot contents, used to skip
	// re-reconciliation when the resolution has not changed.
	Digest() uint64
}

// SnapshotLoader reads a ResolutionSnapshot from the resolver's exported
// installed-packages file.
type SnapshotLoader interface {
	// Load reads the snapshot at path. workdir is the resolver's working
	// directory; relative install paths are resolved against it.
	Load(path, workdir string) (ResolutionSnapshot, error)
}
