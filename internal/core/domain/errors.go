package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no weld.yaml can be found upward from the working directory.
	ErrConfigNotFound = zerr.New("could not find weld.yaml")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read weld.yaml")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse weld.yaml")

	// ErrConfigInvalid is returned when a required configuration field is missing or malformed.
	ErrConfigInvalid = zerr.New("invalid weld.yaml")

	// ErrSnapshotReadFailed is returned when the resolver's installed-packages export cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read resolver snapshot")

	// ErrSnapshotParseFailed is returned when the resolver's installed-packages export cannot be parsed.
	ErrSnapshotParseFailed = zerr.New("failed to parse resolver snapshot")

	// ErrAliasTargetMissing is returned when an alias entry names a target absent from the resolution.
	ErrAliasTargetMissing = zerr.New("alias target not present in resolution")

	// ErrRegistryReadFailed is returned when the package registry file cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read package registry")

	// ErrRegistryParseFailed is returned when the package registry file cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse package registry")

	// ErrRegistryWriteFailed is returned when the package registry file cannot be persisted.
	ErrRegistryWriteFailed = zerr.New("failed to write package registry")

	// ErrRegistryCreateFailed is returned when the registry state directory cannot be created.
	ErrRegistryCreateFailed = zerr.New("failed to create registry directory")

	// ErrPackageInstallFailed is returned when registering a managed package fails.
	ErrPackageInstallFailed = zerr.New("failed to register package")

	// ErrPackageRemoveFailed is returned when removing a managed package fails.
	ErrPackageRemoveFailed = zerr.New("failed to remove package")

	// ErrManifestMissing is returned when a required generated manifest does not exist.
	// This indicates a broken build order: the upstream codegen step did not run.
	ErrManifestMissing = zerr.New("autoload manifest not found")

	// ErrManifestMalformed is returned when a manifest exists but contains no insertion anchor.
	ErrManifestMalformed = zerr.New("autoload manifest has no insertion anchor")

	// ErrManifestWriteFailed is returned when a patched manifest cannot be written back.
	ErrManifestWriteFailed = zerr.New("failed to write autoload manifest")

	// ErrRebuildFailed is returned when an external rebuilder's clear or build step fails.
	ErrRebuildFailed = zerr.New("rebuild failed")

	// ErrWatchFailed is returned when the snapshot watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch resolver snapshot")
)
