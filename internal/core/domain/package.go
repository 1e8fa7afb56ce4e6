package domain

// ManagedPackage is a package whose presence in the local registry is
// controlled by weld under a specific installer identity.
type ManagedPackage struct {
	// Name uniquely identifies the package across the registry.
	Name string

	// InstallPath is the absolute filesystem path the package is installed at.
	InstallPath string

	// InstallerTag identifies which tool installed the package. Packages
	// carrying a foreign tag are never touched during reconciliation.
	InstallerTag string
}

// ResolvedPackage is a read-only package entry reported by the dependency
// resolver. Alias entries carry the name of their underlying target and must
// be resolved before comparison.
type ResolvedPackage struct {
	Name        string
	InstallPath string
	IsAlias     bool
	AliasOf     string
}

// HookID identifies a host-runtime lifecycle hook. The host is known to
// deliver hooks at least once, so side effects are admitted per HookID.
type HookID string

const (
	// HookInstall is the post-install/update lifecycle hook.
	HookInstall HookID = "post-install"

	// HookAutoload is the post-autoload-generation lifecycle hook.
	HookAutoload HookID = "post-autoload"
)
