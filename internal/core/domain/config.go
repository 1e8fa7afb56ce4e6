package domain

const (
	// WeldFileName is the name of the project configuration file.
	WeldFileName = "weld.yaml"

	// WeldDirName is the name of the internal state directory.
	WeldDirName = ".weld"

	// RegistryFileName is the name of the managed-package registry file.
	RegistryFileName = "packages.yaml"

	// DefaultInstallerTag is the installer identity weld registers packages under.
	DefaultInstallerTag = "weld"

	// DefaultSnapshotPath is the default location of the resolver's
	// installed-packages export, relative to the project root.
	DefaultSnapshotPath = "vendor/resolver/installed.json"

	// FactoryConstantName is the constant injected into the bootstrap manifest.
	FactoryConstantName = "WELD_FACTORY_CLASS"

	// ClassMapBaseVar is the base-directory variable class-map entries are
	// expressed against.
	ClassMapBaseVar = "$baseDir"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// RebuildCommands holds the clear and build command lines of one external
// rebuilder. Each command is an argv vector executed in the project root.
type RebuildCommands struct {
	Clear []string
	Build []string
}

// Config is the resolved project configuration. All paths are absolute,
// resolved against the directory containing the configuration file.
type Config struct {
	// Root is the directory containing weld.yaml.
	Root string

	// InstallerTag scopes reconciliation to packages weld owns.
	InstallerTag string

	// SnapshotPath locates the resolver's installed-packages export.
	SnapshotPath string

	// RegistryPath locates the managed-package registry file.
	RegistryPath string

	// FactoryClassName is the fully qualified generated factory class.
	FactoryClassName string

	// FactoryFilePath locates the generated factory class file.
	FactoryFilePath string

	// BootstrapFile is the generated bootstrap manifest receiving the
	// factory constant.
	BootstrapFile string

	// ClassMapFile is the generated class-map manifest receiving the
	// factory entry.
	ClassMapFile string

	// ClassMapBaseDir is the base directory class-map entries are declared
	// relative to.
	ClassMapBaseDir string

	// Repository and Discovery are the external rebuilders triggered after
	// reconciliation.
	Repository RebuildCommands
	Discovery  RebuildCommands
}
