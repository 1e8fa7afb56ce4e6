package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/adapters/config"
	"go.trai.ch/weld/internal/core/domain"
)

const minimalWeldfile = `autoload:
  factory_class: App\Generated\Factory
  factory_file: src/Generated/Factory.php
  bootstrap_file: vendor/autoload.php
  classmap_file: vendor/resolver/autoload_classmap.php
`

func writeWeldfile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.WeldFileName), []byte(content), 0o644))
}

func TestLoad_AppliesDefaults(t *testing.T) {
	root := t.TempDir()
	writeWeldfile(t, root, minimalWeldfile)

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, domain.DefaultInstallerTag, cfg.InstallerTag)
	assert.Equal(t, filepath.Join(root, domain.DefaultSnapshotPath), cfg.SnapshotPath)
	assert.Equal(t, filepath.Join(root, domain.WeldDirName, domain.RegistryFileName), cfg.RegistryPath)
	assert.Equal(t, `App\Generated\Factory`, cfg.FactoryClassName)

	// Autoload paths stay relative; they are resolved against the resolver's
	// working directory at patch time, not against the config root.
	assert.Equal(t, "vendor/autoload.php", cfg.BootstrapFile)
	assert.Equal(t, "vendor/resolver/autoload_classmap.php", cfg.ClassMapFile)

	// The class-map base defaults to the project root: the generated manifest
	// declares its base variable as the project root, and entries relative to
	// the manifest's own directory would escape it with parent segments.
	assert.Equal(t, ".", cfg.ClassMapBaseDir)
}

func TestLoad_ExplicitValuesOverrideDefaults(t *testing.T) {
	root := t.TempDir()
	writeWeldfile(t, root, `installer: custom-tag
resolver:
  snapshot: build/installed.json
registry:
  path: state/registry.yaml
autoload:
  factory_class: App\Factory
  factory_file: gen/Factory.php
  bootstrap_file: boot.php
  classmap_file: maps/classmap.php
  classmap_base: .
rebuild:
  repository:
    clear: [bin/console, repo:clear]
    build: [bin/console, repo:build]
  discovery:
    build: [bin/console, discovery:build]
`)

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.Equal(t, "custom-tag", cfg.InstallerTag)
	assert.Equal(t, filepath.Join(root, "build/installed.json"), cfg.SnapshotPath)
	assert.Equal(t, filepath.Join(root, "state/registry.yaml"), cfg.RegistryPath)
	assert.Equal(t, ".", cfg.ClassMapBaseDir)
	assert.Equal(t, []string{"bin/console", "repo:clear"}, cfg.Repository.Clear)
	assert.Equal(t, []string{"bin/console", "repo:build"}, cfg.Repository.Build)
	assert.Empty(t, cfg.Discovery.Clear)
	assert.Equal(t, []string{"bin/console", "discovery:build"}, cfg.Discovery.Build)
}

func TestLoad_DiscoversUpward(t *testing.T) {
	root := t.TempDir()
	writeWeldfile(t, root, minimalWeldfile)

	nested := filepath.Join(root, "src", "Generated", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
}

func TestLoad_NearestFileWins(t *testing.T) {
	outer := t.TempDir()
	writeWeldfile(t, outer, minimalWeldfile)

	inner := filepath.Join(outer, "subproject")
	require.NoError(t, os.MkdirAll(inner, 0o750))
	writeWeldfile(t, inner, `installer: inner-tag
`+minimalWeldfile)

	cfg, err := config.NewLoader().Load(inner)
	require.NoError(t, err)
	assert.Equal(t, inner, cfg.Root)
	assert.Equal(t, "inner-tag", cfg.InstallerTag)
}

func TestLoad_NotFound(t *testing.T) {
	cwd := t.TempDir()
	_, err := config.NewLoader().Load(cwd)
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
	assert.Contains(t, err.Error(), cwd)
}

func TestLoad_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeWeldfile(t, root, "autoload: [not a mapping")

	_, err := config.NewLoader().Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoad_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name: "missing factory_class",
			content: `autoload:
  factory_file: gen/Factory.php
  bootstrap_file: boot.php
  classmap_file: maps/classmap.php
`,
			field: "autoload.factory_class",
		},
		{
			name: "missing factory_file",
			content: `autoload:
  factory_class: App\Factory
  bootstrap_file: boot.php
  classmap_file: maps/classmap.php
`,
			field: "autoload.factory_file",
		},
		{
			name: "missing bootstrap_file",
			content: `autoload:
  factory_class: App\Factory
  factory_file: gen/Factory.php
  classmap_file: maps/classmap.php
`,
			field: "autoload.bootstrap_file",
		},
		{
			name: "missing classmap_file",
			content: `autoload:
  factory_class: App\Factory
  factory_file: gen/Factory.php
  bootstrap_file: boot.php
`,
			field: "autoload.classmap_file",
		},
		{
			name:    "empty file",
			content: "",
			field:   "autoload.factory_class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeWeldfile(t, root, tt.content)

			_, err := config.NewLoader().Load(root)
			require.ErrorIs(t, err, domain.ErrConfigInvalid)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_AbsolutePathsKept(t *testing.T) {
	root := t.TempDir()
	writeWeldfile(t, root, `resolver:
  snapshot: /shared/installed.json
registry:
  path: /var/lib/weld/registry.yaml
`+minimalWeldfile)

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)
	assert.Equal(t, "/shared/installed.json", cfg.SnapshotPath)
	assert.Equal(t, "/var/lib/weld/registry.yaml", cfg.RegistryPath)
}
