package config

// weldfile is the YAML schema of weld.yaml.
type weldfile struct {
	Installer string       `yaml:"installer"`
	Resolver  resolverDTO  `yaml:"resolver"`
	Registry  registryDTO  `yaml:"registry"`
	Autoload  autoloadDTO  `yaml:"autoload"`
	Rebuild   rebuildDTO   `yaml:"rebuild"`
}

type resolverDTO struct {
	Snapshot string `yaml:"snapshot"`
}

type registryDTO struct {
	Path string `yaml:"path"`
}

type autoloadDTO struct {
	FactoryClass  string `yaml:"factory_class"`
	FactoryFile   string `yaml:"factory_file"`
	BootstrapFile string `yaml:"bootstrap_file"`
	ClassMapFile  string `yaml:"classmap_file"`
	ClassMapBase  string `yaml:"classmap_base"`
}

type rebuildDTO struct {
	Repository commandsDTO `yaml:"repository"`
	Discovery  commandsDTO `yaml:"discovery"`
}

type commandsDTO struct {
	Clear []string `yaml:"clear"`
	Build []string `yaml:"build"`
}
