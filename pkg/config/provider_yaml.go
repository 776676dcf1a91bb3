package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Portal      PortalYAML       `yaml:"portal"`
		GasDefaults *GasDefaultsYAML `yaml:"gas-defaults,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Portal: PortalData{
			Cert:       yamlConfig.Portal.Cert,
			Key:        yamlConfig.Portal.Key,
			Port:       yamlConfig.Portal.Port,
			ListenAddr: yamlConfig.Portal.ListenAddr,
			PageTitle:  yamlConfig.Portal.PageTitle,
			EnableCORS: yamlConfig.Portal.EnableCORS,
		},
		GasDefaults: DefaultGasValues(),
	}

	if yamlConfig.GasDefaults != nil {
		config.GasDefaults = GasDefaultsData{
			H2:   yamlConfig.GasDefaults.H2,
			CH4:  yamlConfig.GasDefaults.CH4,
			C2H4: yamlConfig.GasDefaults.C2H4,
			C2H2: yamlConfig.GasDefaults.C2H2,
			CO:   yamlConfig.GasDefaults.CO,
			O2:   yamlConfig.GasDefaults.O2,
		}
	}

	y.config = config
	return config, nil
}

// GetPortalConfig returns the portal configuration
func (y *YAMLProvider) GetPortalConfig() (*PortalData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Portal, nil
}

// GetGasDefaults returns the input form gas defaults
func (y *YAMLProvider) GetGasDefaults() (*GasDefaultsData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.GasDefaults, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags for parsing the on-disk format
type PortalYAML struct {
	Cert       string `yaml:"cert,omitempty"`
	Key        string `yaml:"key,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	ListenAddr string `yaml:"listen-addr,omitempty"`
	PageTitle  string `yaml:"page-title,omitempty"`
	EnableCORS bool   `yaml:"enable-cors,omitempty"`
}

type GasDefaultsYAML struct {
	H2   float64 `yaml:"h2,omitempty"`
	CH4  float64 `yaml:"ch4,omitempty"`
	C2H4 float64 `yaml:"c2h4,omitempty"`
	C2H2 float64 `yaml:"c2h2,omitempty"`
	CO   float64 `yaml:"co,omitempty"`
	O2   float64 `yaml:"o2,omitempty"`
}
