package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetPortalConfig() (*PortalData, error)
	GetGasDefaults() (*GasDefaultsData, error)

	// Configuration management (SQLite-backed providers accept writes)
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Portal      PortalData      `json:"portal"`
	GasDefaults GasDefaultsData `json:"gas_defaults"`
}

// PortalData holds configuration for the HTTP portal controller
type PortalData struct {
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	Port       int    `json:"port,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
	PageTitle  string `json:"page_title,omitempty"`
	EnableCORS bool   `json:"enable_cors,omitempty"`
}

// GasDefaultsData holds the gas concentrations (ppm) pre-filled in the
// portal input form. O2 is display-only context and never enters the
// diagnostic rule set.
type GasDefaultsData struct {
	H2   float64 `json:"h2"`
	CH4  float64 `json:"ch4"`
	C2H4 float64 `json:"c2h4"`
	C2H2 float64 `json:"c2h2"`
	CO   float64 `json:"co"`
	O2   float64 `json:"o2,omitempty"`
}

// DefaultGasValues returns the form defaults used when a configuration
// source carries no gas-defaults section. They describe a serviceable
// transformer with mild CO accumulation.
func DefaultGasValues() GasDefaultsData {
	return GasDefaultsData{
		H2:   150,
		CH4:  25,
		C2H4: 10,
		C2H2: 0.5,
		CO:   800,
		O2:   5000,
	}
}
