package server

// Config holds configuration for the kiosk artifact server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// ApiKey is an optional secret required to access the artifacts.
	ApiKey string `mapstructure:"api_key" default:""`
	// OutputDir is the directory generated artifacts are written to and
	// served from.
	OutputDir string `mapstructure:"output_dir" default:"."`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}
