package config

// SystemConfig holds resolved system-wide daemon settings.
type SystemConfig struct {
	// Port the HTTP server listens on. Overridden by MAJORDOMO_PORT.
	Port int

	// AllowedWSOrigins are additional origin patterns accepted for
	// WebSocket upgrades besides the listen host itself.
	AllowedWSOrigins []string
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		Port: 8080,
	}
}
