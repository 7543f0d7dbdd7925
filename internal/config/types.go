package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int           `yaml:"port"`
	Env            string        `yaml:"env"` // "development" | "production"
	DataPath       string        `yaml:"data_path"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	JWTSecret      string        `yaml:"jwt_secret"`
	SessionTTL     int           `yaml:"session_ttl_hours"`
	Admin          AdminConfig   `yaml:"admin"`
	Lockout        LockoutConfig `yaml:"lockout"`
}

// AdminConfig is the single admin identity the login gate checks
// against. These values ship with the binary's config and are a UX
// deterrent, not a security boundary: anyone with the config file (or
// the default build) can read them. Real access control needs a
// separate identity provider in front of this service.
type AdminConfig struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
	// PasswordHash is a bcrypt hash and takes precedence over
	// Password when both are set.
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// LockoutConfig tunes the brute-force deterrent.
type LockoutConfig struct {
	MaxAttempts   int `yaml:"max_attempts"`
	WindowMinutes int `yaml:"window_minutes"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }
