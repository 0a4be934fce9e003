package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the mysql DSN. For the sqlite driver the Path field is used
// directly and this method is not consulted.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// AuthConfig controls how the HTTP layer resolves the calling principal.
// Mode "jwt" parses a bearer token and takes the subject claim; mode "header"
// trusts the X-Principal header and is meant for development and tests.
type AuthConfig struct {
	Mode string    `mapstructure:"mode"`
	JWT  JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

// ChainConfig selects the block clock implementation. Mode "manual" starts at
// InitialHeight and is advanced through the admin API; mode "interval"
// derives the height from GenesisUnix and SecondsPerBlock.
type ChainConfig struct {
	Mode            string `mapstructure:"mode"`
	InitialHeight   uint64 `mapstructure:"initial_height"`
	GenesisUnix     int64  `mapstructure:"genesis_unix"`
	SecondsPerBlock int64  `mapstructure:"seconds_per_block"`
}

// EngineConfig carries the deployment-fixed engine identity and defaults.
type EngineConfig struct {
	AdminPrincipal  string   `mapstructure:"admin_principal"`
	DefaultFeatures []string `mapstructure:"default_features"`
}

// LedgerConfig seeds the in-memory ledger adapter. Production deployments
// replace the adapter and ignore these seeds.
type LedgerConfig struct {
	Seed map[string]uint64 `mapstructure:"seed"`
}
