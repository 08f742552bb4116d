package appconf

import (
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names, e.g. OWNERBOARD_PORT.
const EnvPrefix = "OWNERBOARD"

// Settings mirrors Config with the plain types used in config files and env vars.
type Settings struct {
	Port      int    `mapstructure:"port" yaml:"port"`
	Env       string `mapstructure:"env" yaml:"env"`
	DataPath  string `mapstructure:"data_path" yaml:"data_path"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	RateLimit int    `mapstructure:"rate_limit" yaml:"rate_limit"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`

	// TrustedProxies lists IPs or CIDR ranges of reverse proxies.
	TrustedProxies []string `mapstructure:"trusted_proxies" yaml:"trusted_proxies"`
}

// NewViper returns a viper instance carrying the defaults and env binding.
// Callers may bind command-line flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 4000)
	v.SetDefault("env", "development")
	v.SetDefault("data_path", "business_owners_cache.csv")
	v.SetDefault("delimiter", "")
	v.SetDefault("rate_limit", 100)
	v.SetDefault("log_level", "info")
	v.SetDefault("trusted_proxies", []string{})
	return v
}

// Load resolves settings. Precedence: flags > env > config file > defaults.
// An empty cfgFile skips the config file.
func Load(v *viper.Viper, cfgFile string) (Settings, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}

// Config validates s and converts it to a Config.
func (s Settings) Config() (Config, error) {
	if s.Port <= 0 || s.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", s.Port)
	}
	if strings.TrimSpace(s.DataPath) == "" {
		return Config{}, fmt.Errorf("data_path must not be empty")
	}

	var delim rune
	switch s.Delimiter {
	case "":
	case `\t`, "tab":
		delim = '\t'
	default:
		if utf8.RuneCountInString(s.Delimiter) != 1 {
			return Config{}, fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
		}
		delim, _ = utf8.DecodeRuneInString(s.Delimiter)
	}

	env, err := ParseEnvironment(s.Env)
	if err != nil {
		return Config{}, err
	}

	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return Config{}, err
	}

	proxies, err := ParseTrustedProxies(s.TrustedProxies)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:           s.Port,
		Env:            env,
		DataPath:       s.DataPath,
		Delimiter:      delim,
		RateLimit:      s.RateLimit,
		LogLevel:       strings.ToLower(s.LogLevel),
		TrustedProxies: proxies,
	}, nil
}

// ParseLogLevel maps debug|info|warn|error to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", level)
	}
	return l, nil
}

// ParseTrustedProxies accepts bare IPs and CIDR ranges. Empty entries are skipped.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted_proxies entry %q: %w", entry, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted_proxies entry %q: %w", entry, err)
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
