package appconf

import (
	"fmt"
	"net/netip"
	"strings"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// ParseEnvironment maps an env setting to an Environment. Unknown names are an
// error so a misspelt "production" cannot enable development-only routes.
func ParseEnvironment(env string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev":
		return Development, nil
	case "test":
		return Test, nil
	case "production", "prod":
		return Production, nil
	default:
		return Development, fmt.Errorf("invalid env %q (use development, test or production)", env)
	}
}

// EnvFlagToEnvironment maps the --env flag value to an Environment.
// Unrecognized values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	e, _ := ParseEnvironment(env)
	return e
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port      int
	Env       Environment
	DataPath  string
	Delimiter rune
	// RateLimit is the number of requests per second allowed per client; <= 0 disables limiting.
	RateLimit int
	LogLevel  string

	// TrustedProxies are the peers whose X-Forwarded-For header is believed.
	TrustedProxies []netip.Prefix
}
