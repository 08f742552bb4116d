package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"ownerboard.dev/internal/appconf"
)

// flagKeys maps command-line flags to their configuration keys.
var flagKeys = map[string]string{
	"port":            "port",
	"env":             "env",
	"data":            "data_path",
	"delimiter":       "delimiter",
	"rate-limit":      "rate_limit",
	"log-level":       "log_level",
	"trusted-proxies": "trusted_proxies",
}

func newRootCmd() *cobra.Command {
	v := appconf.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "ownerboard",
		Short:         "Business owners dashboard server",
		Long:          "Serves a read-only dashboard, JSON API and raw download over a business-owners CSV file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, os.Stdout)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "optional YAML config file")
	flags.Int("port", 4000, "API server port")
	flags.String("env", "development", "Environment (development|test|production)")
	flags.String("data", "business_owners_cache.csv", "path to the business owners CSV file")
	flags.String("delimiter", "", `field delimiter; empty sniffs it, "tab" for tab-separated files`)
	flags.Int("rate-limit", 100, "requests per second allowed per client; 0 disables limiting")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.StringSlice("trusted-proxies", nil, "IPs or CIDR ranges of reverse proxies whose X-Forwarded-For is honored")

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	cmd.AddCommand(newConfigCmd(v, &cfgFile))
	return cmd
}

func resolveConfig(v *viper.Viper, cfgFile string) (appconf.Config, error) {
	settings, err := appconf.Load(v, cfgFile)
	if err != nil {
		return appconf.Config{}, err
	}
	return settings.Config()
}
