// File: cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/veye-maven/internal/config"
	"github.com/xkilldash9x/veye-maven/internal/observability"
	"github.com/xkilldash9x/veye-maven/internal/reporting"
)

type contextKey string

const configKey contextKey = "config"

// flagBindings maps command line flags onto configuration keys.
var flagBindings = map[string]string{
	"pom":           "project.pom",
	"skip-scopes":   "project.skip_scopes",
	"track-plugins": "project.track_plugins",
	"name-strategy": "project.name_strategy",
	"output":        "project.output",
	"api-key":       "api.key",
	"base-url":      "api.base_url",
	"proxy-url":     "api.proxy_url",
	"log-level":     "logger.level",
	"log-format":    "logger.format",
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "veye-maven",
		Short: "Reports Maven dependencies and build plugins to VersionEye.",
		Long: `veye-maven reads a project's pom.xml, collects its declared and managed
dependencies and build plugins, and either writes them as a JSON document or
submits them to a VersionEye compatible service.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(cmd, v, cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				observability.InitializeLogger(config.NewDefaultConfig().Logger())
				return fmt.Errorf("failed to load or validate config: %w", err)
			}

			if documentOnStdout(cmd.Name(), cfg) {
				observability.Initialize(cfg.Logger(), zapcore.Lock(os.Stderr))
			} else {
				observability.InitializeLogger(cfg.Logger())
			}
			observability.GetLogger().Debug("Starting veye-maven",
				zap.String("version", Version), zap.String("config", v.ConfigFileUsed()))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./veye.yaml, then ~/veye.yaml)")
	flags.String("pom", "pom.xml", "Path to the project descriptor")
	flags.String("skip-scopes", "", "Comma separated dependency scopes to leave out")
	flags.Bool("track-plugins", true, "Include build plugins in the document")
	flags.String("name-strategy", "name", "Project naming: name, GA or artifact_id")
	flags.String("api-key", "", "API key (default from VEYE_API_KEY or the key file)")
	flags.String("base-url", "", "Service base URL")
	flags.String("proxy-url", "", "HTTP proxy for service requests (default from HTTPS_PROXY)")
	flags.String("log-level", "", "Log level")
	flags.String("log-format", "", "Log format: console, json or plain")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newJSONCmd())
	rootCmd.AddCommand(newCreateCmd(NewServiceProvider()))
	rootCmd.AddCommand(newUpdateCmd(NewServiceProvider()))
	rootCmd.AddCommand(newArtifactsCmd())
	return rootCmd
}

// Execute runs the command tree with ctx and logs a failure before returning it.
func Execute(ctx context.Context) error {
	defer observability.Sync()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			observability.GetLogger().Warn("Interrupted")
			return err
		}
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		return err
	}
	return nil
}

// initializeConfig layers the config file, a .env file, VEYE_* environment
// variables and command line flags onto v.
func initializeConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to expand config path %s: %w", cfgFile, err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName("veye")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VEYE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return bindFlags(cmd.Flags(), v)
}

// bindFlags binds every known flag present on fs. Only flags set on the
// command line take precedence over the config file.
func bindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	for name, key := range flagBindings {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// documentOnStdout reports whether the named command prints its document on
// standard output, in which case logs go to standard error.
func documentOnStdout(name string, cfg config.Interface) bool {
	switch name {
	case "artifacts":
		return true
	case "json":
		return reporting.IsStdout(cfg.Project().Output)
	}
	return false
}

// getConfigFromContext returns the configuration stored by PersistentPreRunE.
func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, errors.New("configuration not found in context")
	}
	return cfg, nil
}
