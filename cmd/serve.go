package cmd

import (
	"fmt"
	"net"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schedsim/schedsim/api"
)

// ServerSettings configures the HTTP API. Resolved by viper from, in order of
// precedence: flags, SCHEDSIM_* environment variables, the --server-config file,
// defaults.
type ServerSettings struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	BodyLimit int    `mapstructure:"body_limit"` // bytes; fiber's default when 0
}

// Address returns host:port for Listen.
func (s ServerSettings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

var serverConfigPath string // Optional YAML/JSON/TOML file read by viper

// serveCmd exposes the scheduler over HTTP until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadServerSettings(cmd)
		if err != nil {
			return err
		}

		app := api.NewApp(api.Config{BodyLimit: settings.BodyLimit})
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			logrus.Info("Shutting down API server")
			if err := app.Shutdown(); err != nil {
				logrus.Errorf("shutdown: %v", err)
			}
		}()

		logrus.Infof("Scheduling API listening on %s", settings.Address())
		return app.Listen(settings.Address())
	},
}

func loadServerSettings(cmd *cobra.Command) (*ServerSettings, error) {
	v := viper.New()
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 9095)
	v.SetDefault("body_limit", 0)

	v.SetEnvPrefix("SCHEDSIM")
	v.AutomaticEnv()

	for key, flag := range map[string]string{"host": "host", "port": "port", "body_limit": "body-limit"} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	if serverConfigPath != "" {
		v.SetConfigFile(serverConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading server config: %w", err)
		}
	}

	var settings ServerSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decoding server config: %w", err)
	}
	if settings.Port <= 0 || settings.Port > 65535 {
		return nil, fmt.Errorf("port must be in 1..65535, got %d", settings.Port)
	}
	return &settings, nil
}

func init() {
	serveCmd.Flags().String("host", "0.0.0.0", "Interface to listen on")
	serveCmd.Flags().Int("port", 9095, "Port to listen on")
	serveCmd.Flags().Int("body-limit", 0, "Max request body size in bytes (0 = server default)")
	serveCmd.Flags().StringVar(&serverConfigPath, "server-config", "", "Server settings file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd)
}
