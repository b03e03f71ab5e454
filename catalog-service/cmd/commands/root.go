package commands

import (
	"fmt"

	"productcatalog/catalog-service/internal/app/catalog/config"
	"productcatalog/pkg/logger"

	"github.com/spf13/cobra"
)

const serviceName = "catalog-service"

// rootCmd без подкоманды запускает сервер
var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Product catalog REST service",
	Long: `Product catalog REST service: categories and products over HTTP, stored in PostgreSQL.

Configuration is read from environment variables (and an optional .env file).`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute запускает корневую команду
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("Catalog Service failed")
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// bootstrap загружает конфигурацию и настраивает логгер, общий шаг всех команд
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(serviceName, cfg.Log.Level)

	if cfg.Log.LogstashAddr != "" {
		if err := logger.InitLogstash(cfg.Log.LogstashAddr, serviceName, cfg.Log.Level); err != nil {
			logger.Warn().Err(err).Msg("Failed to connect to Logstash, using stdout only")
		} else {
			logger.Info().Str("logstash_addr", cfg.Log.LogstashAddr).Msg("Connected to Logstash")
		}
	}

	return cfg, nil
}
