package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/growth-atlas/pkg/server"
	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	scenariosPath string
	logLevel      string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for growth projections",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&scenariosPath, "scenarios", "s", "",
		"Path to the scenarios ini file (overrides GROWTH_SCENARIOS)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", zerolog.LevelInfoValue, "Log level")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded")
	}

	envCfg, err := server.LoadEnvConfig()
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}
	if scenariosPath == "" {
		scenariosPath = envCfg.ScenariosPath
	}

	deps := server.Dependencies{Logger: logger}
	if scenariosPath != "" {
		registry, err := config.NewScenarioRegistry(scenariosPath)
		if err != nil {
			return fmt.Errorf("failed to create scenario registry: %w", err)
		}
		deps.Scenarios = registry

		logger.Info().Msgf("Scenarios at `%s` successfully loaded.", scenariosPath)
		logScenarios(ctx, logger, registry)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            envCfg.Addr(),
		ShutdownTimeout: envCfg.ShutdownTimeout,
		Dependencies:    deps,
	})
	return api.Start()
}

func logScenarios(ctx context.Context, logger zerolog.Logger, registry config.ScenarioRegistry) {
	scenarios, err := registry.GetScenarios(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to list scenarios")
		return
	}
	for _, name := range scenarios {
		logger.Info().Msgf("Scenario: `%s`", name)
	}
}
