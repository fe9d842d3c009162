package commands

import (
	"fmt"

	"github.com/de-tools/growth-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/de-tools/growth-atlas/pkg/services/growth"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

const projectLong = `Projects the yearly growth of an investment.

You can use it in several ways:
  1. Enter nothing and the built-in defaults are used
     (capital 16000.00, interest 1.07, contribution 5000.00, 38 years).
  2. Enter four arguments: initial capital, interest multiplier (1.07 == 7%),
     yearly contribution and years to predict.
  3. Point --config at a json, yaml, toml or hjson file with the fields
     Capital, Interest, Contribution and Years.
  4. Pick a named --scenario from the --scenarios ini file.

Arguments take precedence over --config, which takes precedence over --scenario.
Flags must be given before the arguments so negative contributions are read as numbers.`

type ProjectCmd struct {
	configPath    string
	scenariosPath string
	scenario      string
	startYear     int
	format        string
	locale        string
}

func NewProjectCmd(defaultScenariosPath string) *cobra.Command {
	pc := &ProjectCmd{}
	cmd := &cobra.Command{
		Use:   "growth [capital interest contribution years]",
		Short: "Investment growth projection",
		Long:  projectLong,
		Args:  pc.validateArgs,
		RunE:  pc.run,
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&pc.configPath, "config", "c", "", "Path to a projection input file")
	cmd.Flags().StringVar(&pc.scenariosPath, "scenarios", defaultScenariosPath, "Path to the scenarios ini file")
	cmd.Flags().StringVarP(&pc.scenario, "scenario", "s", "", "Named scenario to project")
	cmd.Flags().IntVar(&pc.startYear, "start-year", growth.DefaultStartYear, "Label of the first projected year")
	cmd.Flags().StringVarP(&pc.format, "format", "o", string(export.FormatTable),
		fmt.Sprintf("Output format, one of %v", export.Formats))
	cmd.Flags().StringVar(&pc.locale, "locale", "en", "Locale used to format numbers in tables")

	return cmd
}

func (pc *ProjectCmd) validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 4 {
		return fmt.Errorf("%w: expected no arguments or 4 arguments (capital, interest, contribution, years), got %d",
			config.ErrMalformedInput, len(args))
	}
	return nil
}

func (pc *ProjectCmd) run(cmd *cobra.Command, args []string) error {
	// Arguments are validated by now; later failures are not usage errors.
	cmd.SilenceUsage = true
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	format, err := export.ParseFormat(pc.format)
	if err != nil {
		return err
	}
	tag, err := language.Parse(pc.locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", pc.locale, err)
	}

	resolved, err := config.Resolve(ctx, config.Request{
		Args:          args,
		ConfigPath:    pc.configPath,
		ScenariosPath: pc.scenariosPath,
		Scenario:      pc.scenario,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve projection input: %w", err)
	}

	params, err := resolved.Input.Parameters()
	if err != nil {
		return err
	}
	projector, err := growth.NewProjector(params,
		growth.WithStartYear(pc.startYear),
		growth.WithLogger(*logger),
	)
	if err != nil {
		return err
	}

	if _, err := projector.Project(resolved.Input.Years); err != nil {
		return fmt.Errorf("failed to project growth: %w", err)
	}

	reporter := export.NewReporter(cmd.OutOrStdout(), export.WithFormat(format), export.WithLocale(tag))
	return reporter.Handle(projector)
}
