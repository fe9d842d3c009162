package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type ScenariosCmd struct {
	scenariosPath string
}

func NewScenariosCmd(defaultScenariosPath string) *cobra.Command {
	sc := &ScenariosCmd{}
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the named scenarios of a scenarios file",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.scenariosPath, "scenarios", defaultScenariosPath, "Path to the scenarios ini file")

	return cmd
}

func (sc *ScenariosCmd) run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	registry, err := config.NewScenarioRegistry(sc.scenariosPath)
	if err != nil {
		return err
	}

	scenarios, err := registry.GetScenarios(ctx)
	if err != nil {
		return fmt.Errorf("failed to list scenarios: %w", err)
	}
	if len(scenarios) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No scenarios found in: %s\n", sc.scenariosPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scenarios in %s:\n%s\n",
		sc.scenariosPath,
		strings.Join(scenarios, "\n"))

	return nil
}
