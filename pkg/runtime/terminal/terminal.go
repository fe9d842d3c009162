package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/de-tools/growth-atlas/pkg/runtime/terminal/commands"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// DefaultScenariosFile is looked up in the user's home directory.
const DefaultScenariosFile = ".growthcfg"

// CLI represents the command-line interface
type CLI struct {
	rootCmd   *cobra.Command
	errOutput io.Writer
	logLevel  string
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
	// ScenariosPath overrides the default $HOME/.growthcfg
	ScenariosPath string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.ScenariosPath == "" {
		opts.ScenariosPath = defaultScenariosPath()
	}

	cli := &CLI{errOutput: opts.ErrOutput}
	cli.rootCmd = cli.newRootCmd(opts.ScenariosPath)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd(scenariosPath string) *cobra.Command {
	cmd := commands.NewProjectCmd(scenariosPath)
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = cli.setupLogger
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", zerolog.LevelWarnValue,
		"Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(commands.NewScenariosCmd(scenariosPath))

	return cmd
}

func (cli *CLI) setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(cli.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.logLevel, err)
	}

	logger := zerolog.New(cli.errOutput).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func defaultScenariosPath() string {
	usr, err := user.Current()
	if err != nil {
		return DefaultScenariosFile
	}
	return filepath.Join(usr.HomeDir, DefaultScenariosFile)
}
