package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/cloud-hooks/pkg/runtime/terminal/commands"
	"github.com/de-tools/cloud-hooks/pkg/runtime/terminal/export"
	"github.com/de-tools/cloud-hooks/pkg/services/findings"
	"github.com/de-tools/cloud-hooks/pkg/services/synctrigger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	importers findings.ImporterFactory
	starters  func(profile string) synctrigger.ClientFactory
	reporter  *export.Reporter
	logger    zerolog.Logger
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Importers findings.ImporterFactory
	Starters  func(profile string) synctrigger.ClientFactory
	Output    io.Writer
	Logger    *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Importers == nil {
		opts.Importers = findings.NewImporter
	}
	if opts.Starters == nil {
		opts.Starters = synctrigger.NewClientFactory
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		importers: opts.Importers,
		starters:  opts.Starters,
		reporter:  export.NewReporter(opts.Output),
		logger:    logger,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.Run(context.Background(), os.Args[1:])
}

// Run executes the command line given by args with the CLI logger attached to ctx
func (cli *CLI) Run(ctx context.Context, args []string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cloud-hooks",
		Short:         "Security Hub and DataSync automation hooks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewFindingCmd(cli.importers, cli.reporter))
	cmd.AddCommand(commands.NewDataSyncCmd(cli.starters, cli.reporter))

	return cmd
}
