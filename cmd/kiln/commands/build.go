package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <source>",
		Short: "Compile a module and write the requested artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoSourceSpecified
			}

			configPath, _ := cmd.Flags().GetString("config")
			quiet, _ := cmd.Flags().GetBool("quiet")

			opts := app.BuildOptions{
				ConfigPath: configPath,
				Quiet:      quiet,
			}

			// Only flags given on the command line override the configuration file.
			flags := cmd.Flags()
			if flags.Changed("output-dir") {
				opts.OutputDir, _ = flags.GetString("output-dir")
			}
			if flags.Changed("emit") {
				emit, _ := flags.GetString("emit")
				opts.Emit = domain.SplitTargetList(emit)
				if opts.Emit == nil {
					// An explicitly empty list is rejected like any other unknown target.
					opts.Emit = []string{emit}
				}
			}
			if flags.Changed("overwrite") {
				overwrite, _ := flags.GetBool("overwrite")
				opts.Overwrite = &overwrite
			}
			if flags.Changed("optimize") {
				optimize, _ := flags.GetBool("optimize")
				opts.Optimize = &optimize
			}
			if verbose, _ := flags.GetBool("verbose"); verbose {
				opts.Trace = cmd.ErrOrStderr()
			}

			return c.app.Build(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringP("output-dir", "o", domain.DefaultOutputDir, "Directory to write artifacts into")
	cmd.Flags().StringP("emit", "e", domain.DefaultEmit, "Comma-separated artifacts to emit: abi, ast, bytecode, tokens, yul")
	cmd.Flags().Bool("overwrite", false, "Write into a non-empty output directory")
	cmd.Flags().Bool("optimize", false, "Enable the optimizer")
	cmd.Flags().BoolP("verbose", "v", false, "Trace every artifact write on stderr")
	return cmd
}
