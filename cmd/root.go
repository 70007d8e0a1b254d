package cmd

import (
	"io"
	"os"

	"mdcjoin/pkg/combine"
	"mdcjoin/pkg/logging"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the mdcjoin command. Running it without a subcommand
// combines the fragment files of --input-dir into --output-file.
func NewRootCmd() *cobra.Command {
	args := combine.DefaultArguments()

	rootCmd := &cobra.Command{
		Use:   "mdcjoin",
		Short: "Combine .mdc rule files into a single markdown document",
		Long: `mdcjoin concatenates every .mdc file of the input directory, in file name order,
into one markdown file. Each file becomes a section headed by its name without
the extension, followed by a "---" separator.`,
		Example: `  mdcjoin
  mdcjoin --input-dir /path/to/input --output-file /path/to/output.md`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), args.Verbose)
			defer logger.Sync()

			_, err := combine.Run(args, logger)
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&args.InputDir, "input-dir", args.InputDir, "Input directory containing .mdc files")
	flags.StringVar(&args.OutputFile, "output-file", args.OutputFile, "Output markdown file path")
	flags.BoolVar(&args.Verbose, "verbose", false, "Enable verbose output")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments. A failure is
// reported once on stderr and returned so main can set the exit status.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.New(stdout, stderr, false)
		logger.Error(err.Error())
		_ = logger.Sync()
		return err
	}
	return nil
}
