package main

import (
	"fmt"
	"os"
	"path/filepath"

	simple_util "github.com/liserjrqlxue/simple-util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/biosustain/library-to-samplesheet/samplesheet"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// exit status of the original tool's sys.exit(-1)
const exitFailure = 255

var logger = zap.NewNop()

type options struct {
	runParameters string
	librarySheet  string
	output        string
	adapters      string
	logFile       string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	var opts = &options{}
	var rootCmd = &cobra.Command{
		Use:   "library_to_samplesheet",
		Short: "Convert a NextSeq library sheet to a bcl2fastq sample sheet",
		Long: `Reads the read lengths from RunParameters.xml and the samples from a library
sheet (.csv or .xlsx), then writes a sample sheet with [Reads], [Settings] and
[Data] blocks. The [Settings] adapters come from the adapter table selected by
the library sheet's LibraryPrepKit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.runParameters, "run_parameters", "r", "", `path to "RunParameters.xml" file`)
	flags.StringVarP(&opts.librarySheet, "library_sheet", "l", "", "path to library sheet file")
	flags.StringVarP(&opts.output, "output", "o", "", "path for sample sheet output")
	for _, name := range []string{"run_parameters", "library_sheet", "output"} {
		_ = rootCmd.MarkFlagRequired(name)
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&opts.adapters, "adapters", "a", filepath.Join(exPath, "etc", "adapters.tsv"), "adapter table")
	persistent.StringVar(&opts.logFile, "log", "", "output log file")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newKitsCmd(opts))
	return rootCmd
}

func newKitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kits",
		Short: "List the library prep kits of the adapter table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapters, err := samplesheet.LoadAdapterTable(opts.adapters)
			if err != nil {
				return err
			}
			for _, kit := range adapters.Kits() {
				fmt.Fprintln(cmd.OutOrStdout(), kit)
			}
			return nil
		},
	}
}

func initLogger(opts *options) error {
	config := zap.NewProductionConfig()
	if opts.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if opts.logFile != "" {
		config.OutputPaths = append(config.OutputPaths, opts.logFile)
	}
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func run(opts *options) error {
	if err := checkPaths(opts); err != nil {
		return err
	}
	logger.Info("start",
		zap.String("run_parameters", opts.runParameters),
		zap.String("library_sheet", opts.librarySheet),
		zap.String("output", opts.output),
		zap.String("adapters", opts.adapters))

	adapters, err := samplesheet.LoadAdapterTable(opts.adapters)
	if err != nil {
		return err
	}
	return samplesheet.NewConverter(adapters, logger).Convert(opts.runParameters, opts.librarySheet, opts.output)
}

// checkPaths requires both inputs to exist and refuses to overwrite the output.
func checkPaths(opts *options) error {
	if !simple_util.FileExists(opts.runParameters) {
		return fmt.Errorf("%w: given RunParameters path:\n%q", samplesheet.ErrInputNotFound, opts.runParameters)
	}
	if !simple_util.FileExists(opts.librarySheet) {
		return fmt.Errorf("%w: given library sheet path:\n%q", samplesheet.ErrInputNotFound, opts.librarySheet)
	}
	if simple_util.FileExists(opts.output) {
		return fmt.Errorf("%w: given sample sheet path:\n%q", samplesheet.ErrOutputAlreadyExists, opts.output)
	}
	var err error
	opts.runParameters, err = filepath.Abs(opts.runParameters)
	simple_util.CheckErr(err)
	opts.librarySheet, err = filepath.Abs(opts.librarySheet)
	simple_util.CheckErr(err)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}
