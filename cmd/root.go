package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cube2222/vlcompiler/config"
	"github.com/cube2222/vlcompiler/dataflow"
	"github.com/cube2222/vlcompiler/logs"
	"github.com/cube2222/vlcompiler/model"
	"github.com/cube2222/vlcompiler/optimizer"
	"github.com/cube2222/vlcompiler/parser"
	"github.com/cube2222/vlcompiler/vega"
)

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vlcompiler",
	Short: "Compiles the data section of Vega-Lite unit charts into Vega.",
	Example: `vlcompiler compile chart.vl.json
cat chart.vl.json | vlcompiler compile --format yaml
vlcompiler describe chart.vl.json
vlcompiler preview chart.vl.json`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logToFile {
			logs.InitializeFileLogger()
		}

		var err error
		cfg, err = config.Read()
		if err != nil {
			return fmt.Errorf("couldn't read config: %w", err)
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	cobra.CheckErr(execute(ctx, os.Args[1:]))
}

// execute runs the command line. The log file is closed whether or not the command succeeds.
func execute(ctx context.Context, args []string) error {
	defer logs.CloseLogger()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

var logToFile bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&logToFile, "log-file", true, "Write warnings to ~/.vlcompiler/logs.txt instead of stderr.")
}

type compilation struct {
	Model *model.UnitModel
	Root  *dataflow.SourceNode
	Data  []*vega.Data
}

// compileSpec runs the whole pipeline on a Vega-Lite spec.
func compileSpec(data []byte, cfg *config.Config, optimize bool) (*compilation, error) {
	spec, err := parser.ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse spec: %w", err)
	}
	if spec.Config.InvalidValues == "" {
		spec.Config.InvalidValues = cfg.InvalidValues
	}

	m := model.NewUnitModel(spec)
	root := dataflow.Build(m)
	if optimize {
		optimizer.Optimize(root)
	}

	out, err := dataflow.Assemble(root)
	if err != nil {
		return nil, fmt.Errorf("couldn't assemble data section: %w", err)
	}

	return &compilation{
		Model: m,
		Root:  root,
		Data:  out,
	}, nil
}

// readSpec reads the spec from the file given as the only argument, or from stdin if there is none or it's "-".
func readSpec(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("couldn't read spec from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("couldn't read spec file: %w", err)
	}
	return data, nil
}

func optimizeEnabled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("optimize") {
		return optimize
	}
	return *cfg.Optimize
}

var optimize bool
