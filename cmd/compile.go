package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/cube2222/vlcompiler/graph"
	"github.com/cube2222/vlcompiler/outputs/formats"
)

var compileCmd = &cobra.Command{
	Use:   "compile [spec file]",
	Short: "Compile a Vega-Lite unit spec into the data section of a Vega spec.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSpec(cmd, args)
		if err != nil {
			return err
		}
		c, err := compileSpec(data, cfg, optimizeEnabled(cmd))
		if err != nil {
			return err
		}

		if verbose {
			spew.Fdump(cmd.ErrOrStderr(), c.Model.Spec())
		}

		if showGraph || explain {
			g, err := graph.Show(c.Root.Visualize())
			if err != nil {
				return fmt.Errorf("couldn't build dataflow graph: %w", err)
			}
			if showGraph {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), g.String())
				return err
			}
			return renderGraph(g.String())
		}

		format := compileFormat
		if !cmd.Flags().Changed("format") {
			format = cfg.Output.Format
		}
		if err := formats.WriteData(format, cmd.OutOrStdout(), c.Data); err != nil {
			return fmt.Errorf("couldn't write output: %w", err)
		}
		return nil
	},
}

// renderGraph renders the graph into a png with graphviz and opens it.
func renderGraph(dot string) error {
	file, err := os.CreateTemp(os.TempDir(), "vlcompiler-explain-*.png")
	if err != nil {
		return fmt.Errorf("couldn't create temporary file: %w", err)
	}
	cmd := exec.Command("dot", "-Tpng")
	cmd.Stdin = strings.NewReader(dot)
	cmd.Stdout = file
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("couldn't render graph: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("couldn't close temporary file: %w", err)
	}
	if err := open.Start(file.Name()); err != nil {
		return fmt.Errorf("couldn't open graph: %w", err)
	}
	return nil
}

var compileFormat string
var explain bool
var showGraph bool
var verbose bool

func init() {
	compileCmd.Flags().StringVar(&compileFormat, "format", "json", "Output format, json or yaml.")
	compileCmd.Flags().BoolVar(&optimize, "optimize", true, "Whether the dataflow should be optimized.")
	compileCmd.Flags().BoolVar(&explain, "explain", false, "Render the dataflow with graphviz and open it instead of compiling.")
	compileCmd.Flags().BoolVar(&showGraph, "graph", false, "Print the dataflow in the dot language instead of compiling.")
	compileCmd.Flags().BoolVar(&verbose, "verbose", false, "Dump the parsed spec to stderr.")
	rootCmd.AddCommand(compileCmd)
}
