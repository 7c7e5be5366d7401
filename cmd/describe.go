package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kr/text"
	"github.com/spf13/cobra"

	"github.com/cube2222/vlcompiler/dataflow"
	"github.com/cube2222/vlcompiler/outputs/formats"
)

var describeCmd = &cobra.Command{
	Use:   "describe [spec file]",
	Short: "List the fields whose invalid values get filtered out, with their filter expressions.",
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

		report := describeReport
		if !cmd.Flags().Changed("report") {
			report = cfg.Output.Report
		}
		return describe(cmd.OutOrStdout(), c.Root, report)
	},
}

var describeHeader = []string{"field", "type", "scale type", "expression"}

// describe writes a report of every invalid value filter in the dataflow, in dataflow order.
func describe(w io.Writer, root *dataflow.SourceNode, report string) error {
	var nodes []*dataflow.FilterInvalidNode
	dataflow.Walk(root, func(node dataflow.Node) {
		if node, ok := node.(*dataflow.FilterInvalidNode); ok {
			nodes = append(nodes, node)
		}
	})
	if len(nodes) == 0 {
		_, err := fmt.Fprintln(w, "no fields are filtered for invalid values")
		return err
	}

	for i, node := range nodes {
		var buf bytes.Buffer
		format, err := formats.NewFormat(report, &buf)
		if err != nil {
			return err
		}
		format.SetHeader(describeHeader)

		filter := node.Filter()
		for _, field := range filter.Keys() {
			scaleType, _ := filter.Get(field)
			fieldType := "-"
			if fieldDef := node.FieldDef(field); fieldDef != nil {
				fieldType = string(fieldDef.Type)
			}
			expr := node.Expression(field)
			if expr == "" {
				expr = "-"
			}
			if err := format.Write([]string{field, fieldType, string(scaleType), expr}); err != nil {
				return fmt.Errorf("couldn't write report row: %w", err)
			}
		}
		if err := format.Close(); err != nil {
			return fmt.Errorf("couldn't close report: %w", err)
		}

		if _, err := fmt.Fprintf(w, "invalid value filter %d:\n%s", i+1, text.Indent(buf.String(), "  ")); err != nil {
			return err
		}
	}
	return nil
}

var describeReport string

func init() {
	describeCmd.Flags().StringVar(&describeReport, "report", "table", "Report format, table or csv.")
	describeCmd.Flags().BoolVar(&optimize, "optimize", true, "Whether the dataflow should be optimized.")
	rootCmd.AddCommand(describeCmd)
}
