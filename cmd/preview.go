package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/valyala/fastjson"

	"github.com/cube2222/vlcompiler/expression"
	"github.com/cube2222/vlcompiler/outputs/formats"
	"github.com/cube2222/vlcompiler/vega"
)

var previewCmd = &cobra.Command{
	Use:   "preview [spec file]",
	Short: "Evaluate the filters of the compiled spec against its inline data values.",
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

		report := previewReport
		if !cmd.Flags().Changed("report") {
			report = cfg.Output.Report
		}
		return preview(cmd.OutOrStdout(), c.Data, report)
	},
}

var previewHeader = []string{"dataset", "#", "record", "kept"}

type previewRow struct {
	Index  int
	Record map[string]interface{}
	Kept   bool
}

// previewDataset evaluates the filter transforms of the dataset against each of its inline records.
func previewDataset(evaluator *expression.Evaluator, dataset *vega.Data) ([]previewRow, error) {
	exprs := dataset.FilterExpressions()
	out := make([]previewRow, len(dataset.Values))
	for i, record := range dataset.Values {
		kept, err := evaluator.EvaluateAll(exprs, record)
		if err != nil {
			return nil, fmt.Errorf("couldn't evaluate filters for record with index %d: %w", i, err)
		}
		out[i] = previewRow{
			Index:  i,
			Record: record,
			Kept:   kept,
		}
	}
	return out, nil
}

func preview(w io.Writer, data []*vega.Data, report string) error {
	format, err := formats.NewFormat(report, w)
	if err != nil {
		return err
	}
	format.SetHeader(previewHeader)

	evaluator := expression.NewEvaluator()
	var arena fastjson.Arena
	previewed := 0
	for _, dataset := range data {
		if len(dataset.Values) == 0 {
			continue
		}
		previewed++

		rows, err := previewDataset(evaluator, dataset)
		if err != nil {
			return fmt.Errorf("couldn't preview dataset %s: %w", dataset.Name, err)
		}
		for _, row := range rows {
			record := formats.MarshalValue(nil, formats.ValueToJSON(&arena, row.Record))
			if err := format.Write([]string{dataset.Name, strconv.Itoa(row.Index), string(record), strconv.FormatBool(row.Kept)}); err != nil {
				return fmt.Errorf("couldn't write preview row: %w", err)
			}
		}
		arena.Reset()
	}
	if previewed == 0 {
		return fmt.Errorf("spec has no inline data values to preview")
	}

	return format.Close()
}

var previewReport string

func init() {
	previewCmd.Flags().StringVar(&previewReport, "report", "table", "Report format, table or csv.")
	previewCmd.Flags().BoolVar(&optimize, "optimize", true, "Whether the dataflow should be optimized.")
	rootCmd.AddCommand(previewCmd)
}
