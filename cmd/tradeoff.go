package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcozac/go-jsonc"
	"github.com/spf13/cobra"

	watson "github.com/watson-developer-cloud/watson-go"
	"github.com/watson-developer-cloud/watson-go/internal/format"
	"github.com/watson-developer-cloud/watson-go/tradeoffanalyticsv1"
)

func newTradeoffCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tradeoff",
		Short: "Tradeoff Analytics decisions",
	}

	dilemma := &cobra.Command{
		Use:   "dilemma --file <problem.jsonc>",
		Short: "Find the Pareto optimal options of a decision problem",
		Long: `Send a decision problem and print how each option was resolved.
The problem file holds the subject, columns and options of the request
body; it may contain comments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			params, err := readDilemma(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("preferable") {
				v, _ := cmd.Flags().GetBool("preferable")
				params.FindPreferableOptions = watson.Bool(v)
			}
			if cmd.Flags().Changed("visualization") {
				v, _ := cmd.Flags().GetBool("visualization")
				params.GenerateVisualization = watson.Bool(v)
			}

			svc := tradeoffanalyticsv1.NewService(c.serviceOptions(tradeoffanalyticsv1.DefaultServiceName)...)
			res, err := svc.Dilemmas.New(cmd.Context(), params)
			if err != nil {
				return err
			}

			names := map[string]string{}
			for _, o := range res.Problem.Options {
				names[o.Key] = o.Name
			}
			tbl := format.Table{Columns: []string{"option", "name", "status", "cause"}}
			for _, s := range res.Resolution.Solutions {
				tbl.Append(s.SolutionRef, names[s.SolutionRef], string(s.Status), strings.Join(s.StatusCause.Tokens, ","))
			}
			return c.write(cmd, res.JSON.RawJSON(), tbl)
		},
	}
	dilemma.Flags().String("file", "", "Problem file (JSON with comments)")
	dilemma.Flags().Bool("preferable", false, "Also find the preferable options")
	dilemma.Flags().Bool("visualization", false, "Compute the visualization map")
	dilemma.MarkFlagRequired("file")

	cmd.AddCommand(dilemma)
	return cmd
}

func readDilemma(path string) (tradeoffanalyticsv1.DilemmaNewParams, error) {
	var params tradeoffanalyticsv1.DilemmaNewParams
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("reading problem: %w", err)
	}
	if err := jsonc.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parsing problem %s: %w", path, err)
	}
	return params, nil
}
