package cmd

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	watson "github.com/watson-developer-cloud/watson-go"
	"github.com/watson-developer-cloud/watson-go/discoveryv2"
	"github.com/watson-developer-cloud/watson-go/internal/format"
)

func newDiscoveryCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discovery",
		Short: "Watson Discovery projects and queries",
	}

	projects := &cobra.Command{
		Use:   "projects",
		Short: "Discovery projects",
	}
	projects.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the projects of the instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.discovery().Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			tbl := format.Table{Columns: []string{"project_id", "name", "type", "collection_count"}}
			for _, p := range res.Projects {
				tbl.Append(p.ProjectID, p.Name, string(p.Type), strconv.FormatInt(p.CollectionCount, 10))
			}
			return c.write(cmd, res.JSON.RawJSON(), tbl)
		},
	})

	cmd.AddCommand(projects, newQueryCmd(c))
	return cmd
}

func (c *cli) discovery() *discoveryv2.Service {
	return discoveryv2.NewService(c.serviceOptions(discoveryv2.DefaultServiceName)...)
}

func newQueryCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <project-id>",
		Short: "Search the collections of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			params := discoveryv2.QueryParams{}
			if flags.Changed("natural-language-query") {
				v, _ := flags.GetString("natural-language-query")
				params.NaturalLanguageQuery = watson.String(v)
			}
			if flags.Changed("query") {
				v, _ := flags.GetString("query")
				params.Query = watson.String(v)
			}
			if flags.Changed("filter") {
				v, _ := flags.GetString("filter")
				params.Filter = watson.String(v)
			}
			if flags.Changed("collection-ids") {
				v, _ := flags.GetStringSlice("collection-ids")
				params.CollectionIDs = watson.F(v)
			}
			if flags.Changed("count") {
				v, _ := flags.GetInt64("count")
				params.Count = watson.Int(v)
			}
			if !params.NaturalLanguageQuery.Present && !params.Query.Present && !params.Filter.Present {
				return errors.New("pass one of --natural-language-query, --query or --filter")
			}

			res, err := c.discovery().Query(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			tbl := format.Table{Columns: []string{"document_id", "collection_id", "confidence", "passage"}}
			for _, r := range res.Results {
				passage := ""
				if len(r.DocumentPassages) > 0 {
					passage = r.DocumentPassages[0].PassageText
				}
				tbl.Append(r.DocumentID, r.ResultMetadata.CollectionID, strconv.FormatFloat(r.ResultMetadata.Confidence, 'f', 4, 64), passage)
			}
			return c.write(cmd, res.JSON.RawJSON(), tbl)
		},
	}
	cmd.Flags().StringP("natural-language-query", "n", "", "Query in natural language")
	cmd.Flags().StringP("query", "q", "", "Query in the Discovery Query Language")
	cmd.Flags().String("filter", "", "Filter results without affecting their relevance")
	cmd.Flags().StringSlice("collection-ids", nil, "Collections to search, all by default")
	cmd.Flags().Int64("count", 10, "Number of results to return")
	return cmd
}
