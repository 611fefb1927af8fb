package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	watson "github.com/watson-developer-cloud/watson-go"
	"github.com/watson-developer-cloud/watson-go/assistantv1"
	"github.com/watson-developer-cloud/watson-go/assistantv2"
	"github.com/watson-developer-cloud/watson-go/internal/format"
	"github.com/watson-developer-cloud/watson-go/option"
)

func newAssistantCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Watson Assistant workspaces and conversations",
	}
	cmd.AddCommand(newWorkspacesCmd(c), newMessageCmd(c), newAskCmd(c))
	return cmd
}

func (c *cli) assistantV1() *assistantv1.Service {
	return assistantv1.NewService(c.serviceOptions(assistantv1.DefaultServiceName)...)
}

func workspaceTable(workspaces ...assistantv1.Workspace) format.Table {
	tbl := format.Table{Columns: []string{"workspace_id", "name", "language", "status"}}
	for _, w := range workspaces {
		tbl.Append(w.WorkspaceID, w.Name, w.Language, string(w.Status))
	}
	return tbl
}

func newWorkspacesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"ws"},
		Short:   "List, show and change workspaces",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the workspaces of the instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := assistantv1.WorkspaceListParams{}
			if cmd.Flags().Changed("page-limit") {
				limit, _ := cmd.Flags().GetInt64("page-limit")
				params.PageLimit = watson.Int(limit)
			}
			if cmd.Flags().Changed("cursor") {
				cursor, _ := cmd.Flags().GetString("cursor")
				params.Cursor = watson.String(cursor)
			}
			res, err := c.assistantV1().Workspaces.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.write(cmd, res.JSON.RawJSON(), workspaceTable(res.Workspaces...))
		},
	}
	list.Flags().Int64("page-limit", 100, "Number of workspaces per page")
	list.Flags().String("cursor", "", "Cursor of the page to return")

	get := &cobra.Command{
		Use:   "get <workspace-id>",
		Short: "Show one workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := assistantv1.WorkspaceGetParams{}
			if export, _ := cmd.Flags().GetBool("export"); export {
				params.Export = watson.Bool(true)
			}
			res, err := c.assistantV1().Workspaces.Get(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return c.write(cmd, res.JSON.RawJSON(), workspaceTable(*res))
		},
	}
	get.Flags().Bool("export", false, "Include intents, entities and dialog nodes")

	update := &cobra.Command{
		Use:   "update <workspace-id>",
		Short: "Change a workspace, sending only the flags given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := workspaceUpdateParams(cmd)
			if err != nil {
				return err
			}
			c.logger.Debug("workspace patch", "keys", params.AsPatch().Keys())
			res, err := c.assistantV1().Workspaces.Update(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return c.write(cmd, res.JSON.RawJSON(), workspaceTable(*res))
		},
	}
	update.Flags().String("name", "", "New name")
	update.Flags().String("description", "", "New description")
	update.Flags().Bool("clear-description", false, "Remove the description")
	update.Flags().String("language", "", "New language")
	update.Flags().Bool("learning-opt-out", false, "Whether IBM may not use the training data")
	update.Flags().Bool("append", false, "Append elements instead of replacing them")
	update.MarkFlagsMutuallyExclusive("description", "clear-description")

	cmd.AddCommand(list, get, update)
	return cmd
}

func workspaceUpdateParams(cmd *cobra.Command) (assistantv1.WorkspaceUpdateParams, error) {
	flags := cmd.Flags()
	params := assistantv1.WorkspaceUpdateParams{}
	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		params.Name = watson.String(v)
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		params.Description = watson.String(v)
	}
	if remove, _ := flags.GetBool("clear-description"); remove {
		params.Description = watson.Null[string]()
	}
	if flags.Changed("language") {
		v, _ := flags.GetString("language")
		params.Language = watson.String(v)
	}
	if flags.Changed("learning-opt-out") {
		v, _ := flags.GetBool("learning-opt-out")
		params.LearningOptOut = watson.Bool(v)
	}
	if flags.Changed("append") {
		v, _ := flags.GetBool("append")
		params.Append = watson.Bool(v)
	}
	if params.AsPatch().Len() == 0 {
		return params, errors.New("nothing to update: pass at least one of --name, --description, --clear-description, --language, --learning-opt-out")
	}
	return params, nil
}

func responseTable(texts []string) format.Table {
	tbl := format.Table{Columns: []string{"response"}}
	for _, text := range texts {
		tbl.Append(text)
	}
	return tbl
}

func newMessageCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message <workspace-id> [text]",
		Short: "Send one message to a v1 workspace",
		Long: `Send one message to a v1 workspace and print the dialog's answer.
The text is read from the arguments or, when there are none, from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, ok := inputText(args[1:])
			if !ok {
				return errors.New("no message text: pass it as an argument or pipe it to stdin")
			}
			params := assistantv1.MessageParams{
				Input: watson.F(assistantv1.MessageInputParam{Text: watson.String(text)}),
			}
			if details, _ := cmd.Flags().GetBool("nodes-visited"); details {
				params.NodesVisitedDetails = watson.Bool(true)
			}
			var opts []option.RequestOption
			if optOut, _ := cmd.Flags().GetBool("learning-opt-out"); optOut {
				opts = append(opts, option.WithLearningOptOut())
			}

			res, err := c.assistantV1().Message(cmd.Context(), args[0], params, opts...)
			if err != nil {
				return err
			}
			texts := res.Output.Text
			for _, g := range res.Output.Generic {
				if len(res.Output.Text) == 0 && g.ResponseType == assistantv1.RuntimeResponseGenericResponseTypeText {
					texts = append(texts, g.Text)
				}
			}
			return c.write(cmd, res.JSON.RawJSON(), responseTable(texts))
		},
	}
	cmd.Flags().Bool("nodes-visited", false, "Return details of the dialog nodes visited")
	cmd.Flags().Bool("learning-opt-out", false, "Ask Watson not to use the message to improve its services")
	return cmd
}

func newAskCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <assistant-id> [text]",
		Short: "Send one stateless message to a v2 assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, ok := inputText(args[1:])
			if !ok {
				return errors.New("no message text: pass it as an argument or pipe it to stdin")
			}
			input := assistantv2.MessageInputParam{
				MessageType: watson.F(assistantv2.MessageInputMessageTypeText),
				Text:        watson.String(text),
			}
			if debug, _ := cmd.Flags().GetBool("debug-output"); debug {
				input.Options = watson.F(assistantv2.MessageInputOptionsParam{Debug: watson.Bool(true)})
			}

			svc := assistantv2.NewService(c.serviceOptions(assistantv2.DefaultServiceName)...)
			res, err := svc.MessageStateless(cmd.Context(), args[0], assistantv2.MessageStatelessParams{
				Input: watson.F(input),
			})
			if err != nil {
				return err
			}

			tbl := format.Table{Columns: []string{"response_type", "response"}}
			for _, g := range res.Output.Generic {
				switch g.ResponseType {
				case assistantv2.RuntimeResponseGenericResponseTypeText:
					tbl.Append(string(g.ResponseType), g.Text)
				case assistantv2.RuntimeResponseGenericResponseTypeOption:
					for _, o := range g.Options {
						tbl.Append(string(g.ResponseType), o.Label)
					}
				default:
					text := g.Text
					if text == "" {
						text = g.Title
					}
					tbl.Append(string(g.ResponseType), text)
				}
			}
			return c.write(cmd, res.JSON.RawJSON(), tbl)
		},
	}
	cmd.Flags().Bool("debug-output", false, "Ask the assistant for debug output")
	return cmd
}
