package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/watson-developer-cloud/watson-go/internal/config"
	"github.com/watson-developer-cloud/watson-go/internal/format"
	"github.com/watson-developer-cloud/watson-go/internal/logging"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

// cli holds what the persistent flags and the config resolve to.
type cli struct {
	cfg    *config.Config
	logger *slog.Logger
	format format.OutputFormat
}

func (c *cli) serviceOptions(serviceName string) []option.RequestOption {
	opts := c.cfg.ServiceOptions(serviceName)
	return append(opts, option.WithLogger(c.logger))
}

func (c *cli) write(cmd *cobra.Command, raw string, tbl format.Table) error {
	return format.Write(cmd.OutOrStdout(), c.format, raw, tbl)
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:   "watson",
		Short: "Command line client for the IBM Watson APIs",
		Long: `watson talks to Watson Assistant, Discovery and Tradeoff Analytics.
Credentials are read from ibm-credentials.env, from <SERVICE>_* environment
variables, or from the services section of ~/.watson.json.`,
		Version:       requestconfig.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			cwd, _ := cmd.Flags().GetString("cwd")
			if cwd == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current working directory: %v", err)
				}
				cwd = wd
			}

			cfg, err := config.Load(cwd, debug)
			if err != nil {
				return err
			}
			c.cfg = cfg

			c.format = cfg.OutputFormat
			if cmd.Flags().Changed("output-format") {
				outputFormatStr, _ := cmd.Flags().GetString("output-format")
				c.format = format.OutputFormat(outputFormatStr)
			}
			if !c.format.IsValid() {
				return fmt.Errorf("invalid output format: %s", c.format)
			}

			c.logger = logging.Setup(cmd.ErrOrStderr(), cfg.Debug)
			c.logger.Debug("config loaded", "wd", cwd, "output_format", c.format)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Log every request to stderr")
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Directory to look for a local .watson.json in")
	rootCmd.PersistentFlags().StringP("output-format", "f", string(format.TextFormat), "Output format (text, json, logfmt)")

	rootCmd.AddCommand(
		newAssistantCmd(c),
		newDiscoveryCmd(c),
		newTradeoffCmd(c),
		newConfigureCmd(c),
	)
	return rootCmd
}

// Execute runs the watson command line.
func Execute() {
	ctx := context.Background()
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
