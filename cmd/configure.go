package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watson-developer-cloud/watson-go/internal/config"
	"github.com/watson-developer-cloud/watson-go/internal/format"
)

func newConfigureCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure <service>",
		Short: "Store the URL and credentials of a service in ~/.watson.json",
		Long: `Store the URL and credentials of a service in ~/.watson.json.
The service is the credentials name: conversation, discovery or
tradeoff_analytics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			changed := false
			for _, f := range []string{"url", "apikey", "bearer-token", "api-version"} {
				changed = changed || flags.Changed(f)
			}
			if !changed {
				return errors.New("nothing to store: pass --url, --apikey, --bearer-token or --api-version")
			}
			name := strings.ToLower(args[0])
			svc := c.cfg.Services[name]
			if flags.Changed("url") {
				svc.URL, _ = flags.GetString("url")
			}
			if flags.Changed("apikey") {
				svc.APIKey, _ = flags.GetString("apikey")
				svc.BearerToken = ""
			}
			if flags.Changed("bearer-token") {
				svc.BearerToken, _ = flags.GetString("bearer-token")
				svc.APIKey = ""
			}
			if flags.Changed("api-version") {
				svc.Version, _ = flags.GetString("api-version")
			}
			if err := config.SetService(name, svc); err != nil {
				return err
			}

			auth := "sdk default"
			switch {
			case svc.APIKey != "":
				auth = "iam"
			case svc.BearerToken != "":
				auth = "bearerToken"
			}
			tbl := format.Table{Columns: []string{"service", "url", "auth", "version"}}
			tbl.Append(name, svc.URL, auth, svc.Version)
			return c.write(cmd, "", tbl)
		},
	}
	cmd.Flags().String("url", "", "Service instance URL")
	cmd.Flags().String("apikey", "", "IBM Cloud API key")
	cmd.Flags().String("bearer-token", "", "Bearer token")
	cmd.Flags().String("api-version", "", "API version date")
	cmd.MarkFlagsMutuallyExclusive("apikey", "bearer-token")
	return cmd
}
