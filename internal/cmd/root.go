package cmd

import (
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// NewRootCommand creates the website command tree. Running it without a
// subcommand starts the server.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "website",
		Short: "OpenAutomate public website",
		Long: `Serves the OpenAutomate marketing website: localized pages, the contact
form, SEO documents and the redirects of authentication paths to the
Orchestrator.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		newServeCommand(),
		newSitemapCommand(),
		newRobotsCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}
