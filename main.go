package main

import (
	"os"

	"readycleans/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "readycleans",
		Short:         "ReadyCleans booking API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newBlogCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, blog scheduler and worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newBlogCmd() *cobra.Command {
	blog := &cobra.Command{
		Use:   "blog",
		Short: "Blog content tasks",
	}
	blog.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate and store one blog post now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlogGenerate(cmd.Context())
		},
	})
	return blog
}
