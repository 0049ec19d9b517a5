package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raffibedo/DirCraft/internal/config"
	"github.com/raffibedo/DirCraft/internal/ignore"
)

// Overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

type globalOptions struct {
	root string
	skip []string
	yes  bool
}

// settings are the effective options after merging flags with the
// workspace config file. Flags win.
type settings struct {
	root    string
	yes     bool
	matcher *ignore.Matcher
}

func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "dircraft",
		Short: "Create directory structures from ASCII tree diagrams",
		Long: `DirCraft turns tree-style diagrams (the kind produced by the tree
command or typed by hand) into real directories and empty files.

Directories are marked by a trailing slash on their name; text after
'#' on a line is kept as a comment for that path.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.root, "root", "r", "", "Directory to create the structure under (defaults to the current directory)")
	flags.StringArrayVar(&opts.skip, "skip", nil, "Gitignore-style pattern for paths to skip (repeatable)")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")
	flags.AddGoFlagSet(goflag.CommandLine)

	rootCmd.AddCommand(NewCmdCreate(opts))
	rootCmd.AddCommand(NewCmdPlan(opts))

	return rootCmd
}

func (g *globalOptions) resolve() (settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return settings{}, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return settings{}, err
	}

	root := g.root
	if root == "" {
		root = cfg.Root
	}
	if root == "" {
		root = "."
	}

	patterns := append(append([]string{}, cfg.Skip...), g.skip...)
	matcher, err := ignore.Compile(patterns)
	if err != nil {
		return settings{}, err
	}

	return settings{
		root:    root,
		yes:     g.yes || cfg.Yes,
		matcher: matcher,
	}, nil
}
