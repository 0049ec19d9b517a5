package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/raffibedo/DirCraft/internal/adapters/fs"
	"github.com/raffibedo/DirCraft/internal/app"
)

func NewCmdCreate(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [file]",
		Short: "Create the directories and files described by a diagram",
		Long: `Create reads a tree diagram from a file ('-' or no argument for
stdin) and materializes it under the destination root. Directories are
created first, shallowest to deepest, then empty files; existing files
are truncated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := g.resolve()
			if err != nil {
				return err
			}

			input, closeInput, fromStdin, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeInput()

			scaffolder := app.Scaffolder{FS: fs.OSFS{}}
			blueprint, err := scaffolder.Plan(input, set.matcher)
			if err != nil {
				return err
			}
			if len(blueprint.Paths) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to create.")
				return nil
			}

			// The prompt would race the diagram for stdin, so piped
			// input implies confirmation.
			if !set.yes && !fromStdin {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
					len(blueprint.Directories), len(blueprint.Files), set.root)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			summary, err := scaffolder.Apply(cmd.Context(), blueprint, set.root)
			if err != nil {
				return err
			}
			klog.Infof("created %d directories and %d files under %s in %s",
				summary.Directories, summary.Files, set.root,
				summary.Elapsed.Round(time.Millisecond))
			return nil
		},
	}
	return cmd
}
