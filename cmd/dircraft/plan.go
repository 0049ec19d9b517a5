package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/raffibedo/DirCraft/internal/app"
	"github.com/raffibedo/DirCraft/internal/tree"
)

func NewCmdPlan(g *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Show what create would do, without touching the filesystem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := g.resolve()
			if err != nil {
				return err
			}

			input, closeInput, _, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeInput()

			scaffolder := app.Scaffolder{}
			blueprint, err := scaffolder.Plan(input, set.matcher)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(blueprint.Paths) == 0 {
				fmt.Fprintln(out, "Nothing to create.")
				return nil
			}

			node := tree.Build(blueprint.Paths, blueprint.Comments)
			if asJSON {
				payload, err := json.MarshalIndent(node, "", "  ")
				if err != nil {
					return fmt.Errorf("encode tree: %w", err)
				}
				fmt.Fprintln(out, string(payload))
				return nil
			}

			tree.Render(out, node)
			fmt.Fprintln(out)
			writeSummaryTable(out, blueprint)
			fmt.Fprintf(out, "\n%d directories, %d files under %s\n",
				len(blueprint.Directories), len(blueprint.Files), set.root)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as a JSON tree")
	return cmd
}

func writeSummaryTable(out io.Writer, blueprint app.Blueprint) {
	rows := make([][]string, 0, len(blueprint.Directories)+len(blueprint.Files))
	for _, dir := range blueprint.Directories {
		rows = append(rows, []string{"dir", dir, blueprint.Comments[dir]})
	}
	for _, file := range blueprint.Files {
		rows = append(rows, []string{"file", file, blueprint.Comments[file]})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Type", "Path", "Comment"})
	table.AppendBulk(rows)
	table.Render()
}
