package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rohankatakam/gitsheet/internal/gitlog"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors [repos...]",
	Short: "List commit authors found in the given repositories",
	Long: `List the authors found across the given repositories, with commit counts
and activity range. The generate command matches authors exactly (name,
case-sensitive), so use this to find the precise string to pass to --author.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var commits []gitlog.Commit
	for _, repoPath := range args {
		repoCommits, err := gitlog.ExtractCommits(ctx, repoPath)
		if err != nil {
			return err
		}
		commits = append(commits, repoCommits...)
	}

	stats := gitlog.CollectAuthors(commits)
	if len(stats) == 0 {
		fmt.Println("No commits found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "AUTHOR\tEMAIL\tCOMMITS\tFIRST\tLAST")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			s.Name, s.Email, s.Commits,
			s.FirstCommit.Format("2006-01-02"),
			s.LastCommit.Format("2006-01-02"))
	}
	return w.Flush()
}
