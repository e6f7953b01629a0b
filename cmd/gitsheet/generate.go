package main

import (
	"context"

	"github.com/rohankatakam/gitsheet/internal/export"
	"github.com/rohankatakam/gitsheet/internal/gitlog"
	"github.com/rohankatakam/gitsheet/internal/models"
	"github.com/rohankatakam/gitsheet/internal/timesheet"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [repos...]",
	Short: "Generate a CSV timesheet from repository commit history",
	Long: `Generate a CSV timesheet from the commit history of the given repositories.

Commits from all branches are collected, filtered down to one author, and
each one gets a duration estimate capped at the elapsed time since the
previous commit across all the scanned repositories.

Examples:
  # Timesheet for one repository
  gitsheet generate --author "John Doe" -o sheet.csv ~/src/backend

  # Several repositories sharpen the estimates
  gitsheet generate --author "John Doe" -o sheet.csv ~/src/backend ~/src/frontend

  # Keep only the ticket reference out of each commit message
  gitsheet generate --author "John Doe" --title-exp '^(JIRA-\d+)' -o sheet.csv ~/src/backend`,
	Args: cobra.ArbitraryArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("author", "", "Author to keep (exact match)")
	generateCmd.Flags().StringP("output", "o", "", "Output CSV file")
	generateCmd.Flags().Float64("start-up-time", 0, "How long it takes to produce the first commit of a session, in seconds (default 3h)")
	generateCmd.Flags().StringArray("title-exp", nil, "Regular expression for the title; only the first group is kept (repeatable, first match wins)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Flags override config file and environment values
	if author, _ := cmd.Flags().GetString("author"); author != "" {
		cfg.Author = author
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output = output
	}
	if cmd.Flags().Changed("start-up-time") {
		cfg.StartUpTime, _ = cmd.Flags().GetFloat64("start-up-time")
	}
	if exps, _ := cmd.Flags().GetStringArray("title-exp"); len(exps) > 0 {
		cfg.TitleExps = exps
	}

	if vr := cfg.Validate(args); vr.HasErrors() {
		return vr
	}

	var entries []models.LogEntry
	for _, repoPath := range args {
		logger.WithField("repo", repoPath).Debug("Reading commit history")

		commits, err := gitlog.ExtractCommits(ctx, repoPath)
		if err != nil {
			return err
		}

		logger.WithField("repo", repoPath).Debugf("Found %d commits", len(commits))
		entries = append(entries, gitlog.Entries(commits, cfg.StartUpTime, repoPath)...)
	}

	logs, err := timesheet.Build(entries, cfg.Author, cfg.TitleExps)
	if err != nil {
		return err
	}

	if err := export.WriteFile(cfg.Output, logs); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"entries": len(logs),
		"output":  cfg.Output,
	}).Info("Timesheet written")

	return nil
}
