package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	"github.com/bigsister-lab/bigsister/internal/projection"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	reportWindow  string
	reportLimit   int
	reportChannel int64
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.PersistentFlags().StringVar(&reportWindow, "window", "week", "Window descriptor: day, week, month or all")
	reportCmd.PersistentFlags().IntVar(&reportLimit, "limit", projection.DefaultLeaderboardSize, "Leaderboard size")
	reportCmd.PersistentFlags().Int64Var(&reportChannel, "channel", 0, "Channel id for channel reports")
	reportCmd.AddCommand(reportServerCmd, reportLeaderboardCmd, reportModScoreboardCmd, reportConsistencyCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print activity reports from the event store",
}

// withQueries opens the store read side and hands a query service to fn.
func withQueries(fn func(cmd *cobra.Command, svc *projection.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		collab, err := collaborators(cfg)
		if err != nil {
			return err
		}
		return fn(cmd, projection.NewService(store, collab, cfg.Privacy.DeniedChannels))
	}
}

var reportServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Server-wide message totals",
	Args:  cobra.NoArgs,
	RunE: withQueries(func(cmd *cobra.Command, svc *projection.Service) error {
		activity, err := svc.ServerActivity(cmd.Context(), reportWindow)
		if err != nil {
			return err
		}
		renderActivity(cmd.OutOrStdout(), reportWindow, activity)
		return nil
	}),
}

var reportLeaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Most active authors",
	Args:  cobra.NoArgs,
	RunE: withQueries(func(cmd *cobra.Command, svc *projection.Service) error {
		entries, err := svc.Leaderboard(cmd.Context(), reportWindow, reportLimit)
		if err != nil {
			return err
		}
		renderRanking(cmd.OutOrStdout(), "Author", entries)
		return nil
	}),
}

var reportModScoreboardCmd = &cobra.Command{
	Use:   "modscoreboard",
	Short: "Modlogs issued per moderator",
	Args:  cobra.NoArgs,
	RunE: withQueries(func(cmd *cobra.Command, svc *projection.Service) error {
		entries, err := svc.ModScoreboard(cmd.Context(), reportWindow)
		if err != nil {
			return err
		}
		renderRanking(cmd.OutOrStdout(), "Moderator", entries)
		return nil
	}),
}

var reportConsistencyCmd = &cobra.Command{
	Use:   "consistency",
	Short: "Authors above the weekly mean across the last four weeks",
	Args:  cobra.NoArgs,
	RunE: withQueries(func(cmd *cobra.Command, svc *projection.Service) error {
		if reportChannel <= 0 {
			return fmt.Errorf("--channel is required")
		}
		result, err := svc.ConsistencyCohort(cmd.Context(), reportChannel)
		if err != nil {
			return err
		}
		renderConsistency(cmd.OutOrStdout(), result)
		return nil
	}),
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderActivity(w io.Writer, window string, a v1.Activity) {
	table := newTable(w, "Window", "Messages", "Authors")
	table.Append([]string{window, strconv.FormatInt(a.Total, 10), strconv.FormatInt(a.DistinctAuthors, 10)})
	table.Render()
}

func renderRanking(w io.Writer, who string, entries []v1.RankedAuthor) {
	table := newTable(w, "Rank", who, "Count")
	for _, e := range entries {
		table.Append([]string{strconv.Itoa(e.Rank), strconv.FormatInt(e.Author, 10), strconv.FormatInt(e.Count, 10)})
	}
	table.Render()
}

func renderConsistency(w io.Writer, c v1.Consistency) {
	table := newTable(w, "Rank", "Author", "Weeks", "Average", "Week counts")
	for _, s := range c.Standings {
		counts := make([]string, len(s.WeekCounts))
		for i, n := range s.WeekCounts {
			counts[i] = strconv.FormatInt(n, 10)
		}
		table.Append([]string{
			strconv.Itoa(s.Rank),
			strconv.FormatInt(s.Author, 10),
			strconv.Itoa(s.QualifyingWeeks),
			strconv.FormatInt(s.AvgCount, 10),
			strings.Join(counts, ", "),
		})
	}
	table.Render()

	weeks := newTable(w, "Since", "Messages", "Authors", "Floor mean", "Mean")
	for _, wk := range c.Weeks {
		mean := wk.ExactMean.StringFixed(2)
		if wk.Skipped {
			mean = "-"
		}
		weeks.Append([]string{
			wk.Since.Format("2006-01-02"),
			strconv.FormatInt(wk.Total, 10),
			strconv.FormatInt(wk.DistinctAuthors, 10),
			strconv.FormatInt(wk.FloorMean, 10),
			mean,
		})
	}
	weeks.Render()
}
