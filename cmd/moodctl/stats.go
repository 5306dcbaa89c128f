package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindful-labs/mood-tracker/internal/mood"
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show mood statistics across all entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(statsCmd)

	var windowFlag int
	avgCmd := &cobra.Command{
		Use:   "avg [DATE]",
		Short: "Show the trailing mood average ending at a date (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format("2006-01-02")
			if len(args) == 1 {
				date = args[0]
			}
			return runAvg(apiFlag, date, windowFlag, os.Stdout)
		},
	}
	avgCmd.Flags().IntVarP(&windowFlag, "window", "w", 7, "Window size in days")
	rootCmd.AddCommand(avgCmd)
}

func runStats(apiURL string, out io.Writer) error {
	var summary struct {
		Count     int         `json:"count"`
		Mean      *float64    `json:"mean"`
		Max       *int        `json:"max"`
		StdDev    *float64    `json:"stdDev"`
		Histogram map[int]int `json:"histogram"`
	}
	resp, err := newClient(apiURL).R().
		SetResult(&summary).
		Get("/api/summary")
	if err != nil {
		return err
	}
	if err := checkOK(resp); err != nil {
		return err
	}

	if summary.Count == 0 {
		fmt.Fprintln(out, "No entries yet.")
		return nil
	}
	fmt.Fprintf(out, "Entries:  %d\n", summary.Count)
	fmt.Fprintf(out, "Mean:     %.1f\n", *summary.Mean)
	fmt.Fprintf(out, "Max:      %d %s\n", *summary.Max, mood.Emoji(*summary.Max))
	if summary.StdDev != nil {
		fmt.Fprintf(out, "Std dev:  %.2f\n", *summary.StdDev)
	}

	moods := make([]int, 0, len(summary.Histogram))
	for m := range summary.Histogram {
		moods = append(moods, m)
	}
	sort.Ints(moods)
	fmt.Fprintln(out, "Histogram:")
	for _, m := range moods {
		n := summary.Histogram[m]
		fmt.Fprintf(out, "  %s %d  %s (%d)\n", mood.Emoji(m), m, strings.Repeat("#", n), n)
	}
	return nil
}

func runAvg(apiURL, date string, window int, out io.Writer) error {
	var got struct {
		EndDate    string   `json:"endDate"`
		WindowDays int      `json:"windowDays"`
		Average    *float64 `json:"average"`
	}
	resp, err := newClient(apiURL).R().
		SetQueryParam("window", fmt.Sprintf("%d", window)).
		SetResult(&got).
		Get("/api/entries/" + date + "/average")
	if err != nil {
		return err
	}
	if err := checkOK(resp); err != nil {
		return err
	}

	if got.Average == nil {
		fmt.Fprintf(out, "No entries in the %d days ending %s.\n", got.WindowDays, got.EndDate)
		return nil
	}
	fmt.Fprintf(out, "%d-day average ending %s: %.1f\n", got.WindowDays, got.EndDate, *got.Average)
	return nil
}
