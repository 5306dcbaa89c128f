package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindful-labs/mood-tracker/internal/mood"
)

type entryPayload struct {
	Date        string   `json:"date"`
	Mood        int      `json:"mood"`
	SleepHours  *float64 `json:"sleepHours,omitempty"`
	Exercise    *string  `json:"exercise,omitempty"`
	DietQuality *string  `json:"dietQuality,omitempty"`
	Journal     string   `json:"journal"`
}

type entryView struct {
	Date        string   `json:"date"`
	Mood        int      `json:"mood"`
	SleepHours  *float64 `json:"sleepHours"`
	Exercise    *string  `json:"exercise"`
	DietQuality *string  `json:"dietQuality"`
	Journal     string   `json:"journal"`
	Timestamp   string   `json:"timestamp"`
}

func init() {
	var (
		dateFlag     string
		moodFlag     int
		sleepFlag    float64
		exerciseFlag string
		dietFlag     string
		journalFlag  string
	)
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Record (or replace) the entry for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := entryPayload{
				Date:    dateFlag,
				Mood:    moodFlag,
				Journal: journalFlag,
			}
			if p.Date == "" {
				p.Date = time.Now().Format("2006-01-02")
			}
			if cmd.Flags().Changed("sleep") {
				p.SleepHours = &sleepFlag
			}
			if exerciseFlag != "" {
				p.Exercise = &exerciseFlag
			}
			if dietFlag != "" {
				p.DietQuality = &dietFlag
			}
			return runLog(apiFlag, p, os.Stdout)
		},
	}
	logCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Entry date YYYY-MM-DD (defaults to today)")
	logCmd.Flags().IntVarP(&moodFlag, "mood", "m", 0, "Mood rating 1-5 (required)")
	logCmd.Flags().Float64VarP(&sleepFlag, "sleep", "s", 0, "Hours slept")
	logCmd.Flags().StringVarP(&exerciseFlag, "exercise", "e", "", "Exercise level")
	logCmd.Flags().StringVarP(&dietFlag, "diet", "q", "", "Diet quality")
	logCmd.Flags().StringVarP(&journalFlag, "journal", "j", "", "Journal text")
	_ = logCmd.MarkFlagRequired("mood")
	rootCmd.AddCommand(logCmd)

	showCmd := &cobra.Command{
		Use:   "show DATE",
		Short: "Show the entry for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(apiFlag, args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(showCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(listCmd)
}

func runLog(apiURL string, p entryPayload, out io.Writer) error {
	var created struct {
		Entry      entryView `json:"entry"`
		Suggestion string    `json:"suggestion"`
	}
	resp, err := newClient(apiURL).R().
		SetBody(&p).
		SetResult(&created).
		Post("/api/entries")
	if err != nil {
		return err
	}
	if err := checkStatus(resp, http.StatusCreated); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s %s %s\n", created.Entry.Date, mood.Emoji(created.Entry.Mood), mood.Label(created.Entry.Mood))
	fmt.Fprintln(out, created.Suggestion)
	return nil
}

func runShow(apiURL, date string, out io.Writer) error {
	var e entryView
	resp, err := newClient(apiURL).R().
		SetResult(&e).
		Get("/api/entries/" + date)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("no entry for %s", date)
	}
	if err := checkOK(resp); err != nil {
		return err
	}
	printEntry(out, e)
	return nil
}

func runList(apiURL string, out io.Writer) error {
	var listed struct {
		Entries []entryView `json:"entries"`
		Count   int         `json:"count"`
	}
	resp, err := newClient(apiURL).R().
		SetResult(&listed).
		Get("/api/entries")
	if err != nil {
		return err
	}
	if err := checkOK(resp); err != nil {
		return err
	}
	if listed.Count == 0 {
		fmt.Fprintln(out, "No entries yet.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tMOOD\tSLEEP\tEXERCISE\tDIET\tJOURNAL")
	for _, e := range listed.Entries {
		fmt.Fprintf(tw, "%s\t%s %d\t%s\t%s\t%s\t%s\n",
			e.Date, mood.Emoji(e.Mood), e.Mood,
			floatOrDash(e.SleepHours), strOrDash(e.Exercise), strOrDash(e.DietQuality), e.Journal)
	}
	return tw.Flush()
}

func printEntry(out io.Writer, e entryView) {
	fmt.Fprintf(out, "%s %s %s\n", e.Date, mood.Emoji(e.Mood), mood.Label(e.Mood))
	fmt.Fprintf(out, "  sleep:    %s\n", floatOrDash(e.SleepHours))
	fmt.Fprintf(out, "  exercise: %s\n", strOrDash(e.Exercise))
	fmt.Fprintf(out, "  diet:     %s\n", strOrDash(e.DietQuality))
	if e.Journal != "" {
		fmt.Fprintf(out, "  journal:  %s\n", e.Journal)
	}
}

func floatOrDash(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *f)
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
