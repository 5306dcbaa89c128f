package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	calCmd := &cobra.Command{
		Use:   "cal [YEAR MONTH]",
		Short: "Show the mood calendar for a month (defaults to the current month)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := now.Year(), int(now.Month())
			if len(args) == 2 {
				var err error
				if year, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				if month, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid month %q", args[1])
				}
			} else if len(args) == 1 {
				return fmt.Errorf("provide both YEAR and MONTH")
			}
			return runCal(apiFlag, year, month, os.Stdout)
		},
	}
	rootCmd.AddCommand(calCmd)
}

func runCal(apiURL string, year, month int, out io.Writer) error {
	var grid struct {
		Year  int    `json:"year"`
		Month int    `json:"month"`
		Name  string `json:"name"`
		Weeks [][]struct {
			Day   int    `json:"day"`
			Emoji string `json:"emoji"`
			Mood  *int   `json:"mood"`
		} `json:"weeks"`
	}
	resp, err := newClient(apiURL).R().
		SetResult(&grid).
		Get(fmt.Sprintf("/api/calendar/%d/%d", year, month))
	if err != nil {
		return err
	}
	if err := checkOK(resp); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %d\n", grid.Name, grid.Year)
	fmt.Fprintln(out, "Mon   Tue   Wed   Thu   Fri   Sat   Sun")
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Day == 0 {
				fmt.Fprint(out, "      ")
				continue
			}
			marker := " "
			if cell.Mood != nil {
				marker = cell.Emoji
			}
			fmt.Fprintf(out, "%2d %s ", cell.Day, marker)
		}
		fmt.Fprintln(out)
	}
	return nil
}
