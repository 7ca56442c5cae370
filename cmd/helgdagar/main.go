// Command helgdagar prints Swedish public holidays and ISO week counts.
//
// Usage:
//
//	helgdagar list --year 2025
//	helgdagar check 2025-06-21 2025-12-24
//	helgdagar weeks --from 2020 --to 2030
//	helgdagar easter --year 2025
//	helgdagar verify --from 2005 --to 2100
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/se"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/veckoplan/internal/calendar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "helgdagar",
		Short:         "Swedish public holidays and ISO weeks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(listCmd(), checkCmd(), weeksCmd(), easterCmd(), verifyCmd())
	return rootCmd
}

// currentYear resolves a zero --year to the current year.
func currentYear(year int) int {
	if year == 0 {
		return time.Now().Year()
	}
	return year
}

func listCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the holidays of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, h := range calendar.Holidays(currentYear(year)) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", h.Date, h.Date.Weekday(), h.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current year)")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check DATE...",
		Short: "Print the holiday name of each date, or - for ordinary days",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, arg := range args {
				d, err := calendar.ParseDate(arg)
				if err != nil {
					return err
				}
				name, ok := calendar.HolidayName(d)
				if !ok {
					name = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\n", d, name)
			}
			return tw.Flush()
		},
	}
}

func weeksCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Print the number of ISO weeks per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := currentYear(from), currentYear(to)
			if from > to {
				return fmt.Errorf("--from %d is after --to %d", from, to)
			}
			out := cmd.OutOrStdout()
			for y := from; y <= to; y++ {
				fmt.Fprintf(out, "%d\t%d\n", y, calendar.WeeksInYear(y))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First year (default current year)")
	cmd.Flags().IntVar(&to, "to", 0, "Last year (default current year)")
	return cmd
}

func easterCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "easter",
		Short: "Print Easter Sunday of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), calendar.EasterSunday(currentYear(year)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current year)")
	return cmd
}

var errMismatch = errors.New("holiday mismatch")

func verifyCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the holiday rules against rickar/cal's Swedish calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from > to {
				return fmt.Errorf("--from %d is after --to %d", from, to)
			}
			return verify(cmd.OutOrStdout(), from, to)
		},
	}

	cmd.Flags().IntVar(&from, "from", 2005, "First year (the reference lists Sveriges nationaldag from 2005)")
	cmd.Flags().IntVar(&to, "to", 2100, "Last year")
	return cmd
}

// swedishReference builds rickar/cal's Swedish calendar. se.Holidays leaves
// out Påskdagen and Pingstdagen since they always fall on a Sunday.
func swedishReference() *cal.BusinessCalendar {
	ref := cal.NewBusinessCalendar()
	ref.AddHoliday(se.Holidays...)
	ref.AddHoliday(se.Paskdagen, se.Pingstdagen)
	return ref
}

// verify reports every holiday the reference calendar does not list. The
// reference also carries eves (Julafton, Midsommarafton), so only this
// direction is checked.
func verify(out io.Writer, from, to int) error {
	ref := swedishReference()

	checked, mismatches := 0, 0
	for y := from; y <= to; y++ {
		for _, h := range calendar.Holidays(y) {
			checked++
			if actual, _, _ := ref.IsHoliday(h.Date.Time()); !actual {
				mismatches++
				fmt.Fprintf(out, "MISMATCH %s %s\n", h.Date, h.Name)
			}
		}
	}

	fmt.Fprintf(out, "checked %d holidays in %d-%d, %d mismatches\n", checked, from, to, mismatches)
	if mismatches > 0 {
		return fmt.Errorf("%w: %d", errMismatch, mismatches)
	}
	return nil
}
