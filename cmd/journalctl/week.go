package main

import (
	"fmt"
	"io"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/week"
	"github.com/spf13/cobra"
)

func weekCmd() *cobra.Command {
	var tz string
	cmd := &cobra.Command{
		Use:   "week [YYYY-MM-DD]",
		Short: "Show the week containing a date (default today) and when it locks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeek(week.NewCalculator(), tz, args, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&tz, "tz", "t", common.DefaultTimezone, "IANA timezone")
	return cmd
}

func runWeek(calendar *week.Calculator, tz string, args []string, out io.Writer) error {
	var start civil.Date
	if len(args) == 1 {
		d, err := civil.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrInvalidArgument, err)
		}
		start = week.Start(d)
	} else {
		var err error
		if start, err = calendar.CurrentWeekStart(tz); err != nil {
			return err
		}
	}

	locksAt, err := week.LockInstant(start, tz)
	if err != nil {
		return err
	}
	locked, err := calendar.IsLocked(start, tz)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "week start: %s\nlocks at:   %s\nlocked:     %t\n",
		start, locksAt.Format("2006-01-02 15:04 MST"), locked)
	return nil
}
