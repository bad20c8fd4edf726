package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/sitrack/internal/client/models"
)

const reportsPath = "/reports"

func reportQuery(args []string) (models.ReportQuery, error) {
	q := models.ReportQuery{Type: models.ReportType(strings.ToUpper(args[0]))}
	if !q.Type.Valid() {
		return q, fmt.Errorf("unknown report %q (one of %v)", args[0], models.ReportTypes)
	}
	if q.Type.Dated() {
		if len(args) < 3 {
			return q, fmt.Errorf("%w: %s needs <from> <end> dates", errUsage, q.Type)
		}
		q.FromDate, q.EndDate = args[1], args[2]
	}
	return q, nil
}

// Report generates a report and prints it as a table:
//
//	report <TYPE> [from] [end]
func (a *App) Report(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: report <TYPE> [from] [end]", errUsage)
	}
	if !a.guard(reportsPath) {
		return nil
	}
	q, err := reportQuery(args)
	if err != nil {
		return err
	}

	res := a.registry.Reporting.Generate(ctx, q)
	if !res.OK {
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(res.Value.Columns, "\t"))
	for _, row := range res.Value.Rows {
		cells := make([]string, len(res.Value.Columns))
		for i, c := range res.Value.Columns {
			if v, ok := row[c]; ok && v != nil {
				cells[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "%d rows\n", len(res.Value.Rows))
	return nil
}

// Export downloads a rendered report to the configured destination:
//
//	export <TYPE> <pdf|excel> [from] [end]
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: export <TYPE> <pdf|excel> [from] [end]", errUsage)
	}
	if !a.guard(reportsPath) {
		return nil
	}
	q, err := reportQuery(append([]string{args[0]}, args[2:]...))
	if err != nil {
		return err
	}

	a.registry.Reporting.Export(ctx, q, models.ReportFormat(strings.ToLower(args[1])))
	return nil
}
