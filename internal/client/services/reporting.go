package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/dmitrijs2005/sitrack/internal/client/client"
	"github.com/dmitrijs2005/sitrack/internal/client/export"
	"github.com/dmitrijs2005/sitrack/internal/client/models"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
	"github.com/dmitrijs2005/sitrack/internal/common"
	"github.com/dmitrijs2005/sitrack/internal/logging"
)

var ErrInvalidReport = errors.New("invalid report type")

// Reporting generates tabular reports and exports them as files.
type Reporting struct {
	deps store.Deps
	sink export.Sink
	log  logging.Logger

	mu      sync.Mutex
	last    models.Report
	lastErr error
}

func NewReporting(deps store.Deps, sink export.Sink) *Reporting {
	if deps.Notifier == nil {
		deps.Notifier = store.Discard
	}
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}
	return &Reporting{deps: deps, sink: sink, log: deps.Log.With("component", "reporting")}
}

// Last returns the most recent generated report, empty after a failure.
func (r *Reporting) Last() models.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.Report{Rows: slices.Clone(r.last.Rows), Columns: slices.Clone(r.last.Columns)}
}

func (r *Reporting) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *Reporting) fail(ctx context.Context, msg string, err error) string {
	var apiErr *client.APIError
	text := fmt.Sprintf("%s: %v", msg, err)
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		text = apiErr.Message
	}
	r.log.Warn(ctx, msg, "error", err)
	r.deps.Notifier.Error(text)
	return text
}

// Generate runs q on the backend. On failure the previous report is
// cleared.
func (r *Reporting) Generate(ctx context.Context, q models.ReportQuery) store.Result[models.Report] {
	report, err := r.generate(ctx, q)

	r.mu.Lock()
	r.last, r.lastErr = report, err
	r.mu.Unlock()

	if err != nil {
		return store.Result[models.Report]{Err: err, Message: r.fail(ctx, "Gagal mengambil data report", err)}
	}
	return store.Result[models.Report]{OK: true, Value: report}
}

func (r *Reporting) generate(ctx context.Context, q models.ReportQuery) (models.Report, error) {
	if !q.Type.Valid() {
		return models.Report{}, fmt.Errorf("%w: %q", ErrInvalidReport, q.Type)
	}

	env, err := r.deps.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/api/reports/generate",
		Body:   q.Payload(),
	})
	if err != nil {
		return models.Report{}, err
	}

	rows := []map[string]any{}
	if env.HasData() {
		if err := json.Unmarshal(env.Data, &rows); err != nil {
			return models.Report{}, fmt.Errorf("%w: %v", common.ErrBadResponse, err)
		}
	}
	columns := env.Columns
	if columns == nil {
		columns = []string{}
	}
	return models.Report{Rows: rows, Columns: columns}, nil
}

// Export downloads q rendered as format and hands the file to the sink.
// The returned value is the sink location.
func (r *Reporting) Export(ctx context.Context, q models.ReportQuery, format models.ReportFormat) store.Result[string] {
	loc, err := r.export(ctx, q, format)
	if err != nil {
		return store.Result[string]{Err: err, Message: r.fail(ctx, "Gagal export report", err)}
	}

	msg := fmt.Sprintf("Report tersimpan di %s", loc)
	r.deps.Notifier.Success(msg)
	return store.Result[string]{OK: true, Value: loc, Message: msg}
}

func (r *Reporting) export(ctx context.Context, q models.ReportQuery, format models.ReportFormat) (string, error) {
	if !q.Type.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidReport, q.Type)
	}
	if format != models.FormatPDF && format != models.FormatExcel {
		return "", fmt.Errorf("unsupported export format %q", format)
	}
	if r.sink == nil {
		return "", errors.New("no export destination configured")
	}

	blob, err := r.deps.Client.Download(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/api/reports/export/" + string(format),
		Body:   q.Payload(),
		Token:  r.deps.Token(),
	})
	if err != nil {
		return "", err
	}

	return r.sink.Put(ctx, format.Filename(), blob.ContentType, blob.Data)
}
