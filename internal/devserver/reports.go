package devserver

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/sitrack/internal/devserver/records"
	"github.com/gin-gonic/gin"
)

type reportDef struct {
	collection string
	columns    []string
	// dateField bounds the rows by the requested range when set.
	dateField string
}

var reportDefs = map[string]reportDef{
	"ALL_CUSTOMERS": {collection: "customers",
		columns: []string{"id", "name", "address", "contractNo", "cityOrigin", "cityDestination", "commodity"}},
	"ALL_VEHICLES": {collection: "trucks",
		columns: []string{"vehicleId", "vehiclePlateNo", "vehicleBrand", "vehicleYear", "vehicleSTNKDate", "vehicleKIRDate"}},
	"ALL_CHASSIS": {collection: "chassis",
		columns: []string{"chassisId", "chassisNumber", "chassisSize", "chassisType", "chassisKIRDate"}},
	"ALL_DRIVERS": {collection: "drivers",
		columns: []string{"driverId", "driverName", "driverContact", "driver_SIM_No", "driver_SIM_Date"}},
	"ALL_ORDERS": {collection: "orders", dateField: "orderDate",
		columns: []string{"orderId", "orderDate", "customerId", "moveType", "orderStatus"}},
	"ALL_SPJ": {collection: "spj", dateField: "dateOut",
		columns: []string{"id", "orderId", "vehicleId", "driverId", "dateOut", "dateIn", "status"}},
}

type reportRequest struct {
	ReportType string `json:"reportType" binding:"required"`
	FromDate   string `json:"fromDate"`
	EndDate    string `json:"endDate"`
}

type reportFormat struct {
	contentType string
	filename    string
	render      func(columns []string, rows []records.Record) ([]byte, error)
}

var reportFormats = map[string]reportFormat{
	"pdf": {
		contentType: "application/pdf",
		filename:    "report.pdf",
		render:      renderText,
	},
	"excel": {
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		filename:    "report.xlsx",
		render:      renderCSV,
	},
}

// buildReport resolves req into its columns and projected rows. The error
// is the message for a 400 answer.
func (h *handlers) buildReport(req reportRequest) ([]string, []records.Record, error) {
	def, ok := reportDefs[req.ReportType]
	if !ok {
		return nil, nil, fmt.Errorf("Tipe report tidak dikenal: %s", req.ReportType)
	}

	keep := func(records.Record) bool { return true }
	if def.dateField != "" {
		from, okFrom := parseDay(req.FromDate)
		end, okEnd := parseDay(req.EndDate)
		if !okFrom || !okEnd {
			return nil, nil, errors.New("fromDate dan endDate wajib diisi")
		}
		keep = func(r records.Record) bool {
			day, ok := parseDay(r[def.dateField])
			return ok && !day.Before(from) && !day.After(end)
		}
	}

	src := lookup(def.collection).coll(h.store).Filter(keep)
	rows := make([]records.Record, len(src))
	for i, r := range src {
		row := records.Record{}
		for _, col := range def.columns {
			row[col] = r[col]
		}
		rows[i] = row
	}
	return def.columns, rows, nil
}

func (h *handlers) generateReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "reportType wajib diisi")
		return
	}
	columns, rows, err := h.buildReport(req)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, envelope{
		Status:    http.StatusOK,
		Message:   "Report berhasil dibuat",
		Timestamp: time.Now().Format(timestampLayout),
		Data:      rows,
		Columns:   columns,
	})
}

func (h *handlers) exportReport(c *gin.Context) {
	format, ok := reportFormats[c.Param("format")]
	if !ok {
		fail(c, http.StatusBadRequest, "Format tidak didukung")
		return
	}
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "reportType wajib diisi")
		return
	}
	columns, rows, err := h.buildReport(req)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	body, err := format.render(columns, rows)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Gagal membuat file report")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.filename))
	c.Data(http.StatusOK, format.contentType, body)
}

func cell(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}

// renderText lays the report out as an aligned plain-text table.
func renderText(columns []string, rows []records.Record) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = cell(r[col])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCSV(columns []string, rows []records.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = cell(r[col])
		}
		if err := w.Write(cells); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
