package models

import "slices"

// ReportType selects a backend report.
type ReportType string

const (
	ReportAllCustomers ReportType = "ALL_CUSTOMERS"
	ReportAllVehicles  ReportType = "ALL_VEHICLES"
	ReportAllChassis   ReportType = "ALL_CHASSIS"
	ReportAllDrivers   ReportType = "ALL_DRIVERS"
	ReportAllOrders    ReportType = "ALL_ORDERS"
	ReportAllSpj       ReportType = "ALL_SPJ"
)

var ReportTypes = []ReportType{
	ReportAllCustomers, ReportAllVehicles, ReportAllChassis,
	ReportAllDrivers, ReportAllOrders, ReportAllSpj,
}

func (r ReportType) Valid() bool { return slices.Contains(ReportTypes, r) }

// Dated reports whether the report is bounded by a date range.
func (r ReportType) Dated() bool {
	return r == ReportAllOrders || r == ReportAllSpj
}

// ReportQuery is what the user selects before generating a report.
type ReportQuery struct {
	Type     ReportType
	FromDate string
	EndDate  string
}

// Payload is the request body. Dates are sent only for dated reports.
func (q ReportQuery) Payload() map[string]any {
	p := map[string]any{"reportType": q.Type}
	if q.Type.Dated() {
		p["fromDate"] = q.FromDate
		p["endDate"] = q.EndDate
	}
	return p
}

// ReportFormat is an export file format.
type ReportFormat string

const (
	FormatPDF   ReportFormat = "pdf"
	FormatExcel ReportFormat = "excel"
)

// Filename is the download name used for the format.
func (f ReportFormat) Filename() string {
	if f == FormatExcel {
		return "report.xlsx"
	}
	return "report.pdf"
}

// Report is a generated report: rows keyed by column.
type Report struct {
	Rows    []map[string]any
	Columns []string
}
