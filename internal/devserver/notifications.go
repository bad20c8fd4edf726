package devserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/sitrack/internal/devserver/records"
	"github.com/gin-gonic/gin"
)

// expiryWindow is how far ahead document dates raise a notification.
const expiryWindow = 30 * 24 * time.Hour

// documentRule is one dated fleet document watched for expiry.
type documentRule struct {
	collection string
	dateField  string
	nameField  string
	category   string
	title      string
	refType    string
	redirect   string
}

var documentRules = []documentRule{
	{"trucks", "vehicleSTNKDate", "vehiclePlateNo", "VEHICLE_STNK_EXPIRY", "STNK kendaraan segera habis", "VEHICLE", "/truck"},
	{"trucks", "vehicleKIRDate", "vehiclePlateNo", "VEHICLE_KIR_EXPIRY", "KIR kendaraan segera habis", "VEHICLE", "/truck"},
	{"chassis", "chassisKIRDate", "chassisNumber", "CHASSIS_KIR_EXPIRY", "KIR chassis segera habis", "CHASSIS", "/chassis"},
	{"drivers", "driver_SIM_Date", "driverName", "DRIVER_SIM_EXPIRY", "SIM sopir segera habis", "DRIVER", "/sopir"},
}

func (h *handlers) notifications() *records.Collection {
	return h.store.Collection("notifications", "id", true)
}

func (h *handlers) listNotifications(c *gin.Context) {
	respond(c, http.StatusOK, "Data ditemukan", h.notifications().List())
}

func (h *handlers) notificationsByCategory(c *gin.Context) {
	category := c.Param("category")
	list := h.notifications().Filter(func(r records.Record) bool {
		return r["category"] == category
	})
	respond(c, http.StatusOK, "Data ditemukan", list)
}

func (h *handlers) markNotificationRead(c *gin.Context) {
	rec, ok := h.notifications().Update(c.Param("id"), records.Record{"isRead": true})
	if !ok {
		fail(c, http.StatusNotFound, "Notifikasi tidak ditemukan")
		return
	}
	respond(c, http.StatusOK, "Notifikasi ditandai telah dibaca", rec)
}

func (h *handlers) bulkDeleteNotifications(c *gin.Context) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		fail(c, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprint(id)
	}
	removed := h.notifications().Delete(keys...)
	respond(c, http.StatusOK, fmt.Sprintf("%d notifikasi dihapus", removed), gin.H{"deleted": removed})
}

func (h *handlers) triggerCheck(c *gin.Context) {
	created := h.checkDocuments()
	respond(c, http.StatusOK, "Pengecekan dokumen selesai", gin.H{"created": created})
}

// checkDocuments raises one active notification per fleet document that
// expires within expiryWindow. Documents already notified are skipped.
func (h *handlers) checkDocuments() int {
	now := h.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	inbox := h.notifications()

	created := 0
	for _, rule := range documentRules {
		res := lookup(rule.collection)
		coll := res.coll(h.store)
		for _, doc := range coll.List() {
			expiry, ok := parseDay(doc[rule.dateField])
			if !ok || expiry.Sub(today) > expiryWindow {
				continue
			}
			ref := coll.Key(doc)
			if h.notified(inbox, rule.category, ref) {
				continue
			}

			days := int(expiry.Sub(today).Hours() / 24)
			inbox.Insert(records.Record{
				"title":            rule.title,
				"message":          expiryMessage(rule, doc, days),
				"category":         rule.category,
				"referenceId":      ref,
				"referenceType":    rule.refType,
				"expiryDate":       expiry.Format("2006-01-02"),
				"isRead":           false,
				"isActive":         true,
				"daysRemaining":    days,
				"redirectEndpoint": rule.redirect,
				"createdDate":      now.Format(timestampLayout),
			})
			created++
		}
	}
	return created
}

func (h *handlers) notified(inbox *records.Collection, category, ref string) bool {
	return len(inbox.Filter(func(r records.Record) bool {
		return r["category"] == category && r["referenceId"] == ref && r["isActive"] == true
	})) > 0
}

func expiryMessage(rule documentRule, doc records.Record, days int) string {
	name := fmt.Sprint(doc[rule.nameField])
	if days < 0 {
		return fmt.Sprintf("%s: dokumen sudah habis %d hari yang lalu", name, -days)
	}
	return fmt.Sprintf("%s: dokumen habis dalam %d hari", name, days)
}

// parseDay reads the date part of a stored date string.
func parseDay(v any) (time.Time, bool) {
	s, ok := v.(string)
	s = strings.TrimSpace(s)
	if !ok || len(s) < len("2006-01-02") {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
