package devserver

import (
	"net/http"

	"github.com/dmitrijs2005/sitrack/internal/devserver/records"
	"github.com/gin-gonic/gin"
)

// Status values shared by the approval workflows.
const (
	statusApproved = 1
	statusDone     = 2

	orderStatusDone = 3

	requestApproved = 1
	requestRejected = 2
)

// intField reads a JSON number stored in r, whatever its Go type.
func intField(r records.Record, key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

type orderApproval struct {
	OrderID           string `json:"orderId" binding:"required"`
	RemarksSupervisor string `json:"remarksSupervisor"`
	OrderStatus       int    `json:"orderStatus"`
}

func (h *handlers) approveOrder(c *gin.Context) {
	var req orderApproval
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "orderId wajib diisi")
		return
	}
	username, _ := identity(c)
	rec, ok := lookup("orders").coll(h.store).Update(req.OrderID, records.Record{
		"orderStatus":       req.OrderStatus,
		"remarksSupervisor": req.RemarksSupervisor,
		"approvedBy":        username,
		"approvedDate":      h.timestamp(),
	})
	if !ok {
		fail(c, http.StatusNotFound, "Order tidak ditemukan")
		return
	}
	respond(c, http.StatusOK, "Order berhasil di-approve", rec)
}

func (h *handlers) doneOrder(c *gin.Context) {
	rec, ok := lookup("orders").coll(h.store).Update(c.Param("id"), records.Record{
		"orderStatus": orderStatusDone,
		"updatedDate": h.timestamp(),
	})
	if !ok {
		fail(c, http.StatusNotFound, "Order tidak ditemukan")
		return
	}
	respond(c, http.StatusOK, "Order selesai", rec)
}

// vehicleOut lists shipment orders whose vehicle has not come back.
func (h *handlers) vehicleOut(c *gin.Context) {
	list := lookup("spj").coll(h.store).Filter(func(r records.Record) bool {
		return intField(r, "status") != statusDone
	})
	respond(c, http.StatusOK, "Data ditemukan", list)
}

// vehicleIn lists approved shipment orders waiting at the gate.
func (h *handlers) vehicleIn(c *gin.Context) {
	list := lookup("spj").coll(h.store).Filter(func(r records.Record) bool {
		return intField(r, "status") == statusApproved
	})
	respond(c, http.StatusOK, "Data ditemukan", list)
}

type spjApproval struct {
	SpjID             string `json:"spjId" binding:"required"`
	Status            int    `json:"status"`
	RemarksSupervisor string `json:"remarksSupervisor"`
}

func (h *handlers) approveSpj(c *gin.Context) {
	var req spjApproval
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "spjId wajib diisi")
		return
	}
	username, _ := identity(c)
	rec, ok := lookup("spj").coll(h.store).Update(req.SpjID, records.Record{
		"status":            req.Status,
		"remarksSupervisor": req.RemarksSupervisor,
		"approvedBy":        username,
		"approvedDate":      h.timestamp(),
	})
	if !ok {
		fail(c, http.StatusNotFound, "SPJ tidak ditemukan")
		return
	}
	respond(c, http.StatusOK, "Approval SPJ berhasil", rec)
}

func (h *handlers) doneSpj(c *gin.Context) {
	spj := lookup("spj").coll(h.store)
	cur, ok := spj.Get(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, "SPJ tidak ditemukan")
		return
	}
	if intField(cur, "status") != statusApproved {
		fail(c, http.StatusConflict, "SPJ belum di-approve")
		return
	}
	rec, _ := spj.Update(c.Param("id"), records.Record{
		"status":       statusDone,
		"actualDateIn": h.timestamp(),
	})
	respond(c, http.StatusOK, "SPJ berhasil diselesaikan", rec)
}

type requestAssetApproval struct {
	Status        int    `json:"status"`
	RequestRemark string `json:"requestRemark"`
}

func (h *handlers) approveRequestAsset(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		fail(c, http.StatusBadRequest, "id wajib diisi")
		return
	}
	var req requestAssetApproval
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Payload tidak valid")
		return
	}
	if req.Status != requestApproved && req.Status != requestRejected {
		fail(c, http.StatusBadRequest, "Status tidak valid")
		return
	}
	username, _ := identity(c)
	rec, ok := lookup("request-assets").coll(h.store).Update(id, records.Record{
		"status":        req.Status,
		"requestRemark": req.RequestRemark,
		"approvalBy":    username,
		"approvalDate":  h.timestamp(),
	})
	if !ok {
		fail(c, http.StatusNotFound, "Request Asset tidak ditemukan")
		return
	}
	respond(c, http.StatusOK, "Status Request Asset berhasil diperbarui", rec)
}
