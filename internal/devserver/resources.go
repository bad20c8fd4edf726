package devserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sitrack/internal/devserver/records"
	"github.com/gin-gonic/gin"
)

// idLocation says where a route carries the record identifier.
type idLocation int

const (
	noRoute idLocation = iota
	inQuery            // segment?id=
	inPath             // segment/:id
)

type locator struct {
	at      idLocation
	segment string
}

func query(segment string) locator { return locator{at: inQuery, segment: segment} }
func path(segment string) locator  { return locator{at: inPath, segment: segment} }

// resource describes one entity family of the backend.
type resource struct {
	collection string
	label      string
	base       string
	idField    string
	numeric    bool

	detail locator
	update locator
	delete bool

	// returnID answers a create with {idField: id} instead of the record.
	returnID bool
	// stamp is the audit field prefix: "inserted" or "created".
	stamp string
}

var resources = []resource{
	{collection: "trucks", label: "Truck", base: "/api/truck", idField: "vehicleId",
		detail: query("/detail"), update: query("/update"), returnID: true, stamp: "inserted"},
	{collection: "chassis", label: "Chassis", base: "/api/chassis", idField: "chassisId",
		detail: query("/detail"), update: query("/update"), returnID: true, stamp: "inserted"},
	{collection: "customers", label: "Customer", base: "/api/customer", idField: "id",
		detail: path("/detail"), update: path("/update"), delete: true, stamp: "inserted"},
	{collection: "drivers", label: "Sopir", base: "/api/sopir", idField: "driverId",
		detail: path("/detail"), update: path("/update"), stamp: "created"},
	{collection: "assets", label: "Asset", base: "/api/asset", idField: "assetId",
		detail: path(""), update: path("/update"), returnID: true, stamp: "created"},
	{collection: "request-assets", label: "Request Asset", base: "/api/request-assets", idField: "requestAssetId",
		detail: query("/detail"), update: query("/edit"), returnID: true, stamp: "created"},
	{collection: "orders", label: "Order", base: "/api/order", idField: "orderId",
		detail: query("/detail"), update: path("/update"), returnID: true, stamp: "created"},
	{collection: "spj", label: "SPJ", base: "/api/spj", idField: "id",
		detail: path("/detail"), stamp: "inserted"},
	{collection: "komisi", label: "Komisi", base: "/api/komisi", idField: "komisiId",
		detail: path("/detail"), update: path("/update"), stamp: "created"},
	{collection: "report-trucks", label: "Report Truck", base: "/api/report-truck", idField: "reportTruckId",
		returnID: true, stamp: "created"},
}

func (r resource) coll(s *records.Store) *records.Collection {
	return s.Collection(r.collection, r.idField, r.numeric)
}

type handlers struct {
	store *records.Store
	now   func() time.Time
}

func (h *handlers) timestamp() string {
	return h.now().Format(timestampLayout)
}

func (h *handlers) register(g *gin.RouterGroup, r resource) {
	g.GET(r.base+"/all", h.list(r))
	g.POST(r.base+"/add", h.create(r))

	if route, id := r.detail.route(r.base); route != "" {
		g.GET(route, h.detailOf(r, id))
	}
	if route, id := r.update.route(r.base); route != "" {
		g.PUT(route, h.updateOf(r, id))
	}
	if r.delete {
		g.DELETE(r.base+"/delete/:id", h.deleteOf(r))
	}
}

// route returns the gin pattern for l and how to read the identifier.
func (l locator) route(base string) (string, func(*gin.Context) string) {
	switch l.at {
	case inQuery:
		return base + l.segment, func(c *gin.Context) string { return c.Query("id") }
	case inPath:
		return base + l.segment + "/:id", func(c *gin.Context) string { return c.Param("id") }
	default:
		return "", nil
	}
}

func (h *handlers) list(r resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, "Data ditemukan", r.coll(h.store).List())
	}
}

func (h *handlers) detailOf(r resource, id func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := id(c)
		if key == "" {
			fail(c, http.StatusBadRequest, "id wajib diisi")
			return
		}
		rec, ok := r.coll(h.store).Get(key)
		if !ok {
			fail(c, http.StatusNotFound, fmt.Sprintf("%s tidak ditemukan", r.label))
			return
		}
		respond(c, http.StatusOK, "Data ditemukan", rec)
	}
}

func (h *handlers) create(r resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body records.Record
		if err := c.ShouldBindJSON(&body); err != nil {
			fail(c, http.StatusBadRequest, "Payload tidak valid")
			return
		}
		if body == nil {
			body = records.Record{}
		}
		username, _ := identity(c)
		body[r.stamp+"By"] = username
		body[r.stamp+"Date"] = h.timestamp()

		rec := r.coll(h.store).Insert(body)
		msg := fmt.Sprintf("%s berhasil ditambahkan", r.label)
		if r.returnID {
			respond(c, http.StatusCreated, msg, gin.H{r.idField: rec[r.idField], "message": msg})
			return
		}
		respond(c, http.StatusCreated, msg, rec)
	}
}

func (h *handlers) updateOf(r resource, id func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := id(c)
		if key == "" {
			fail(c, http.StatusBadRequest, "id wajib diisi")
			return
		}
		var body records.Record
		if err := c.ShouldBindJSON(&body); err != nil {
			fail(c, http.StatusBadRequest, "Payload tidak valid")
			return
		}
		if body == nil {
			body = records.Record{}
		}
		username, _ := identity(c)
		body["updatedBy"] = username
		body["updatedDate"] = h.timestamp()

		rec, ok := r.coll(h.store).Update(key, body)
		if !ok {
			fail(c, http.StatusNotFound, fmt.Sprintf("%s tidak ditemukan", r.label))
			return
		}
		respond(c, http.StatusOK, fmt.Sprintf("%s berhasil diperbarui", r.label), rec)
	}
}

func (h *handlers) deleteOf(r resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.coll(h.store).Delete(c.Param("id")) == 0 {
			fail(c, http.StatusNotFound, fmt.Sprintf("%s tidak ditemukan", r.label))
			return
		}
		respond(c, http.StatusOK, fmt.Sprintf("%s berhasil dihapus", r.label), nil)
	}
}

func lookup(name string) resource {
	for _, r := range resources {
		if r.collection == name {
			return r
		}
	}
	panic("devserver: unknown resource " + name)
}
