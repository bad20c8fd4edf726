package devserver

import (
	"time"

	"github.com/dmitrijs2005/sitrack/internal/devserver/auth"
	"github.com/dmitrijs2005/sitrack/internal/devserver/records"
	"github.com/dmitrijs2005/sitrack/internal/devserver/users"
	"github.com/dmitrijs2005/sitrack/internal/logging"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Store       *records.Store
	Users       *users.Service
	TokenConfig auth.TokenConfig
	Log         logging.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewRouter(deps Deps) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(deps.Log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	accounts := &accountHandlers{users: deps.Users, tokens: deps.TokenConfig, log: deps.Log}
	r.POST("/api/auth/login", accounts.login)

	protected := r.Group("")
	protected.Use(RequireAuth(deps.TokenConfig))
	protected.POST("/api/auth/logout", accounts.logout)

	admin := protected.Group("/api/user", RequireRole("Admin"))
	admin.GET("/all", accounts.listUsers)
	admin.POST("/add", accounts.createUser)

	h := &handlers{store: deps.Store, now: deps.Now}
	for _, res := range resources {
		h.register(protected, res)
	}

	protected.PUT("/api/request-assets/approve", h.approveRequestAsset)
	protected.PUT("/api/order/approve", h.approveOrder)
	protected.PUT("/api/order/done/:id", h.doneOrder)
	protected.GET("/api/spj/vehicle-out", h.vehicleOut)
	protected.GET("/api/spj/vehicle-in", h.vehicleIn)
	protected.PUT("/api/spj/approve", h.approveSpj)
	protected.PUT("/api/spj/done/:id", h.doneSpj)

	protected.GET("/api/notifications", h.listNotifications)
	protected.GET("/api/notifications/category/:category", h.notificationsByCategory)
	protected.PUT("/api/notifications/:id/read", h.markNotificationRead)
	protected.POST("/api/notifications/bulk-delete", h.bulkDeleteNotifications)
	protected.POST("/api/notifications/trigger-check", h.triggerCheck)

	protected.POST("/api/reports/generate", h.generateReport)
	protected.POST("/api/reports/export/:format", h.exportReport)

	return r
}
