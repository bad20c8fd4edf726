package devserver

import (
	"time"

	"github.com/gin-gonic/gin"
)

const timestampLayout = "2006-01-02T15:04:05"

type envelope struct {
	Status    int      `json:"status"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Data      any      `json:"data,omitempty"`
	Columns   []string `json:"columns,omitempty"`
}

func respond(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, envelope{
		Status:    status,
		Message:   msg,
		Timestamp: time.Now().Format(timestampLayout),
		Data:      data,
	})
}

func fail(c *gin.Context, status int, msg string) {
	respond(c, status, msg, nil)
	c.Abort()
}
