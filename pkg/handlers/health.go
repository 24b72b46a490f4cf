package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers the root health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "GenAds Backend Running",
	})
}

// DatabaseDiagnostic reports store connectivity and the first few collection
// names. Best effort only: every failure is rendered as text in the body and
// the endpoint itself always answers 200.
func (h *Handlers) DatabaseDiagnostic(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.diag == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Available"
	if h.cfg.DatabaseURL != "" {
		resp["database_url"] = "✅ Set"
	} else {
		resp["database_url"] = "❌ Not Set"
	}
	if h.cfg.DatabaseName != "" {
		resp["database_name"] = h.cfg.DatabaseName
	} else {
		resp["database_name"] = "❌ Not Set"
	}
	resp["connection_status"] = "Connected"

	names, err := h.diag.Collections(c.Request.Context())
	if err != nil {
		resp["database"] = fmt.Sprintf("⚠️ Connected but Error: %.80s", err.Error())
	} else {
		if names == nil {
			names = []string{}
		}
		if len(names) > 10 {
			names = names[:10]
		}
		resp["collections"] = names
		resp["database"] = "✅ Connected & Working"
	}

	c.JSON(http.StatusOK, resp)
}
