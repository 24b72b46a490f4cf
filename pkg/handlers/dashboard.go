package handlers

import (
	"net/http"

	"github.com/genads/genads-api/pkg/store"
	"github.com/genads/genads-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// dashboardLimit caps the videos list in the summary.
const dashboardLimit = 20

type DashboardQuery struct {
	Email string `form:"email" binding:"required,email"`
}

// DashboardSummary returns the owner's job totals and their most recent
// jobs, newest first. "processing" counts jobs still ahead of completion,
// i.e. status queued or processing.
func (h *Handlers) DashboardSummary(c *gin.Context) {
	var q DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Debugf("DashboardSummary: invalid query: %v", err)
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	if h.videos == nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Database not available", nil)
		return
	}

	ctx := c.Request.Context()

	total, err := h.videos.CountVideoJobs(ctx, q.Email)
	if err != nil {
		log.Errorf("DashboardSummary: failed to count jobs for %s: %v", q.Email, err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load dashboard summary", nil)
		return
	}

	processing, err := h.videos.CountVideoJobs(ctx, q.Email, store.StatusQueued, store.StatusProcessing)
	if err != nil {
		log.Errorf("DashboardSummary: failed to count processing jobs for %s: %v", q.Email, err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load dashboard summary", nil)
		return
	}

	jobs, err := h.videos.RecentVideoJobs(ctx, q.Email, dashboardLimit)
	if err != nil {
		log.Errorf("DashboardSummary: failed to list recent jobs for %s: %v", q.Email, err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to load dashboard summary", nil)
		return
	}

	videos := make([]VideoJobResponse, len(jobs))
	for i := range jobs {
		videos[i] = newVideoJobResponse(&jobs[i])
	}

	utils.ResponseWithSuccess(c, http.StatusOK, "Dashboard summary", gin.H{
		"total":      total,
		"processing": processing,
		"videos":     videos,
	})
}
