package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/genads/genads-api/pkg/store"
	"github.com/genads/genads-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CreateVideoJobRequest is the full job payload. DurationSeconds is a
// pointer so an omitted field can default to 15 while an explicit 0 still
// fails the range check.
type CreateVideoJobRequest struct {
	OwnerEmail  string `json:"owner_email" binding:"required,email"`
	ProjectName string `json:"project_name" binding:"required"`
	BrandName   string `json:"brand_name" binding:"required"`
	BrandDetail string `json:"brand_detail"`

	CreativePrompt  string `json:"creative_prompt" binding:"required"`
	TargetAudience  string `json:"target_audience" binding:"required"`
	VideoStyle      string `json:"video_style" binding:"required"`
	AspectRatio     string `json:"aspect_ratio" binding:"omitempty,oneof=1:1 9:16 16:9 4:5 21:9"`
	DurationSeconds *int   `json:"duration_seconds" binding:"omitempty,min=5,max=120"`

	ProductImageURL   string `json:"product_image_url" binding:"omitempty,http_url"`
	BrandLogoURL      string `json:"brand_logo_url" binding:"omitempty,http_url"`
	BrandGuidelineURL string `json:"brand_guideline_url" binding:"omitempty,http_url"`
	ReferenceImageURL string `json:"reference_image_url" binding:"omitempty,http_url"`
}

// VideoJobResponse mirrors the stored record with a hex id.
type VideoJobResponse struct {
	ID          string `json:"id"`
	OwnerEmail  string `json:"owner_email"`
	ProjectID   string `json:"project_id,omitempty"`
	ProjectName string `json:"project_name"`
	BrandName   string `json:"brand_name"`
	BrandDetail string `json:"brand_detail"`

	CreativePrompt  string `json:"creative_prompt"`
	TargetAudience  string `json:"target_audience"`
	VideoStyle      string `json:"video_style"`
	AspectRatio     string `json:"aspect_ratio"`
	DurationSeconds int    `json:"duration_seconds"`

	ProductImageURL   string `json:"product_image_url,omitempty"`
	BrandLogoURL      string `json:"brand_logo_url,omitempty"`
	BrandGuidelineURL string `json:"brand_guideline_url,omitempty"`
	ReferenceImageURL string `json:"reference_image_url,omitempty"`

	Status       string    `json:"status"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	VideoURL     string    `json:"video_url,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newVideoJobResponse(job *store.VideoJob) VideoJobResponse {
	return VideoJobResponse{
		ID:                job.ID.Hex(),
		OwnerEmail:        job.OwnerEmail,
		ProjectID:         job.ProjectID,
		ProjectName:       job.ProjectName,
		BrandName:         job.BrandName,
		BrandDetail:       job.BrandDetail,
		CreativePrompt:    job.CreativePrompt,
		TargetAudience:    job.TargetAudience,
		VideoStyle:        job.VideoStyle,
		AspectRatio:       job.AspectRatio,
		DurationSeconds:   job.DurationSeconds,
		ProductImageURL:   job.ProductImageURL,
		BrandLogoURL:      job.BrandLogoURL,
		BrandGuidelineURL: job.BrandGuidelineURL,
		ReferenceImageURL: job.ReferenceImageURL,
		Status:            job.Status,
		ThumbnailURL:      job.ThumbnailURL,
		VideoURL:          job.VideoURL,
		Notes:             job.Notes,
		CreatedAt:         job.CreatedAt,
	}
}

// CreateVideoJob validates and persists a new job. The job is stored with
// status "processing"; no background execution picks it up.
func (h *Handlers) CreateVideoJob(c *gin.Context) {
	var req CreateVideoJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debugf("CreateVideoJob: invalid request body: %v", err)
		utils.ResponseWithError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if h.videos == nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Database not available", nil)
		return
	}

	job := &store.VideoJob{
		OwnerEmail:        req.OwnerEmail,
		ProjectName:       req.ProjectName,
		BrandName:         req.BrandName,
		BrandDetail:       req.BrandDetail,
		CreativePrompt:    req.CreativePrompt,
		TargetAudience:    req.TargetAudience,
		VideoStyle:        req.VideoStyle,
		AspectRatio:       req.AspectRatio,
		DurationSeconds:   store.DefaultDurationSeconds,
		ProductImageURL:   req.ProductImageURL,
		BrandLogoURL:      req.BrandLogoURL,
		BrandGuidelineURL: req.BrandGuidelineURL,
		ReferenceImageURL: req.ReferenceImageURL,
		Status:            store.StatusProcessing,
	}
	if job.AspectRatio == "" {
		job.AspectRatio = store.DefaultAspectRatio
	}
	if req.DurationSeconds != nil {
		job.DurationSeconds = *req.DurationSeconds
	}

	id, err := h.videos.InsertVideoJob(c.Request.Context(), job)
	if err != nil {
		log.Errorf("CreateVideoJob: failed to create job: %v", err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to create video job", nil)
		return
	}

	utils.ResponseWithSuccess(c, http.StatusCreated, "Video job created", gin.H{
		"id":     id,
		"status": job.Status,
	})
}

// GetVideoJob returns the full job record. A malformed id answers 404, not a
// server fault.
func (h *Handlers) GetVideoJob(c *gin.Context) {
	if h.videos == nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Database not available", nil)
		return
	}

	id := c.Param("id")
	job, err := h.videos.FindVideoJobByID(c.Request.Context(), id)
	if err != nil {
		log.Errorf("GetVideoJob: failed to fetch job %q: %v", id, err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to retrieve video job", nil)
		return
	}
	if job == nil {
		utils.ResponseWithError(c, http.StatusNotFound, "Not found", nil)
		return
	}

	utils.ResponseWithSuccess(c, http.StatusOK, "Video job retrieved", newVideoJobResponse(job))
}

// FinalizeVideoJob sets the job's status to finalized. Finalizing twice, or
// finalizing a well-formed id that matches nothing, both answer success.
func (h *Handlers) FinalizeVideoJob(c *gin.Context) {
	if h.videos == nil {
		utils.ResponseWithError(c, http.StatusInternalServerError, "Database not available", nil)
		return
	}

	id := c.Param("id")
	if err := h.videos.FinalizeVideoJob(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			utils.ResponseWithError(c, http.StatusBadRequest, "Invalid id", nil)
			return
		}
		log.Errorf("FinalizeVideoJob: failed to finalize job %q: %v", id, err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to finalize video job", nil)
		return
	}

	log.Infof("Video job %s finalized", id)
	utils.ResponseWithSuccess(c, http.StatusOK, "Video job finalized", gin.H{
		"id":     id,
		"status": store.StatusFinalized,
	})
}
