package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/genads/genads-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// UploadFile stages the uploaded file in the local upload directory and
// hands back a placeholder URL built from the client's filename. The
// filename is used as-is, so collisions overwrite; the URL is returned
// unconditionally. No size or type limits apply.
func (h *Handlers) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		log.Debugf("UploadFile: missing file field: %v", err)
		utils.ResponseWithError(c, http.StatusBadRequest, "Missing file", err.Error())
		return
	}

	dst := filepath.Join(h.cfg.UploadDir, file.Filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Errorf("UploadFile: failed to save %q: %v", file.Filename, err)
		utils.ResponseWithError(c, http.StatusInternalServerError, "Failed to save file", nil)
		return
	}

	log.Infof("Uploaded file staged at %s", dst)
	utils.ResponseWithSuccess(c, http.StatusOK, "File uploaded", gin.H{
		"url": "/uploads/" + file.Filename,
	})
}
