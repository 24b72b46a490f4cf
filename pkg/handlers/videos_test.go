package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/genads/genads-api/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validJobPayload returns a complete create payload; tests mutate single
// fields from here.
func validJobPayload() map[string]interface{} {
	return map[string]interface{}{
		"owner_email":         "ada@example.com",
		"project_name":        "Spring Launch",
		"brand_name":          "Acme",
		"brand_detail":        "Rocket-powered everything",
		"creative_prompt":     "A rocket sled racing across salt flats",
		"target_audience":     "Outdoor enthusiasts",
		"video_style":         "cinematic",
		"aspect_ratio":        "9:16",
		"duration_seconds":    30,
		"product_image_url":   "https://cdn.example.com/sled.png",
		"brand_logo_url":      "https://cdn.example.com/logo.png",
		"brand_guideline_url": "https://cdn.example.com/guide.pdf",
		"reference_image_url": "https://cdn.example.com/ref.jpg",
	}
}

func TestCreateVideoJob_ThenGet(t *testing.T) {
	fs := newFakeStore()
	router := newTestRouter(t, fs)

	payload := validJobPayload()
	w := doJSON(t, router, http.MethodPost, "/video/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	created := dataMap(t, decodeEnvelope(t, w))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, store.StatusProcessing, created["status"])

	w = doJSON(t, router, http.MethodGet, "/video/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := dataMap(t, decodeEnvelope(t, w))

	assert.Equal(t, id, got["id"])
	assert.Equal(t, store.StatusProcessing, got["status"])
	for _, field := range []string{
		"owner_email", "project_name", "brand_name", "brand_detail",
		"creative_prompt", "target_audience", "video_style", "aspect_ratio",
		"product_image_url", "brand_logo_url", "brand_guideline_url", "reference_image_url",
	} {
		assert.Equal(t, payload[field], got[field], "field %s", field)
	}
	assert.EqualValues(t, 30, got["duration_seconds"])
}

func TestCreateVideoJob_Defaults(t *testing.T) {
	fs := newFakeStore()
	router := newTestRouter(t, fs)

	payload := validJobPayload()
	delete(payload, "aspect_ratio")
	delete(payload, "duration_seconds")

	w := doJSON(t, router, http.MethodPost, "/video/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := dataMap(t, decodeEnvelope(t, w))["id"].(string)

	job := fs.jobs[id]
	require.NotNil(t, job)
	assert.Equal(t, "16:9", job.AspectRatio)
	assert.Equal(t, 15, job.DurationSeconds)
	assert.Equal(t, store.StatusProcessing, job.Status)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestCreateVideoJob_DurationBounds(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	tests := []struct {
		duration int
		want     int
	}{
		{4, http.StatusBadRequest},
		{5, http.StatusCreated},
		{120, http.StatusCreated},
		{121, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("duration=%d", tt.duration), func(t *testing.T) {
			payload := validJobPayload()
			payload["duration_seconds"] = tt.duration
			w := doJSON(t, router, http.MethodPost, "/video/create", payload)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCreateVideoJob_AspectRatioEnum(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	for _, ratio := range []string{"1:1", "9:16", "16:9", "4:5", "21:9"} {
		t.Run("accepts "+ratio, func(t *testing.T) {
			payload := validJobPayload()
			payload["aspect_ratio"] = ratio
			w := doJSON(t, router, http.MethodPost, "/video/create", payload)
			assert.Equal(t, http.StatusCreated, w.Code)
		})
	}
	for _, ratio := range []string{"3:2", "16:10", "wide", "1:1 "} {
		t.Run("rejects "+ratio, func(t *testing.T) {
			payload := validJobPayload()
			payload["aspect_ratio"] = ratio
			w := doJSON(t, router, http.MethodPost, "/video/create", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateVideoJob_RequiredAndURLFields(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	for _, field := range []string{"owner_email", "project_name", "brand_name", "creative_prompt", "target_audience", "video_style"} {
		t.Run("missing "+field, func(t *testing.T) {
			payload := validJobPayload()
			delete(payload, field)
			w := doJSON(t, router, http.MethodPost, "/video/create", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	for _, field := range []string{"product_image_url", "brand_logo_url", "brand_guideline_url", "reference_image_url"} {
		t.Run("relative url in "+field, func(t *testing.T) {
			payload := validJobPayload()
			payload[field] = "/not/absolute.png"
			w := doJSON(t, router, http.MethodPost, "/video/create", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetVideoJob_NotFound(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	// Malformed and well-formed-but-absent ids both answer 404.
	for _, id := range []string{"not-a-hex-id", "64b2f0c1a2b3c4d5e6f70809"} {
		w := doJSON(t, router, http.MethodGet, "/video/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "id %q", id)
		assert.Equal(t, "Not found", decodeEnvelope(t, w).Message)
	}
}

func TestFinalizeVideoJob(t *testing.T) {
	fs := newFakeStore()
	router := newTestRouter(t, fs)

	w := doJSON(t, router, http.MethodPost, "/video/create", validJobPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := dataMap(t, decodeEnvelope(t, w))["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/video/"+id+"/finalize", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, id, data["id"])
	assert.Equal(t, store.StatusFinalized, data["status"])
	assert.Equal(t, store.StatusFinalized, fs.jobs[id].Status)

	// Finalizing again is idempotent: same response, no error.
	again := doJSON(t, router, http.MethodPost, "/video/"+id+"/finalize", nil)
	assert.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, w.Body.String(), again.Body.String())
	assert.Equal(t, store.StatusFinalized, fs.jobs[id].Status)
}

func TestFinalizeVideoJob_InvalidID(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	w := doJSON(t, router, http.MethodPost, "/video/not-a-hex-id/finalize", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", decodeEnvelope(t, w).Message)
}

func TestFinalizeVideoJob_UnknownIDStillSucceeds(t *testing.T) {
	router := newTestRouter(t, newFakeStore())

	w := doJSON(t, router, http.MethodPost, "/video/64b2f0c1a2b3c4d5e6f70809/finalize", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decodeEnvelope(t, w))
	assert.Equal(t, store.StatusFinalized, data["status"])
}

func TestVideoEndpoints_NoStore(t *testing.T) {
	router := newTestRouter(t, nil)

	create := doJSON(t, router, http.MethodPost, "/video/create", validJobPayload())
	get := doJSON(t, router, http.MethodGet, "/video/64b2f0c1a2b3c4d5e6f70809", nil)
	finalize := doJSON(t, router, http.MethodPost, "/video/64b2f0c1a2b3c4d5e6f70809/finalize", nil)

	for _, w := range []int{create.Code, get.Code, finalize.Code} {
		assert.Equal(t, http.StatusInternalServerError, w)
	}
	assert.Equal(t, "Database not available", decodeEnvelope(t, create).Message)
}
