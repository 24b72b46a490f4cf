package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. One collection per record type; the mapping is declared
// here rather than derived from type names.
const (
	CollectionUsers     = "user"
	CollectionProjects  = "project"
	CollectionVideoJobs = "videojob"
)

// Video job statuses.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusFinalized  = "finalized"
)

// Supported aspect ratios.
const (
	AspectSquare   = "1:1"
	AspectVertical = "9:16"
	AspectWide     = "16:9"
	AspectPortrait = "4:5"
	AspectCinema   = "21:9"
)

// DefaultAspectRatio and DefaultDurationSeconds apply when a create request
// omits the field.
const (
	DefaultAspectRatio     = AspectWide
	DefaultDurationSeconds = 15
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	AvatarURL    string             `bson:"avatar_url,omitempty"`
}

// Project is declared for completeness; no endpoint currently reads or
// writes this collection.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerEmail  string             `bson:"owner_email"`
	ProjectName string             `bson:"project_name"`
	BrandName   string             `bson:"brand_name"`
	BrandDetail string             `bson:"brand_detail"`
}

// VideoJob is one requested ad-video generation. OwnerEmail and ProjectID are
// soft references; nothing enforces them against the other collections.
type VideoJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerEmail  string             `bson:"owner_email"`
	ProjectID   string             `bson:"project_id,omitempty"`
	ProjectName string             `bson:"project_name"`
	BrandName   string             `bson:"brand_name"`
	BrandDetail string             `bson:"brand_detail"`

	CreativePrompt  string `bson:"creative_prompt"`
	TargetAudience  string `bson:"target_audience"`
	VideoStyle      string `bson:"video_style"`
	AspectRatio     string `bson:"aspect_ratio"`
	DurationSeconds int    `bson:"duration_seconds"`

	ProductImageURL   string `bson:"product_image_url,omitempty"`
	BrandLogoURL      string `bson:"brand_logo_url,omitempty"`
	BrandGuidelineURL string `bson:"brand_guideline_url,omitempty"`
	ReferenceImageURL string `bson:"reference_image_url,omitempty"`

	Status       string    `bson:"status"`
	ThumbnailURL string    `bson:"thumbnail_url,omitempty"`
	VideoURL     string    `bson:"video_url,omitempty"`
	Notes        string    `bson:"notes,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}
