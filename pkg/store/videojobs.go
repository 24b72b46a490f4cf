package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertVideoJob inserts a new video job and returns the generated id as a
// hex string. CreatedAt is stamped here so dashboard ordering is stable.
func (s *Store) InsertVideoJob(ctx context.Context, job *VideoJob) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	job.CreatedAt = time.Now().UTC()
	res, err := s.db.Collection(CollectionVideoJobs).InsertOne(ctx, job)
	if err != nil {
		return "", fmt.Errorf("failed to insert video job: %w", err)
	}
	id := res.InsertedID.(primitive.ObjectID).Hex()
	log.Infof("Video job created for %s with id %s", job.OwnerEmail, id)
	return id, nil
}

// FindVideoJobByID returns the job with the given hex id. A malformed or
// unknown id yields (nil, nil); callers treat both as not-found.
func (s *Store) FindVideoJobByID(ctx context.Context, id string) (*VideoJob, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Debugf("FindVideoJobByID: malformed id %q", id)
		return nil, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	job := &VideoJob{}
	err = s.db.Collection(CollectionVideoJobs).FindOne(ctx, bson.M{"_id": oid}).Decode(job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find video job: %w", err)
	}
	return job, nil
}

// FinalizeVideoJob sets the job's status to finalized. The operation is
// idempotent and does not report whether a document matched; a malformed id
// returns ErrInvalidID.
func (s *Store) FinalizeVideoJob(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = s.db.Collection(CollectionVideoJobs).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": StatusFinalized}})
	if err != nil {
		return fmt.Errorf("failed to finalize video job: %w", err)
	}
	return nil
}

// CountVideoJobs counts the owner's jobs, optionally restricted to a set of
// statuses.
func (s *Store) CountVideoJobs(ctx context.Context, ownerEmail string, statuses ...string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	filter := bson.M{"owner_email": ownerEmail}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	n, err := s.db.Collection(CollectionVideoJobs).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count video jobs: %w", err)
	}
	return n, nil
}

// RecentVideoJobs returns the owner's most recent jobs, newest first.
func (s *Store) RecentVideoJobs(ctx context.Context, ownerEmail string, limit int64) ([]VideoJob, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.db.Collection(CollectionVideoJobs).Find(ctx, bson.M{"owner_email": ownerEmail}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query video jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []VideoJob
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode video jobs: %w", err)
	}
	return jobs, nil
}
