package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertUser inserts a new user and returns the generated id as a hex
// string. Email uniqueness is the caller's responsibility: signup pre-checks
// with FindUserByEmail, and this method is the single place a unique index
// could later make that check-then-insert atomic.
func (s *Store) InsertUser(ctx context.Context, u *User) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.db.Collection(CollectionUsers).InsertOne(ctx, u)
	if err != nil {
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	id := res.InsertedID.(primitive.ObjectID).Hex()
	log.Infof("User %s created with id %s", u.Email, id)
	return id, nil
}

// FindUserByEmail returns the user with the given email, or (nil, nil) when
// no such user exists.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u := &User{}
	err := s.db.Collection(CollectionUsers).FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}
