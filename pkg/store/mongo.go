package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned when a caller supplies an identifier that cannot
// be a document id. Lookups normalize this to not-found instead.
var ErrInvalidID = errors.New("invalid document id")

// opTimeout bounds every single round-trip to the record store.
const opTimeout = 5 * time.Second

// Store is the persistence layer over one MongoDB database. It is
// constructed once in main and passed down to the handlers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB, verifies the connection with a ping and returns
// a Store bound to the named database.
func Open(uri, dbName string) (*Store, error) {
	if uri == "" || dbName == "" {
		return nil, fmt.Errorf("database URL or name is empty")
	}

	clientOptions := options.Client().ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()
	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("Connected to MongoDB")
	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close() error {
	if err := s.client.Disconnect(context.TODO()); err != nil {
		log.Errorf("Failed to disconnect MongoDB client: %v", err)
		return err
	}
	log.Info("Disconnected from MongoDB")
	return nil
}

// Collections lists the collection names of the database. Used by the
// diagnostic endpoint only.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
