package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/punishboard/pkg/observability"
)

// MongoConfig configures a [MongoStore].
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Key        string
}

// MongoStore keeps the list in a single document keyed by _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	key    string
}

// mongoRecord is the stored document.
type mongoRecord struct {
	Key       string    `bson:"_id"`
	Spaces    []string  `bson:"spaces"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "punishboard"
	}
	if cfg.Collection == "" {
		cfg.Collection = "space_lists"
	}
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		key:    cfg.Key,
	}, nil
}

func (s *MongoStore) Load(ctx context.Context) ([]string, error) {
	var rec mongoRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observability.Store().OnLoad(ctx, "mongo", 0, nil)
		return nil, nil
	}
	if err != nil {
		err = fmt.Errorf("mongo find %s: %w", s.key, err)
		observability.Store().OnLoad(ctx, "mongo", 0, err)
		return nil, err
	}
	observability.Store().OnLoad(ctx, "mongo", len(rec.Spaces), nil)
	return rec.Spaces, nil
}

func (s *MongoStore) Save(ctx context.Context, spaces []string) error {
	if spaces == nil {
		spaces = []string{}
	}
	update := bson.M{"$set": bson.M{"spaces": spaces, "updated_at": time.Now().UTC()}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": s.key}, update, options.Update().SetUpsert(true))
	if err != nil {
		err = fmt.Errorf("mongo upsert %s: %w", s.key, err)
	}
	observability.Store().OnSave(ctx, "mongo", len(spaces), err)
	return err
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
