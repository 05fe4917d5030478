package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shutter-academy/academy-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	ClassesCollection         = "classes"
	UsersCollection           = "users"
	PaymentsCollection        = "payments"
	SelectedClassesCollection = "selectedClasses"
)

// Database wraps the single client shared by every request.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// Connect dials MongoDB with the stable API v1 and verifies the deployment
// answers a ping before returning.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Database, error) {
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	d := &Database{
		client: client,
		db:     client.Database(cfg.Name),
		logger: logger.With(slog.String("component", "mongodb")),
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := d.Ping(pingCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo deployment: %w", err)
	}

	d.logger.Info("connected to MongoDB", slog.String("database", cfg.Name))
	return d, nil
}

// Ping runs the admin ping command.
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Collection returns a handle on a collection of the configured database.
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Disconnect closes every pooled connection.
func (d *Database) Disconnect(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo client: %w", err)
	}
	d.logger.Info("disconnected from MongoDB")
	return nil
}

// EnsureIndexes creates the indexes the stores rely on. Creating an index
// that already exists is a no-op on the server.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("email_unique"),
			},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		ClassesCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "instructorEmail", Value: 1}}},
		},
		PaymentsCollection: {
			{Keys: bson.D{{Key: "studentInfo.email", Value: 1}, {Key: "date", Value: -1}}},
		},
		SelectedClassesCollection: {
			{Keys: bson.D{{Key: "studentInfo.email", Value: 1}}},
		},
	}

	for coll, models := range specs {
		names, err := d.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
		d.logger.Debug("indexes ensured", slog.String("collection", coll), slog.Any("indexes", names))
	}
	return nil
}
