// Package mongodb keeps the notification feed in a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"eventManager/internal/models"
	"eventManager/internal/storage"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationsCollection = "notifications"

type Storage struct {
	client        *mongo.Client
	notifications *mongo.Collection
}

func New(ctx context.Context, uri, database string) (*Storage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	s := &Storage{
		client:        client,
		notifications: client.Database(database).Collection(notificationsCollection),
	}

	if err = s.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func NewWithCollection(coll *mongo.Collection) *Storage {
	return &Storage{notifications: coll}
}

func (s *Storage) EnsureIndexes(ctx context.Context) error {
	_, err := s.notifications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "read", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}

	return nil
}

func (s *Storage) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	return s.client.Disconnect(ctx)
}

func (s *Storage) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Type == "" {
		n.Type = models.NotificationGeneral
	}
	if n.CreatedAt.IsZero() {
		// BSON dates carry millisecond precision.
		n.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	if _, err := s.notifications.InsertOne(ctx, n); err != nil {
		return models.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

func (s *Storage) NotificationsByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.notifications.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]models.Notification, 0)
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}

	return notifications, nil
}

func (s *Storage) UnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.notifications.CountDocuments(ctx, bson.M{"userId": userID, "read": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (s *Storage) MarkNotificationRead(ctx context.Context, id, userID string) (models.Notification, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n models.Notification
	err := s.notifications.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
		opts,
	).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Notification{}, storage.ErrNotificationNotFound
		}
		return models.Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return n, nil
}

func (s *Storage) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	res, err := s.notifications.UpdateMany(ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return res.ModifiedCount, nil
}
