package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-platform/internal/logger"
	"github.com/sbilibin2017/blog-platform/internal/models"
	"github.com/segmentio/kafka-go"
)

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, title, content string, imageURL *string, userID int64) error
}

// PostReader defines read operations for posts.
type PostReader interface {
	List(ctx context.Context) ([]models.PostWithAuthor, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PostService handles post creation and listing, and publishes
// post-created events to Kafka.
type PostService struct {
	writeRepo   PostWriter
	readRepo    PostReader
	kafkaWriter KafkaWriter
}

// NewPostService creates a new PostService.
func NewPostService(writeRepo PostWriter, readRepo PostReader, kafkaWriter KafkaWriter) *PostService {
	return &PostService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishPostCreated publishes a post-created event to Kafka.
func (s *PostService) publishPostCreated(ctx context.Context, event models.PostCreatedEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "title", event.PostTitle)
	}
}

// Create stores a new post for the given author and publishes the event.
func (s *PostService) Create(ctx context.Context, userID int64, title, content string, imageURL *string) error {
	if err := s.writeRepo.Save(ctx, title, content, imageURL, userID); err != nil {
		logger.Log.Errorw("failed to save post", "userID", userID, "title", title, "error", err)
		return err
	}

	event := models.PostCreatedEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		PostTitle: title,
		UserID:    userID,
	}
	s.publishPostCreated(ctx, event)

	return nil
}

// List returns all posts with their author usernames, newest first.
func (s *PostService) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	posts, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "error", err)
		return nil, err
	}
	return posts, nil
}
