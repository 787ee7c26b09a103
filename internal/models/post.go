package models

import "time"

// PostDB represents a post record in the database
type PostDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Post title
	Content   string    `json:"content" db:"content"`       // Post body
	ImageURL  *string   `json:"image_url" db:"image_url"`   // Optional uploaded image path
	UserID    int64     `json:"user_id" db:"user_id"`       // Author, references users.id
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Insertion timestamp
}

// PostWithAuthor is a post row joined with the author's username,
// as returned by the public listing.
type PostWithAuthor struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Username  string    `json:"username" db:"username"`
}

// PostCreatedEvent is published to Kafka after a post is stored.
type PostCreatedEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	PostTitle string `json:"post_title"`
	UserID    int64  `json:"user_id"`
}
