package domain

import (
	"gorm.io/gorm"
	"time"
)

// MaxTweetLength is the maximum number of characters (runes, not bytes)
// a tweet's description may have.
const MaxTweetLength = 140

// Tweet represents a single posting. Every Tweet belongs to exactly one User.
// Tweets are soft-deleted so that an admin moderation delete keeps the row
// around with a deletion timestamp.
type Tweet struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id" gorm:"notNull;index"`
	User        User   `json:"user"`
	Description string `json:"description" gorm:"notNull"`

	Replies []Reply `json:"replies" gorm:"foreignKey:TweetID"`
	Likes   []Like  `json:"likes" gorm:"foreignKey:TweetID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at"`
}

// TweetService is a set of methods to manipulate and work with the Tweet model.
type TweetService interface {
	// ByID retrieves a single tweet with its author, replies and likes.
	ByID(id int) (*Tweet, error)
	// All retrieves every tweet with its author, replies and likes,
	// newest first. It backs both the feed and the admin moderation list.
	All() ([]Tweet, error)
	Create(tweet *Tweet) error
	// Delete soft-deletes a tweet along with its replies and likes.
	Delete(tweet *Tweet) error
}
