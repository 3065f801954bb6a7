package domain

import "time"

// Reply represents a comment on a Tweet. A Reply belongs to one Tweet and
// one User and is immutable once created.
type Reply struct {
	ID      int    `json:"id"`
	UserID  int    `json:"user_id" gorm:"notNull;index"`
	User    User   `json:"user"`
	TweetID int    `json:"tweet_id" gorm:"notNull;index"`
	Comment string `json:"comment" gorm:"notNull"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReplyService is a set of methods to manipulate and work with the Reply model.
// Replies are never updated or deleted on their own; they only go away when
// their tweet is deleted.
type ReplyService interface {
	Create(reply *Reply) error
}
