package domain

import "time"

// Like represents a many-to-many relationship between a User and a Tweet.
// A Like is created when a user decides to like a tweet. It's destroyed when
// a user decides to unlike a previously liked tweet, or when the tweet gets
// deleted. A user can like a given tweet at most once, enforced both by the
// unique index and by validation.
type Like struct {
	ID      int   `json:"id"`
	UserID  int   `json:"user_id" gorm:"notNull;uniqueIndex:idx_likes_user_tweet"`
	User    User  `json:"user"`
	TweetID int   `json:"tweet_id" gorm:"notNull;uniqueIndex:idx_likes_user_tweet"`
	Tweet   Tweet `json:"tweet"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikeService is a set of methods to manipulate and work with the Like model.
// Likes are addressed by their (user, tweet) pair rather than by ID, since
// that's how the like/unlike routes identify them.
type LikeService interface {
	Create(like *Like) error
	Delete(like *Like) error
}
