// Package view builds render-ready view models from raw record graphs.
// Everything in here is pure computation over rows the crud services have
// already fetched: handlers pass in entities plus the viewer's identity, and
// get back typed structs carrying the viewer-relative derived fields
// (IsLiked, IsFollowed, follower counts, rankings). Nothing in this package
// touches the database, and no derived flag is ever written back to a record.
package view

import (
	"time"

	"simpleTwitter/domain"
)

// UserSummary is a lightweight reference to a tweet's or reply's author.
type UserSummary struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// NewUserSummary builds a UserSummary from a user record.
func NewUserSummary(u domain.User) UserSummary {
	return UserSummary{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}

// TweetItem is a tweet annotated relative to the viewing user.
type TweetItem struct {
	ID          int         `json:"id"`
	Description string      `json:"description"`
	User        UserSummary `json:"user"`
	ReplyCount  int         `json:"reply_count"`
	LikeCount   int         `json:"like_count"`
	IsLiked     bool        `json:"is_liked"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewTweetItem builds a TweetItem, setting IsLiked to whether the viewer's
// ID appears among the tweet's likes. The tweet's author liking their own
// tweet is nothing special here; membership is all that counts.
func NewTweetItem(t domain.Tweet, viewerID int) TweetItem {
	return TweetItem{
		ID:          t.ID,
		Description: t.Description,
		User:        NewUserSummary(t.User),
		ReplyCount:  len(t.Replies),
		LikeCount:   len(t.Likes),
		IsLiked:     likedBy(t.Likes, viewerID),
		CreatedAt:   t.CreatedAt,
	}
}

// NewTweetItems builds a TweetItem per tweet, preserving order.
func NewTweetItems(tweets []domain.Tweet, viewerID int) []TweetItem {
	items := make([]TweetItem, 0, len(tweets))
	for _, t := range tweets {
		items = append(items, NewTweetItem(t, viewerID))
	}
	return items
}

// likedBy reports whether the user with viewerID appears in the like set.
func likedBy(likes []domain.Like, viewerID int) bool {
	for _, l := range likes {
		if l.UserID == viewerID {
			return true
		}
	}
	return false
}

// ReplyItem is a single reply below a tweet.
type ReplyItem struct {
	ID        int         `json:"id"`
	Comment   string      `json:"comment"`
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewReplyItems builds a ReplyItem per reply, preserving order.
func NewReplyItems(replies []domain.Reply) []ReplyItem {
	items := make([]ReplyItem, 0, len(replies))
	for _, r := range replies {
		items = append(items, ReplyItem{
			ID:        r.ID,
			Comment:   r.Comment,
			User:      NewUserSummary(r.User),
			CreatedAt: r.CreatedAt,
		})
	}
	return items
}

// LikeItem is an entry in a user's "liked tweets" profile view. The nested
// tweet's IsLiked flag is computed relative to the session viewer, not the
// profile owner, so looking at someone else's likes still shows your own
// like state on each tweet.
type LikeItem struct {
	ID    int       `json:"id"`
	Tweet TweetItem `json:"tweet"`
}

// NewLikeItems builds a LikeItem per like, preserving order.
func NewLikeItems(likes []domain.Like, viewerID int) []LikeItem {
	items := make([]LikeItem, 0, len(likes))
	for _, l := range likes {
		items = append(items, LikeItem{
			ID:    l.ID,
			Tweet: NewTweetItem(l.Tweet, viewerID),
		})
	}
	return items
}
