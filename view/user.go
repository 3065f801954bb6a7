package view

import (
	"sort"

	"simpleTwitter/domain"
)

// TopUsersCount is how many users the feed's follower ranking shows.
const TopUsersCount = 3

// UserCard is a user annotated relative to the viewing user, carrying the
// association counts the profile views display.
type UserCard struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	Introduction   string `json:"introduction"`
	Role           string `json:"role"`
	TweetCount     int    `json:"tweet_count"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
	LikeCount      int    `json:"like_count"`
	IsFollowed     bool   `json:"is_followed"`
}

// NewUserCard builds a UserCard. IsFollowed is resolved against the viewer's
// following IDs, never against the card's subject, so a self-profile and
// another user's profile both carry the session viewer's perspective.
func NewUserCard(u domain.User, viewerFollowingIDs []int) UserCard {
	return UserCard{
		ID:             u.ID,
		Name:           u.Name,
		Avatar:         u.Avatar,
		Introduction:   u.Introduction,
		Role:           u.Role,
		TweetCount:     len(u.Tweets),
		FollowerCount:  len(u.Followers),
		FollowingCount: len(u.Followings),
		LikeCount:      len(u.Likes),
		IsFollowed:     followedBy(viewerFollowingIDs, u.ID),
	}
}

// NewUserCards builds a UserCard per user, preserving order.
func NewUserCards(users []domain.User, viewerFollowingIDs []int) []UserCard {
	cards := make([]UserCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, NewUserCard(u, viewerFollowingIDs))
	}
	return cards
}

// followedBy reports whether id appears among the viewer's following IDs.
func followedBy(viewerFollowingIDs []int, id int) bool {
	for _, fid := range viewerFollowingIDs {
		if fid == id {
			return true
		}
	}
	return false
}

// RankByFollowerCount ranks users descending by follower count and truncates
// the result to n entries. The sort is stable: users with equal follower
// counts keep their fetch order relative to each other, and re-running the
// ranking on the same snapshot yields the same order. A user with zero
// followers is still ranked, so with fewer than n users everyone shows up.
func RankByFollowerCount(users []domain.User, viewerFollowingIDs []int, n int) []UserCard {
	cards := NewUserCards(users, viewerFollowingIDs)
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].FollowerCount > cards[j].FollowerCount
	})
	if len(cards) > n {
		cards = cards[:n]
	}
	return cards
}

// NewFollowerList builds a UserCard per follower edge, taking each edge's
// Follower side. The edges arrive newest-relationship-first from the store
// and their order is preserved. Every IsFollowed flag is the viewer's, not
// the profile subject's.
func NewFollowerList(followships []domain.Followship, viewerFollowingIDs []int) []UserCard {
	cards := make([]UserCard, 0, len(followships))
	for _, f := range followships {
		cards = append(cards, NewUserCard(f.Follower, viewerFollowingIDs))
	}
	return cards
}

// NewFollowingList builds a UserCard per following edge, taking each edge's
// Following side. Ordering and flag semantics match NewFollowerList.
func NewFollowingList(followships []domain.Followship, viewerFollowingIDs []int) []UserCard {
	cards := make([]UserCard, 0, len(followships))
	for _, f := range followships {
		cards = append(cards, NewUserCard(f.Following, viewerFollowingIDs))
	}
	return cards
}
