package domain

import "time"

// Followship represents a self-referential many-to-many relationship between
// two users: a directed edge from a follower to a followed user. The
// FollowerID is the ID of the user that follows, the FollowingID the ID of
// the user being followed. A user can never follow themselves, and can
// follow another user at most once.
type Followship struct {
	ID          int  `json:"id"`
	FollowerID  int  `json:"-" gorm:"notNull;uniqueIndex:idx_followships_pair"`
	Follower    User `json:"follower"`
	FollowingID int  `json:"-" gorm:"notNull;uniqueIndex:idx_followships_pair"`
	Following   User `json:"following"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FollowshipService is a set of methods to manipulate and work with the
// Followship model. Wherever followships are listed, they are ordered by
// creation time descending, so the most recently established relationship
// comes first. That single policy applies to every follower and following
// list in the app.
type FollowshipService interface {
	Create(followship *Followship) error
	// Delete removes the followship matching the (follower, following)
	// pair set on the passed in object.
	Delete(followship *Followship) error
	// FollowingIDs returns the IDs of all users the given user follows.
	// The view layer computes every "is followed" flag against this set.
	FollowingIDs(userID int) ([]int, error)
}
