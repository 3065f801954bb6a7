package domain

import (
	"time"
)

const (
	// RoleUser is the role of an ordinary user.
	RoleUser = "user"
	// RoleAdmin is the role of an administrator. Admins may moderate
	// tweets and inspect the full user list through the /admin routes.
	RoleAdmin = "admin"
)

// User represents a registered account. The Password field only ever holds
// an incoming plaintext password during signup or signin and is never
// persisted; only the bcrypt PasswordHash is stored.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email" gorm:"notNull;uniqueIndex"`
	Password     string `json:"-" gorm:"-"`
	PasswordHash string `json:"-" gorm:"notNull"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Introduction string `json:"introduction"`
	Role         string `json:"role" gorm:"notNull;default:user"`

	Tweets  []Tweet  `json:"tweets"`
	Replies []Reply  `json:"replies"`
	Likes   []Like   `json:"likes"`
	// Followers are the Followships pointing at this user,
	// Followings the ones this user created.
	Followers  []Followship `json:"followers" gorm:"foreignKey:FollowingID"`
	Followings []Followship `json:"followings" gorm:"foreignKey:FollowerID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may access the /admin routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserService is a set of methods to manipulate and work with the User model.
type UserService interface {
	// Authenticate checks a submitted email and password pair.
	Authenticate(email, password string) (*User, error)
	// ByID retrieves a plain user record, without associations.
	ByID(id int) (*User, error)
	ByEmail(email string) (*User, error)
	// ProfileByID retrieves a user together with the record graph that the
	// profile sub-views are built from: tweets with their replies and likes,
	// liked tweets, followers and followings.
	ProfileByID(id int) (*User, error)
	// AllWithFollowers retrieves all users with just their Followers
	// association, enough to rank them by follower count.
	AllWithFollowers() ([]User, error)
	// AllWithAssociations retrieves all users with their full association
	// graph, for the admin user list.
	AllWithAssociations() ([]User, error)
	Create(user *User) error
	Update(user *User) error
}
