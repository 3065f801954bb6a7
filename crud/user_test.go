package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

func TestUserService_Create_Validations(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)

	tests := []struct {
		name string
		user domain.User
	}{
		{"missing password", domain.User{Name: "a", Email: "a@example.com"}},
		{"short password", domain.User{Name: "a", Email: "a@example.com", Password: "short"}},
		{"missing email", domain.User{Name: "a", Password: "password123"}},
		{"malformed email", domain.User{Name: "a", Email: "not-an-email", Password: "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := us.Create(&tt.user)
			assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		})
	}
}

func TestUserService_Create_HashesAndClearsPassword(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)

	user := createTestUser(t, us, "alice")
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestUserService_Create_NormalizesEmail(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)

	user := &domain.User{Name: "a", Email: "  Alice@Example.COM ", Password: "password123"}
	require.NoError(t, us.Create(user))
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Create_RejectsTakenEmail(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	createTestUser(t, us, "alice")

	err := us.Create(&domain.User{Name: "other", Email: "alice@example.com", Password: "password123"})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestUserService_Authenticate(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	alice := createTestUser(t, us, "alice")

	found, err := us.Authenticate("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = us.Authenticate("alice@example.com", "wrong-password")
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	_, err = us.Authenticate("nobody@example.com", "password123")
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestUserService_Update_Profile(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	alice := createTestUser(t, us, "alice")

	alice.Name = "Alice Doe"
	alice.Introduction = "hello there"
	require.NoError(t, us.Update(alice))

	found, err := us.ByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", found.Name)
	assert.Equal(t, "hello there", found.Introduction)

	// The password hash survived the update untouched.
	_, err = us.Authenticate("alice@example.com", "password123")
	assert.NoError(t, err)
}

func TestUserService_ByID_NotFound(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)

	_, err := us.ByID(42)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestUserService_ProfileByID_LoadsGraph(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	ls := NewLikeService(db)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")

	tweet := createTestTweet(t, ts, alice.ID, "hello world")
	require.NoError(t, ls.Create(&domain.Like{UserID: bob.ID, TweetID: tweet.ID}))
	require.NoError(t, ls.Create(&domain.Like{UserID: alice.ID, TweetID: tweet.ID}))
	require.NoError(t, fs.Create(&domain.Followship{FollowerID: bob.ID, FollowingID: alice.ID}))
	require.NoError(t, fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID}))

	profile, err := us.ProfileByID(alice.ID)
	require.NoError(t, err)

	require.Len(t, profile.Tweets, 1)
	assert.Equal(t, "alice", profile.Tweets[0].User.Name)
	assert.Len(t, profile.Tweets[0].Likes, 2)

	require.Len(t, profile.Likes, 1)
	assert.Equal(t, tweet.ID, profile.Likes[0].Tweet.ID)
	assert.Equal(t, "alice", profile.Likes[0].Tweet.User.Name)

	require.Len(t, profile.Followers, 1)
	assert.Equal(t, "bob", profile.Followers[0].Follower.Name)
	require.Len(t, profile.Followings, 1)
	assert.Equal(t, "bob", profile.Followings[0].Following.Name)
}

func TestUserService_AllWithFollowers(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")
	carol := createTestUser(t, us, "carol")

	require.NoError(t, fs.Create(&domain.Followship{FollowerID: bob.ID, FollowingID: alice.ID}))
	require.NoError(t, fs.Create(&domain.Followship{FollowerID: carol.ID, FollowingID: alice.ID}))

	users, err := us.AllWithFollowers()
	require.NoError(t, err)
	require.Len(t, users, 3)

	// Fetch order is by ID, so alice comes first, carrying her two followers.
	assert.Equal(t, alice.ID, users[0].ID)
	assert.Len(t, users[0].Followers, 2)
	assert.Empty(t, users[1].Followers)
}
