package crud

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simpleTwitter/domain"
)

const testPepper = "test-pepper"

// testDB opens a fresh in-memory database with all tables migrated.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Tweet{},
		&domain.Reply{},
		&domain.Like{},
		&domain.Followship{},
	))
	return db
}

// createTestUser creates a user through the full validation chain.
func createTestUser(t *testing.T, us *UserService, name string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "password123",
	}
	require.NoError(t, us.Create(user))
	return user
}

// createTestTweet creates a tweet owned by the given user.
func createTestTweet(t *testing.T, ts *TweetService, userID int, description string) *domain.Tweet {
	t.Helper()
	tweet := &domain.Tweet{
		UserID:      userID,
		Description: description,
	}
	require.NoError(t, ts.Create(tweet))
	return tweet
}
