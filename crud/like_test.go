package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

func TestLikeService_CreateAndDelete(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	ls := NewLikeService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")
	tweet := createTestTweet(t, ts, bob.ID, "hello world")

	require.NoError(t, ls.Create(&domain.Like{UserID: alice.ID, TweetID: tweet.ID}))

	var count int64
	require.NoError(t, db.Model(&domain.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, ls.Delete(&domain.Like{UserID: alice.ID, TweetID: tweet.ID}))

	require.NoError(t, db.Model(&domain.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLikeService_Create_RejectsDuplicate(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	ls := NewLikeService(db)
	alice := createTestUser(t, us, "alice")
	tweet := createTestTweet(t, ts, alice.ID, "hello world")

	require.NoError(t, ls.Create(&domain.Like{UserID: alice.ID, TweetID: tweet.ID}))

	err := ls.Create(&domain.Like{UserID: alice.ID, TweetID: tweet.ID})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	var count int64
	require.NoError(t, db.Model(&domain.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLikeService_Create_TweetMustExist(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ls := NewLikeService(db)
	alice := createTestUser(t, us, "alice")

	err := ls.Create(&domain.Like{UserID: alice.ID, TweetID: 42})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestLikeService_Delete_RequiresExistingLike(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	ls := NewLikeService(db)
	alice := createTestUser(t, us, "alice")
	tweet := createTestTweet(t, ts, alice.ID, "hello world")

	err := ls.Delete(&domain.Like{UserID: alice.ID, TweetID: tweet.ID})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestLikeService_Delete_OnlyRemovesOwnLike(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	ls := NewLikeService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")
	tweet := createTestTweet(t, ts, alice.ID, "hello world")

	require.NoError(t, ls.Create(&domain.Like{UserID: alice.ID, TweetID: tweet.ID}))
	require.NoError(t, ls.Create(&domain.Like{UserID: bob.ID, TweetID: tweet.ID}))

	require.NoError(t, ls.Delete(&domain.Like{UserID: alice.ID, TweetID: tweet.ID}))

	var remaining []domain.Like
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.ID, remaining[0].UserID)
}
