package crud

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

func TestTweetService_Create_DescriptionLength(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	user := createTestUser(t, us, "alice")

	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{"exactly max length", strings.Repeat("a", 140), false},
		{"one over max length", strings.Repeat("a", 141), true},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"multibyte runes counted as characters", strings.Repeat("嗨", 140), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ts.Create(&domain.Tweet{UserID: user.ID, Description: tt.description})
			if tt.wantErr {
				assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTweetService_Create_RejectedTweetLeavesNoRow(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	user := createTestUser(t, us, "alice")

	err := ts.Create(&domain.Tweet{UserID: user.ID, Description: strings.Repeat("a", 141)})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Tweet{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestTweetService_Create_RequiresUserID(t *testing.T) {
	db := testDB(t)
	ts := NewTweetService(db)

	err := ts.Create(&domain.Tweet{Description: "hello"})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestTweetService_Create_PreloadsAuthor(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	user := createTestUser(t, us, "alice")

	tweet := createTestTweet(t, ts, user.ID, "hello world")
	assert.Equal(t, user.ID, tweet.User.ID)
	assert.Equal(t, "alice", tweet.User.Name)
}

func TestTweetService_ByID(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	rs := NewReplyService(db)
	ls := NewLikeService(db)
	author := createTestUser(t, us, "alice")
	other := createTestUser(t, us, "bob")
	tweet := createTestTweet(t, ts, author.ID, "hello world")

	require.NoError(t, rs.Create(&domain.Reply{UserID: other.ID, TweetID: tweet.ID, Comment: "hi"}))
	require.NoError(t, ls.Create(&domain.Like{UserID: other.ID, TweetID: tweet.ID}))

	found, err := ts.ByID(tweet.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.User.Name)
	require.Len(t, found.Replies, 1)
	assert.Equal(t, "bob", found.Replies[0].User.Name)
	assert.Len(t, found.Likes, 1)
}

func TestTweetService_ByID_NotFound(t *testing.T) {
	db := testDB(t)
	ts := NewTweetService(db)

	_, err := ts.ByID(42)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestTweetService_Delete_CascadesToRepliesAndLikes(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	rs := NewReplyService(db)
	ls := NewLikeService(db)
	author := createTestUser(t, us, "alice")
	other := createTestUser(t, us, "bob")
	tweet := createTestTweet(t, ts, author.ID, "hello world")

	require.NoError(t, rs.Create(&domain.Reply{UserID: other.ID, TweetID: tweet.ID, Comment: "hi"}))
	require.NoError(t, ls.Create(&domain.Like{UserID: other.ID, TweetID: tweet.ID}))

	require.NoError(t, ts.Delete(&domain.Tweet{ID: tweet.ID}))

	_, err := ts.ByID(tweet.ID)
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	var replyCount, likeCount int64
	require.NoError(t, db.Model(&domain.Reply{}).Where("tweet_id = ?", tweet.ID).Count(&replyCount).Error)
	require.NoError(t, db.Model(&domain.Like{}).Where("tweet_id = ?", tweet.ID).Count(&likeCount).Error)
	assert.Equal(t, int64(0), replyCount)
	assert.Equal(t, int64(0), likeCount)
}

func TestTweetService_All_ExcludesDeleted(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	author := createTestUser(t, us, "alice")
	kept := createTestTweet(t, ts, author.ID, "kept")
	gone := createTestTweet(t, ts, author.ID, "gone")

	require.NoError(t, ts.Delete(&domain.Tweet{ID: gone.ID}))

	tweets, err := ts.All()
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	assert.Equal(t, kept.ID, tweets[0].ID)
}
