package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

func TestReplyService_Create(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	rs := NewReplyService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")
	tweet := createTestTweet(t, ts, alice.ID, "hello world")

	reply := &domain.Reply{UserID: bob.ID, TweetID: tweet.ID, Comment: "hi back"}
	require.NoError(t, rs.Create(reply))
	assert.NotZero(t, reply.ID)
	assert.Equal(t, "bob", reply.User.Name)

	found, err := ts.ByID(tweet.ID)
	require.NoError(t, err)
	require.Len(t, found.Replies, 1)
	assert.Equal(t, "hi back", found.Replies[0].Comment)
}

func TestReplyService_Create_Validations(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	ts := NewTweetService(db)
	rs := NewReplyService(db)
	alice := createTestUser(t, us, "alice")
	tweet := createTestTweet(t, ts, alice.ID, "hello world")

	tests := []struct {
		name  string
		reply domain.Reply
		code  string
	}{
		{"missing user", domain.Reply{TweetID: tweet.ID, Comment: "hi"}, errs.EINVALID},
		{"missing comment", domain.Reply{UserID: alice.ID, TweetID: tweet.ID}, errs.EINVALID},
		{"blank comment", domain.Reply{UserID: alice.ID, TweetID: tweet.ID, Comment: "   "}, errs.EINVALID},
		{"tweet gone", domain.Reply{UserID: alice.ID, TweetID: 42, Comment: "hi"}, errs.ENOTFOUND},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rs.Create(&tt.reply)
			assert.Equal(t, tt.code, errs.ErrorCode(err))

			var count int64
			db.Model(&domain.Reply{}).Count(&count)
			assert.Zero(t, count)
		})
	}
}
