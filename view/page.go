package view

import "simpleTwitter/domain"

// TweetsPage is the feed: all tweets plus the most-followed users.
type TweetsPage struct {
	Tweets   []TweetItem `json:"tweets"`
	TopUsers []UserCard  `json:"top_users"`
}

// NewTweetsPage annotates the tweet set for the viewer and ranks the user
// set by follower count, keeping the top 3.
func NewTweetsPage(tweets []domain.Tweet, users []domain.User, viewerID int, viewerFollowingIDs []int) TweetsPage {
	return TweetsPage{
		Tweets:   NewTweetItems(tweets, viewerID),
		TopUsers: RankByFollowerCount(users, viewerFollowingIDs, TopUsersCount),
	}
}

// RepliesPage is the tweet detail view: the tweet, its author's profile
// card, and the replies below it.
type RepliesPage struct {
	Tweet    TweetItem   `json:"tweet"`
	Author   UserCard    `json:"author"`
	Replies  []ReplyItem `json:"replies"`
	SelfUser bool        `json:"self_user"`
}

// NewRepliesPage builds the tweet detail view. The author card comes from a
// separately fetched full profile record so its counts are complete.
func NewRepliesPage(tweet domain.Tweet, author domain.User, viewerID int, viewerFollowingIDs []int) RepliesPage {
	return RepliesPage{
		Tweet:    NewTweetItem(tweet, viewerID),
		Author:   NewUserCard(author, viewerFollowingIDs),
		Replies:  NewReplyItems(tweet.Replies),
		SelfUser: viewerID == tweet.UserID,
	}
}

// ProfilePage is a user's tweet wall plus their profile card.
type ProfilePage struct {
	Profile  UserCard    `json:"profile"`
	Tweets   []TweetItem `json:"tweets"`
	SelfUser bool        `json:"self_user"`
}

// NewProfilePage builds a user's tweet wall. The profile's IsFollowed flag
// and every tweet's IsLiked flag are the viewer's.
func NewProfilePage(profile domain.User, viewerID int, viewerFollowingIDs []int) ProfilePage {
	return ProfilePage{
		Profile:  NewUserCard(profile, viewerFollowingIDs),
		Tweets:   NewTweetItems(profile.Tweets, viewerID),
		SelfUser: viewerID == profile.ID,
	}
}

// FollowersPage lists who follows a user.
type FollowersPage struct {
	Profile   UserCard   `json:"profile"`
	Followers []UserCard `json:"followers"`
	SelfUser  bool       `json:"self_user"`
}

// NewFollowersPage builds a user's follower list, newest relationship first.
func NewFollowersPage(profile domain.User, viewerID int, viewerFollowingIDs []int) FollowersPage {
	return FollowersPage{
		Profile:   NewUserCard(profile, viewerFollowingIDs),
		Followers: NewFollowerList(profile.Followers, viewerFollowingIDs),
		SelfUser:  viewerID == profile.ID,
	}
}

// FollowingsPage lists whom a user follows.
type FollowingsPage struct {
	Profile    UserCard   `json:"profile"`
	Followings []UserCard `json:"followings"`
	SelfUser   bool       `json:"self_user"`
}

// NewFollowingsPage builds a user's following list, newest relationship first.
func NewFollowingsPage(profile domain.User, viewerID int, viewerFollowingIDs []int) FollowingsPage {
	return FollowingsPage{
		Profile:    NewUserCard(profile, viewerFollowingIDs),
		Followings: NewFollowingList(profile.Followings, viewerFollowingIDs),
		SelfUser:   viewerID == profile.ID,
	}
}

// LikesPage lists the tweets a user has liked.
type LikesPage struct {
	Profile  UserCard   `json:"profile"`
	Likes    []LikeItem `json:"likes"`
	SelfUser bool       `json:"self_user"`
}

// NewLikesPage builds a user's liked-tweets view. Each liked tweet's IsLiked
// flag belongs to the session viewer, not to the profile owner whose likes
// are being listed.
func NewLikesPage(profile domain.User, viewerID int, viewerFollowingIDs []int) LikesPage {
	return LikesPage{
		Profile:  NewUserCard(profile, viewerFollowingIDs),
		Likes:    NewLikeItems(profile.Likes, viewerID),
		SelfUser: viewerID == profile.ID,
	}
}

// AdminTweetsPage is the moderation list of all tweets.
type AdminTweetsPage struct {
	Tweets []TweetItem `json:"tweets"`
}

// NewAdminTweetsPage annotates the full tweet list for the admin viewer.
func NewAdminTweetsPage(tweets []domain.Tweet, viewerID int) AdminTweetsPage {
	return AdminTweetsPage{
		Tweets: NewTweetItems(tweets, viewerID),
	}
}

// AdminUsersPage is the admin list of all users.
type AdminUsersPage struct {
	Users []UserCard `json:"users"`
}

// NewAdminUsersPage builds cards for every user, with the admin as viewer.
func NewAdminUsersPage(users []domain.User, viewerFollowingIDs []int) AdminUsersPage {
	return AdminUsersPage{
		Users: NewUserCards(users, viewerFollowingIDs),
	}
}
