package crud

import (
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

// TweetService manages Tweets.
// It implements the domain.TweetService interface.
type TweetService struct {
	tweetValidator
}

// tweetValidator runs validations on incoming Tweet data.
// On success, it passes the data on to tweetGorm.
// Otherwise, it returns the error of the validation that has failed.
type tweetValidator struct {
	tweetGorm
}

// tweetGorm runs CRUD operations on the database using incoming Tweet data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type tweetGorm struct {
	db *gorm.DB
}

// NewTweetService returns an instance of TweetService.
func NewTweetService(db *gorm.DB) *TweetService {
	return &TweetService{
		tweetValidator{
			tweetGorm{
				db: db,
			},
		},
	}
}

// Ensure the TweetService struct properly implements the domain.TweetService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.TweetService = &TweetService{}

// Create runs validations needed for creating new Tweet database records.
func (tv *tweetValidator) Create(tweet *domain.Tweet) error {
	err := runTweetValFns(tweet,
		tv.userIdValid,
		tv.descriptionMinLength,
		tv.descriptionMaxLength)
	if err != nil {
		return err
	}
	return tv.tweetGorm.Create(tweet)
}

// Delete runs validations needed for deleting existing Tweet database records.
func (tv *tweetValidator) Delete(tweet *domain.Tweet) error {
	err := runTweetValFns(tweet, tv.idValid)
	if err != nil {
		return err
	}
	return tv.tweetGorm.Delete(tweet)
}

// runTweetValFns runs any number of functions of type tweetValFn on the passed in Tweet object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runTweetValFns(tweet *domain.Tweet, fns ...tweetValFn) error {
	for _, fn := range fns {
		if err := fn(tweet); err != nil {
			return err
		}
	}
	return nil
}

// A tweetValFn is any function that takes in a pointer to a domain.Tweet object and returns an error.
type tweetValFn = func(tweet *domain.Tweet) error

// descriptionMinLength makes sure that the Tweet's description is not empty.
func (tv *tweetValidator) descriptionMinLength(tweet *domain.Tweet) error {
	stripped := strings.ReplaceAll(tweet.Description, " ", "")
	if stripped == "" {
		return errs.Errorf(errs.EINVALID, "Tweet description must not be empty.")
	}
	return nil
}

// descriptionMaxLength makes sure that the Tweet's description does not
// exceed the maximum length of 140 characters.
func (tv *tweetValidator) descriptionMaxLength(tweet *domain.Tweet) error {
	if utf8.RuneCountInString(tweet.Description) > domain.MaxTweetLength {
		return errs.Errorf(errs.EINVALID, "Tweet description max length is %d characters.", domain.MaxTweetLength)
	}
	return nil
}

// idValid makes sure that the passed in ID of a Tweet to be deleted is greater than 0.
func (tv *tweetValidator) idValid(tweet *domain.Tweet) error {
	if tweet.ID <= 0 {
		return errs.IdInvalid
	}
	return nil
}

// userIdValid ensures that the userId is not empty.
func (tv *tweetValidator) userIdValid(tweet *domain.Tweet) error {
	if tweet.UserID <= 0 {
		return errs.UserIdRequired
	}
	return nil
}

// ByID retrieves a single Tweet by ID, along with its author, Replies
// (each with its author) and Likes.
func (tg *tweetGorm) ByID(id int) (*domain.Tweet, error) {
	var tweet domain.Tweet
	err := tg.db.
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Preload("Replies.User").
		Preload("Likes").
		First(&tweet, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.Errorf(errs.ENOTFOUND, "The tweet does not exist.")
		}
		return nil, err
	}
	return &tweet, nil
}

// All retrieves every Tweet, newest first, along with its author, Replies
// and Likes. The feed and the admin moderation list are both built from it.
func (tg *tweetGorm) All() ([]domain.Tweet, error) {
	var tweets []domain.Tweet
	err := tg.db.
		Preload("User").
		Preload("Replies").
		Preload("Likes").
		Order("created_at DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// Create stores the data from the Tweet object in a new database record.
// On success, it eager-loads the author relation, so that the response
// displays the full data of the created tweet.
func (tg *tweetGorm) Create(tweet *domain.Tweet) error {
	if err := tg.db.Create(tweet).Error; err != nil {
		return err
	}
	return tg.db.Preload("User").First(tweet).Error
}

// Delete soft-deletes a Tweet record from the database, along with its
// associated Replies and Likes.
func (tg *tweetGorm) Delete(tweet *domain.Tweet) error {
	return tg.db.Select("Replies", "Likes").Delete(tweet).Error
}
