package crud

import (
	"strings"

	"gorm.io/gorm"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

// ReplyService manages Replies.
// It implements the domain.ReplyService interface.
type ReplyService struct {
	replyValidator
}

// replyValidator runs validations on incoming Reply data.
// On success, it passes the data on to replyGorm.
// Otherwise, it returns the error of the validation that has failed.
type replyValidator struct {
	replyGorm
}

// replyGorm runs CRUD operations on the database using incoming Reply data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type replyGorm struct {
	db *gorm.DB
}

// NewReplyService returns an instance of ReplyService.
func NewReplyService(db *gorm.DB) *ReplyService {
	return &ReplyService{
		replyValidator{
			replyGorm{
				db: db,
			},
		},
	}
}

// Ensure the ReplyService struct properly implements the domain.ReplyService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.ReplyService = &ReplyService{}

// Create runs validations needed for creating new Reply database records.
func (rv *replyValidator) Create(reply *domain.Reply) error {
	err := runReplyValFns(reply,
		rv.userIdValid,
		rv.repliedTweetExists,
		rv.commentMinLength)
	if err != nil {
		return err
	}
	return rv.replyGorm.Create(reply)
}

// runReplyValFns runs any number of functions of type replyValFn on the passed in Reply object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runReplyValFns(reply *domain.Reply, fns ...replyValFn) error {
	for _, fn := range fns {
		if err := fn(reply); err != nil {
			return err
		}
	}
	return nil
}

// A replyValFn is any function that takes in a pointer to a domain.Reply object and returns an error.
type replyValFn func(reply *domain.Reply) error

// commentMinLength makes sure that the Reply's comment is not empty.
func (rv *replyValidator) commentMinLength(reply *domain.Reply) error {
	stripped := strings.ReplaceAll(reply.Comment, " ", "")
	if stripped == "" {
		return errs.Errorf(errs.EINVALID, "Reply comment must not be empty.")
	}
	return nil
}

// repliedTweetExists makes sure that the Tweet to be replied to actually exists.
func (rv *replyValidator) repliedTweetExists(reply *domain.Reply) error {
	err := rv.db.First(&domain.Tweet{}, "id = ?", reply.TweetID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.Errorf(errs.ENOTFOUND, "The tweet replied to does not exist.")
		}
		return err
	}
	return nil
}

// userIdValid ensures that the userId is not empty.
func (rv *replyValidator) userIdValid(reply *domain.Reply) error {
	if reply.UserID <= 0 {
		return errs.UserIdRequired
	}
	return nil
}

// Create stores the data from the Reply object in a new database record.
// On success, it eager-loads the author relation, so that the response
// displays the full data of the created reply.
func (rg *replyGorm) Create(reply *domain.Reply) error {
	if err := rg.db.Create(reply).Error; err != nil {
		return err
	}
	return rg.db.Preload("User").First(reply).Error
}
