package crud

import (
	"gorm.io/gorm"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

// FollowshipService manages Followships.
// It implements the domain.FollowshipService interface.
type FollowshipService struct {
	followshipValidator
}

// followshipValidator runs validations on incoming Followship data.
// On success, it passes the data on to followshipGorm.
// Otherwise, it returns the error of the validation that has failed.
type followshipValidator struct {
	followshipGorm
}

// followshipGorm runs CRUD operations on the database using incoming
// Followship data. It assumes that data has been validated. On success,
// it returns nil. Otherwise, it returns the error of the operation that
// has failed.
type followshipGorm struct {
	db *gorm.DB
}

// NewFollowshipService returns an instance of FollowshipService.
func NewFollowshipService(db *gorm.DB) *FollowshipService {
	return &FollowshipService{
		followshipValidator{
			followshipGorm{
				db: db,
			},
		},
	}
}

// Ensure the FollowshipService struct properly implements the domain.FollowshipService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.FollowshipService = &FollowshipService{}

// Create runs validations needed for creating new Followship database records.
func (fv *followshipValidator) Create(followship *domain.Followship) error {
	err := runFollowshipValFns(followship,
		fv.followingIsNotFollower,
		fv.followedUserExists,
		fv.notAlreadyFollowed)
	if err != nil {
		return err
	}
	return fv.followshipGorm.Create(followship)
}

// Delete runs validations needed for deleting existing Followship database records.
func (fv *followshipValidator) Delete(followship *domain.Followship) error {
	err := runFollowshipValFns(followship, fv.followshipExists)
	if err != nil {
		return err
	}
	return fv.followshipGorm.Delete(followship)
}

// runFollowshipValFns runs any number of functions of type followshipValFn on the passed
// in Followship object. If none of them returns an error, it returns nil. Otherwise,
// it returns the respective error.
func runFollowshipValFns(followship *domain.Followship, fns ...followshipValFn) error {
	for _, fn := range fns {
		if err := fn(followship); err != nil {
			return err
		}
	}
	return nil
}

// A followshipValFn is any function that takes in a pointer to a domain.Followship
// object and returns an error.
type followshipValFn func(followship *domain.Followship) error

// followedUserExists makes sure that the user to be followed actually exists.
func (fv *followshipValidator) followedUserExists(followship *domain.Followship) error {
	err := fv.db.First(&domain.User{}, "id = ?", followship.FollowingID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.Errorf(errs.ENOTFOUND, "The user to be followed does not exist.")
		}
		return err
	}
	return nil
}

// followingIsNotFollower makes sure that a user does not follow themselves.
func (fv *followshipValidator) followingIsNotFollower(followship *domain.Followship) error {
	if followship.FollowerID == followship.FollowingID {
		return errs.Errorf(errs.EINVALID, "You cannot follow yourself.")
	}
	return nil
}

// followshipExists makes sure that the Followship record to be deleted
// actually exists. It resolves the record's ID from the (follower, following)
// pair in passing, so that followshipGorm.Delete hits the right row.
func (fv *followshipValidator) followshipExists(followship *domain.Followship) error {
	var existing domain.Followship
	err := fv.db.
		Where("follower_id = ? AND following_id = ?", followship.FollowerID, followship.FollowingID).
		First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.Errorf(errs.ENOTFOUND, "You don't follow this user.")
		}
		return err
	}
	followship.ID = existing.ID
	return nil
}

// notAlreadyFollowed makes sure that the follower doesn't already follow the
// user. The unique index on (follower_id, following_id) backs this up at the
// store level.
func (fv *followshipValidator) notAlreadyFollowed(followship *domain.Followship) error {
	err := fv.db.
		Where("follower_id = ? AND following_id = ?", followship.FollowerID, followship.FollowingID).
		First(&domain.Followship{}).Error
	if err == nil {
		return errs.Errorf(errs.EINVALID, "You already follow this user.")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}

// FollowingIDs returns the IDs of all users the given user follows.
func (fg *followshipGorm) FollowingIDs(userID int) ([]int, error) {
	var ids []int
	err := fg.db.
		Model(&domain.Followship{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Create stores the data from the Followship object in a new database record.
func (fg *followshipGorm) Create(followship *domain.Followship) error {
	return fg.db.Create(followship).Error
}

// Delete permanently deletes the database record matching the Followship's ID.
func (fg *followshipGorm) Delete(followship *domain.Followship) error {
	return fg.db.Delete(followship).Error
}
