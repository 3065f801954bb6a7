package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

func TestFollowshipService_RejectsSelfFollow(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")

	err := fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: alice.ID})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	var count int64
	require.NoError(t, db.Model(&domain.Followship{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFollowshipService_FollowThenUnfollow(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")

	require.NoError(t, fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID}))

	// Exactly one edge exists after the follow, pointing from alice to bob.
	var edges []domain.Followship
	require.NoError(t, db.Find(&edges).Error)
	require.Len(t, edges, 1)
	assert.Equal(t, alice.ID, edges[0].FollowerID)
	assert.Equal(t, bob.ID, edges[0].FollowingID)

	require.NoError(t, fs.Delete(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID}))

	var count int64
	require.NoError(t, db.Model(&domain.Followship{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFollowshipService_Create_RejectsDuplicate(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")

	require.NoError(t, fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID}))

	err := fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID})
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	var count int64
	require.NoError(t, db.Model(&domain.Followship{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowshipService_Create_FollowedUserMustExist(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")

	err := fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: 42})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestFollowshipService_Delete_RequiresExistingEdge(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")

	err := fs.Delete(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestFollowshipService_EdgesAreDirected(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")

	require.NoError(t, fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID}))

	// Bob doesn't follow alice just because alice follows bob.
	err := fs.Delete(&domain.Followship{FollowerID: bob.ID, FollowingID: alice.ID})
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	// And bob following alice back creates a second, distinct edge.
	require.NoError(t, fs.Create(&domain.Followship{FollowerID: bob.ID, FollowingID: alice.ID}))
	var count int64
	require.NoError(t, db.Model(&domain.Followship{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestFollowshipService_FollowingIDs(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, testPepper)
	fs := NewFollowshipService(db)
	alice := createTestUser(t, us, "alice")
	bob := createTestUser(t, us, "bob")
	carol := createTestUser(t, us, "carol")

	require.NoError(t, fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: bob.ID}))
	require.NoError(t, fs.Create(&domain.Followship{FollowerID: alice.ID, FollowingID: carol.ID}))
	require.NoError(t, fs.Create(&domain.Followship{FollowerID: bob.ID, FollowingID: alice.ID}))

	ids, err := fs.FollowingIDs(alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{bob.ID, carol.ID}, ids)

	ids, err = fs.FollowingIDs(carol.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
