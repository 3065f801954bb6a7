package domain

import (
	"fmt"
	"mime/multipart"
	"net/url"
)

const (
	// UploadBaseDir determines the storage location of uploaded avatar files.
	// Everything below it is served as static files under /upload/.
	UploadBaseDir = "upload"
	// MaxAvatarSize determines the maximum filesize of an avatar to be uploaded.
	MaxAvatarSize int64 = 5 << 20 // 5 Megabyte
)

// Avatar represents a user's profile image to be uploaded. Avatars are only
// stored as files in the filesystem and have no dedicated table in the
// database; the owning User record keeps the file's URL in its Avatar column.
// An avatar belonging to the User with ID 1 is stored as:
// upload/user/1/unique_name.jpeg.
type Avatar struct {
	URL         string         `json:"url"`
	UserID      int            `json:"-"`
	File        multipart.File `json:"-"`
	Filename    string         `json:"-"`
	Extension   string         `json:"-"`
	ContentType string         `json:"-"`
	Size        int64          `json:"-"`
}

// AvatarService is a set of methods to manipulate and work with avatar files.
type AvatarService interface {
	// Create validates and stores the avatar file, replacing any avatar the
	// user had before.
	Create(avatar *Avatar) error
}

// Path returns the URL path of an avatar stored in the filesystem.
func (a *Avatar) Path() string {
	temp := url.URL{
		Path: "/" + a.RelativePath(),
	}
	return temp.String()
}

// RelativePath returns the relative path to an avatar stored in the filesystem.
func (a *Avatar) RelativePath() string {
	return fmt.Sprintf("%v/user/%v/%v", UploadBaseDir, a.UserID, a.Filename)
}
