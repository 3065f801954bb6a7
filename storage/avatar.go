// Package storage persists uploaded avatar files in the filesystem.
package storage

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"simpleTwitter/domain"
	"simpleTwitter/errs"
)

var _ domain.AvatarService = &AvatarService{}

// NewAvatarService returns an instance of AvatarService.
func NewAvatarService() *AvatarService {
	return &AvatarService{
		avatarValidator{
			avatarCrud{},
		},
	}
}

// AvatarService manages avatar files.
// It implements the domain.AvatarService interface.
type AvatarService struct {
	avatarValidator
}

// avatarValidator runs validations on an incoming avatar upload.
// On success, it passes the data on to avatarCrud.
type avatarValidator struct {
	avatarCrud
}

// avatarCrud stores avatar files in the filesystem.
type avatarCrud struct{}

// Create runs validations on the uploaded avatar, then stores it. Any
// previously stored avatar of the same user is removed, so a user only ever
// has one avatar file on disk.
func (av *avatarValidator) Create(avatar *domain.Avatar) error {
	err := runAvatarValFns(avatar,
		av.extensionValid,
		av.contentTypeValid,
		av.contentTypeExtensionMatch,
		av.belowMaxSize,
		av.fileNameUnique,
	)
	if err != nil {
		return err
	}
	return av.avatarCrud.Create(avatar)
}

type avatarValFn func(avatar *domain.Avatar) error

func runAvatarValFns(avatar *domain.Avatar, fns ...avatarValFn) error {
	for _, fn := range fns {
		if err := fn(avatar); err != nil {
			return err
		}
	}
	return nil
}

func (av *avatarValidator) belowMaxSize(avatar *domain.Avatar) error {
	size, err := avatar.File.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if err = resetReaderPosition(avatar); err != nil {
		return err
	}
	if size > domain.MaxAvatarSize {
		return errs.Errorf(
			errs.EINVALID,
			"Avatar "+avatar.Filename+" exceeds upload size limit of "+strconv.FormatInt(domain.MaxAvatarSize/1000000, 10)+"MB.",
		)
	}
	return nil
}

func (av *avatarValidator) contentTypeValid(avatar *domain.Avatar) error {
	buffer := make([]byte, 512)
	_, err := avatar.File.Read(buffer)
	if err != nil {
		return err
	}
	if err = resetReaderPosition(avatar); err != nil {
		return err
	}
	contentType := http.DetectContentType(buffer)
	if contentType != "image/jpeg" && contentType != "image/png" {
		return errs.Errorf(
			errs.EINVALID,
			"Avatar "+avatar.Filename+" invalid content-type, must be image/jpeg or image/png.",
		)
	}
	avatar.ContentType = contentType
	return nil
}

func (av *avatarValidator) contentTypeExtensionMatch(avatar *domain.Avatar) error {
	contentType := strings.TrimPrefix(avatar.ContentType, "image/")
	ext := strings.TrimPrefix(avatar.Extension, ".")
	if contentType != ext {
		return errs.Errorf(
			errs.EINVALID,
			"Avatar "+avatar.Filename+" content-type "+avatar.ContentType+" does not match extension "+avatar.Extension+".",
		)
	}
	return nil
}

func (av *avatarValidator) extensionValid(avatar *domain.Avatar) error {
	ext := filepath.Ext(avatar.Filename)
	ext = strings.ToLower(ext)
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return errs.Errorf(
			errs.EINVALID,
			"Avatar "+avatar.Filename+" invalid extension, must be .jpeg or .png",
		)
	}
	if ext == ".jpg" {
		ext = ".jpeg"
	}
	avatar.Extension = ext
	return nil
}

func (av *avatarValidator) fileNameUnique(avatar *domain.Avatar) error {
	timestamp := time.Now().UnixMicro()
	avatar.Filename = strconv.FormatInt(timestamp, 10) + avatar.Extension
	return nil
}

// resetReaderPosition seeks back to the beginning of the file, so that
// subsequent reads will work.
func resetReaderPosition(avatar *domain.Avatar) error {
	_, err := avatar.File.Seek(0, io.SeekStart)
	return err
}

// Create stores the avatar file under the user's upload directory, clearing
// out any previous avatar first.
func (ac *avatarCrud) Create(avatar *domain.Avatar) error {
	path, err := ac.mkAvatarPath(avatar.UserID)
	if err != nil {
		return err
	}
	old, err := filepath.Glob(path + "*")
	if err != nil {
		return err
	}
	for _, f := range old {
		if err := os.Remove(f); err != nil {
			return err
		}
	}
	dst, err := os.Create(path + avatar.Filename)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err = io.Copy(dst, avatar.File); err != nil {
		return err
	}
	avatar.URL = avatar.Path()
	return nil
}

func (ac *avatarCrud) mkAvatarPath(userID int) (string, error) {
	avatarPath := fmt.Sprintf("%v/user/%v/", domain.UploadBaseDir, userID)
	if err := os.MkdirAll(avatarPath, 0755); err != nil {
		return "", err
	}
	return avatarPath, nil
}
