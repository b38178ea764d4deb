package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidPostID   = errors.New("invalid post ID")
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyCaption    = errors.New("caption is required")
	ErrCaptionTooLong  = errors.New("caption exceeds maximum length")
	ErrInvalidImageURL = errors.New("invalid image URL")

	ErrEmptyImage           = errors.New("image body cannot be empty")
	ErrImageTooLarge        = errors.New("image exceeds maximum size")
	ErrUnsupportedImageType = errors.New("unsupported image content type")
)
