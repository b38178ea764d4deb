package validators

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Madelineqt/clontagram-servidor/models"
	"github.com/google/uuid"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldCaption targets the free-form caption text of a post.
	FieldCaption = "caption"

	// FieldImageURL targets the optional image reference of a post.
	FieldImageURL = "image_url"
)

// MaxCaptionLength is the upper bound on post caption length, in runes.
const MaxCaptionLength = 500

// MaxImageBytes is the upper bound on an uploaded image payload.
const MaxImageBytes = 10 << 20 // 10 MiB

// imageExtensions maps accepted upload content types to the file extension
// recorded in the storage name. Anything not listed is rejected.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
}

// PostValidator implements [Validator] for [models.Post] metadata submitted
// on post creation. The zero value is not usable; construct it with
// [NewPostValidator].
type PostValidator struct {
}

func NewPostValidator() *PostValidator {
	return &PostValidator{}
}

// Validate checks the metadata of a [models.Post] value. With no field names
// it validates every field; otherwise only the named fields are checked.
//
// Rules:
//   - caption: required, at most [MaxCaptionLength] runes;
//   - image_url: optional, but must be an absolute http(s) URL when present.
//
// Returns [ErrUnsupportedType] when input is not a models.Post.
func (v *PostValidator) Validate(_ context.Context, input any, fields ...string) error {
	post, ok := input.(models.Post)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}

	if len(fields) == 0 {
		fields = []string{FieldCaption, FieldImageURL}
	}

	for _, field := range fields {
		switch field {
		case FieldCaption:
			if err := validateCaption(post.Caption); err != nil {
				return err
			}
		case FieldImageURL:
			if err := validateImageURL(post.ImageURL); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateCaption(caption string) error {
	if strings.TrimSpace(caption) == "" {
		return ErrEmptyCaption
	}
	if len([]rune(caption)) > MaxCaptionLength {
		return fmt.Errorf("%w: %d runes, maximum is %d", ErrCaptionTooLong, len([]rune(caption)), MaxCaptionLength)
	}
	return nil
}

func validateImageURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidImageURL, rawURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidImageURL, rawURL)
	}

	return nil
}

// ValidateImage checks an uploaded image payload and resolves its file
// extension from contentType.
//
// Returns the extension to use in the storage name, or:
//   - [ErrEmptyImage] when body carries no bytes;
//   - [ErrImageTooLarge] when body exceeds [MaxImageBytes];
//   - [ErrUnsupportedImageType] when contentType is not an accepted image type.
func ValidateImage(contentType string, body []byte) (string, error) {
	if len(body) == 0 {
		return "", ErrEmptyImage
	}
	if len(body) > MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes, maximum is %d", ErrImageTooLarge, len(body), MaxImageBytes)
	}

	// Parameters like "; charset=binary" are irrelevant for type matching.
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	extension, ok := imageExtensions[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, contentType)
	}

	return extension, nil
}

// ValidatePostID checks that id has the canonical UUID format used for post
// identifiers. Returns [ErrInvalidPostID] when it does not.
func ValidatePostID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPostID, id)
	}
	return nil
}

// ValidateUserID parses raw as the base-10 positive integer format used for
// user identifiers. Returns the parsed ID or [ErrInvalidUserID].
func ValidateUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

// feedDateLayouts are the accepted formats of the `fecha` feed boundary
// query parameter, tried in order.
var feedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseFeedBoundary parses raw as a feed pagination boundary timestamp.
// Returns [ErrInvalidDate] when raw matches none of the accepted layouts.
// The empty-value default ("now") is the caller's concern, not this
// function's; raw must be non-empty.
func ParseFeedBoundary(raw string) (time.Time, error) {
	for _, layout := range feedDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
