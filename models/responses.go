package models

// Error is the uniform JSON error body returned by the API for every failed
// request. The message interpolates the identifiers relevant to the failure
// (post id, caller id, owner id) for operator visibility; it never carries
// stack traces or driver-level detail.
type Error struct {
	Message string `json:"message"`
}

// UploadResponse is returned by the image upload endpoint. URL is the
// resolvable location of the stored image, ready to be attached to a post.
type UploadResponse struct {
	URL string `json:"url"`
}
