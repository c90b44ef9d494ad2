package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Token & upstream-collaborator errors
var (
	ErrTokenMissing = errors.New("token is required")
	ErrTokenInvalid = errors.New("invalid token")
	ErrUploadFailed = errors.New("image upload failed")
)

// NewTokenMissingError reports an absent bearer credential. The wire contract
// returns these as 400, not 401.
func NewTokenMissingError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrTokenMissing,
	}
}

// NewTokenInvalidError reports a bearer credential that failed signature or
// expiry verification.
func NewTokenInvalidError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrTokenInvalid,
		Cause:      cause,
	}
}

// NewUploadError surfaces an image-upload failure with the raw upstream error.
// Uploads are never retried.
func NewUploadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Error uploading image: %v", cause),
		Cause:      cause,
	}
}

func IsTokenMissingError(err error) bool {
	return errors.Is(err, ErrTokenMissing)
}

func IsTokenInvalidError(err error) bool {
	return errors.Is(err, ErrTokenInvalid)
}

func IsUploadError(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}
