package tokens

import "github.com/weixuan2008/tele-sales-token-server/internal/errors"

// Validation error codes. The strings are the wire contract: handlers return
// them verbatim in the error body, so they must not change.
const (
	ErrChannelRequired  errors.Code = "channel is required"
	ErrUIDRequired      errors.Code = "uid is required"
	ErrRoleIncorrect    errors.Code = "role is incorrect"
	ErrTokenTypeInvalid errors.Code = "token type is invalid"
	ErrUIDInvalid       errors.Code = "uid is invalid"
	ErrExpiryInvalid    errors.Code = "expiry is invalid"
)

const (
	ErrMissingCredentials errors.Code = "app_id and app_certificate must be configured"
)
