package domain

import "errors"

// Token validation failures. Both map to 401 at the API boundary; the split
// exists so logs and error messages can name the actual cause.
var ErrTokenExpired = errors.New("token has expired")
var ErrTokenInvalid = errors.New("invalid authentication credentials")
