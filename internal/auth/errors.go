package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials indicates the request carried no usable bearer token.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidToken covers every way a presented token can fail verification.
	// The HTTP boundary reports only this; the wrapped variants below exist for
	// logging and tests.
	ErrInvalidToken = errors.New("invalid token")
	// ErrHashingFailure indicates password hashing could not complete.
	ErrHashingFailure = errors.New("password hashing failed")
	// ErrTokenCreation indicates signing a new token failed.
	ErrTokenCreation = errors.New("token creation failed")
)

// Internal distinctions of ErrInvalidToken. All satisfy
// errors.Is(err, ErrInvalidToken).
var (
	ErrTokenMalformed    = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenBadSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrTokenExpired      = fmt.Errorf("%w: expired", ErrInvalidToken)
)
