package auth

import "strings"

// Guard is the single enforcement point for protected operations. It is a
// stateless check: the token alone decides the outcome, no store lookup.
type Guard struct {
	codec *TokenCodec
}

func NewGuard(codec *TokenCodec) *Guard {
	return &Guard{codec: codec}
}

// Authenticate extracts a bearer token from an Authorization header value and
// verifies it. A missing header or wrong scheme yields ErrMissingCredentials;
// any verification failure yields an ErrInvalidToken variant.
func (g *Guard) Authenticate(authorization string) (*Claims, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, ErrMissingCredentials
	}
	return g.codec.Verify(token)
}

func bearerToken(authorization string) (string, bool) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
