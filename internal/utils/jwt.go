package utils // package utils provides token helpers shared by the server tooling and tests

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// ViewerToken is a signed bearer token together with its expiry.
type ViewerToken struct {
    Token string
    Exp   time.Time
}

// NewViewerToken signs an HS256 token whose subject is the identity
// provider's user id. Production tokens come from the provider; this is
// used by the dev tooling and tests with the same shared secret.
func NewViewerToken(secret, subject string, ttl time.Duration) (ViewerToken, error) {
    if subject == "" {
        return ViewerToken{}, errors.New("viewer token: empty subject")
    }
    now := time.Now().UTC()
    exp := now.Add(ttl)
    claims := jwt.RegisteredClaims{
        Subject:   subject,
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(exp),
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
    if err != nil {
        return ViewerToken{}, err
    }
    return ViewerToken{Token: signed, Exp: exp}, nil
}
