package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewViewerToken(t *testing.T) {
    tok, err := NewViewerToken("s3cret", "kp_7", time.Hour)
    require.NoError(t, err)
    assert.WithinDuration(t, time.Now().Add(time.Hour), tok.Exp, 5*time.Second)

    var claims jwt.RegisteredClaims
    _, err = jwt.ParseWithClaims(tok.Token, &claims, func(*jwt.Token) (any, error) {
        return []byte("s3cret"), nil
    })
    require.NoError(t, err)
    assert.Equal(t, "kp_7", claims.Subject)

    _, err = NewViewerToken("s3cret", "", time.Hour)
    assert.Error(t, err)
}
