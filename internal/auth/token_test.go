package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestGenerateAndVerify(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, issued, err := tm.GenerateToken("u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "u1", issued.Subject)
	assert.NotEmpty(t, issued.ID)
	assert.WithinDuration(t, issued.IssuedAt.Add(time.Hour), issued.ExpiresAt, time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, issued.ID, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyIsIdempotent(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	token, _, err := tm.GenerateToken("u1")
	require.NoError(t, err)

	first, err := tm.Verify(token)
	require.NoError(t, err)
	second, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyRejectsExpiredCredential(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := tm.GenerateToken("u1")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyRejections(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	valid := jwt.RegisteredClaims{
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	cases := []struct {
		name       string
		credential string
		want       error
	}{
		{name: "empty", credential: "", want: ErrMissingCredential},
		{name: "blank", credential: "   ", want: ErrMissingCredential},
		{name: "garbage", credential: "not.a.jwt", want: ErrInvalidCredential},
		{
			name:       "wrong secret",
			credential: signed(t, jwt.SigningMethodHS256, []byte("other-secret"), valid),
			want:       ErrInvalidCredential,
		},
		{
			name:       "different hmac algorithm",
			credential: signed(t, jwt.SigningMethodHS512, []byte(testSecret), valid),
			want:       ErrInvalidCredential,
		},
		{
			name:       "unsigned",
			credential: signed(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid),
			want:       ErrInvalidCredential,
		},
		{
			name: "missing subject",
			credential: signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
			want: ErrInvalidCredential,
		},
		{
			name: "missing expiry",
			credential: signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject: "u1",
			}),
			want: ErrInvalidCredential,
		},
		{
			name: "issued in the future",
			credential: signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
				Subject:   "u1",
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
			}),
			want: ErrInvalidCredential,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := tm.Verify(tc.credential)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCredentialFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		err    error
	}{
		{header: "Bearer abc", token: "abc"},
		{header: "bearer   abc ", token: "abc"},
		{header: "abc", token: "abc"},
		{header: "", err: ErrMissingCredential},
		{header: "Bearer ", err: ErrMissingCredential},
		{header: "bearer", err: ErrMissingCredential},
		{header: "Bearer    ", err: ErrMissingCredential},
		{header: "Basic dXNlcjpwYXNz", err: ErrInvalidCredential},
	}
	for _, tc := range cases {
		token, err := credentialFromHeader(tc.header)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.header)
			continue
		}
		require.NoError(t, err, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}
