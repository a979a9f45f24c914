package notice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicely-web/pkg/notice"
)

const testSecret = "test-secret-for-notice-tokens"

func TestSignParse_RoundTrip(t *testing.T) {
	s := notice.NewSigner(testSecret)

	token, err := s.Sign(notice.Notice{Message: "Customer created successfully", Type: notice.TypeSuccess})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	n, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "Customer created successfully", n.Message)
	assert.Equal(t, notice.TypeSuccess, n.Type)
}

func TestSign_EmptySecretFails(t *testing.T) {
	s := notice.NewSigner("")
	_, err := s.Sign(notice.Notice{Message: "x", Type: notice.TypeError})
	assert.Error(t, err)
}

func TestParse_GarbageToken(t *testing.T) {
	s := notice.NewSigner(testSecret)
	_, err := s.Parse("not-a-jwt")
	assert.Error(t, err)
}

// Un token firmado con otro secreto no se acepta.
func TestParse_WrongSecret(t *testing.T) {
	token, err := notice.NewSigner("other-secret").Sign(notice.Notice{Message: "x", Type: notice.TypeError})
	require.NoError(t, err)

	_, err = notice.NewSigner(testSecret).Parse(token)
	assert.Error(t, err)
}

// Un token vencido se lee como ausencia de aviso.
func TestParse_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat":     past.Unix(),
		"exp":     past.Add(time.Minute).Unix(),
		"message": "stale",
		"type":    notice.TypeSuccess,
	})
	token, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = notice.NewSigner(testSecret).Parse(token)
	assert.Error(t, err)
}

// alg:none y variantes no-HMAC se rechazan de plano.
func TestParse_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"message": "forged",
		"type":    notice.TypeSuccess,
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = notice.NewSigner(testSecret).Parse(token)
	assert.Error(t, err)
}
