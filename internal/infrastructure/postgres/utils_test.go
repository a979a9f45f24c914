package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// likePattern debe envolver el término en % y escapar los metacaracteres de
// LIKE para que un término del usuario nunca actúe como comodín.
func TestLikePattern(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"término plano", "alice", "%alice%"},
		{"porcentaje escapado", "50%", `%50\%%`},
		{"guion bajo escapado", "user_name", `%user\_name%`},
		{"backslash escapado", `a\b`, `%a\\b%`},
		{"combinado", `%_\`, `%\%\_\\%`},
		{"vacío", "", "%%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, likePattern(tc.in))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
}
