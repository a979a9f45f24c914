// Package notice implementa el aviso one-shot entre un redirect y su destino:
// un valor {message, type} firmado como JWT de vida corta que viaja en una
// cookie. Contrato de lectura única: quien lo lee borra la cookie; un token
// inválido o vencido se lee como ausente.
package notice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de aviso para la UI.
const (
	TypeSuccess = "success"
	TypeError   = "error"
)

// tokenTTL es generoso frente a la vida real del token (un redirect
// inmediato), pero acota cuánto puede re-presentarse una cookie vieja.
const tokenTTL = 5 * time.Minute

// Notice es el aviso transitorio que se muestra una sola vez.
type Notice struct {
	Message string `json:"message"`
	Type    string `json:"type"` // success, error
}

type claims struct {
	jwt.RegisteredClaims
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Signer firma y verifica tokens de notice.
type Signer struct {
	secret []byte
}

// NewSigner construye el firmador con el secreto de la aplicación.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign serializa el aviso como JWT HS256 de vida corta.
func (s *Signer) Sign(n Notice) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("notice: secret vacío")
	}
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Message: n.Message,
		Type:    n.Type,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Parse valida el token y devuelve el aviso. Token inválido, vencido o con
// firma incorrecta retorna error; el llamador lo trata como "sin aviso".
func (s *Signer) Parse(token string) (*Notice, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Notice{Message: c.Message, Type: c.Type}, nil
}
