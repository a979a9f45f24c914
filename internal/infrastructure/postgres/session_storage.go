package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ fiber.Storage = (*SessionStorage)(nil)

const sessionGCInterval = time.Hour

// SessionStorage implementa fiber.Storage sobre la tabla sessions: un registro
// por navegador autenticado, clave = sid opaco de la cookie. Un janitor
// periódico purga las sesiones vencidas.
type SessionStorage struct {
	pool *pgxpool.Pool
	done chan struct{}
}

// NewSessionStorage construye el storage y arranca el janitor.
func NewSessionStorage(pool *pgxpool.Pool) *SessionStorage {
	s := &SessionStorage{pool: pool, done: make(chan struct{})}
	go s.gcLoop()
	return s
}

// Get devuelve los datos de la sesión o nil si no existe o ya venció.
func (s *SessionStorage) Get(key string) ([]byte, error) {
	query := `SELECT v FROM sessions WHERE k = $1 AND (exp IS NULL OR exp > now())`
	var v []byte
	err := s.pool.QueryRow(context.Background(), query, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return v, nil
}

// Set guarda (o reemplaza) la sesión con su vencimiento.
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	var expiresAt *time.Time
	if exp > 0 {
		t := time.Now().Add(exp)
		expiresAt = &t
	}
	query := `
		INSERT INTO sessions (k, v, exp) VALUES ($1, $2, $3)
		ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, exp = EXCLUDED.exp`
	if _, err := s.pool.Exec(context.Background(), query, key, val, expiresAt); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Delete elimina la sesión.
func (s *SessionStorage) Delete(key string) error {
	if _, err := s.pool.Exec(context.Background(), `DELETE FROM sessions WHERE k = $1`, key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Reset elimina todas las sesiones.
func (s *SessionStorage) Reset() error {
	if _, err := s.pool.Exec(context.Background(), `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

// Close detiene el janitor. El pool lo cierra quien lo creó.
func (s *SessionStorage) Close() error {
	close(s.done)
	return nil
}

func (s *SessionStorage) gcLoop() {
	ticker := time.NewTicker(sessionGCInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_, _ = s.pool.Exec(context.Background(), `DELETE FROM sessions WHERE exp IS NOT NULL AND exp <= now()`)
		case <-s.done:
			return
		}
	}
}
