package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers los traducen a códigos HTTP; los repos traducen pgx hacia estos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidPagination  = errors.New("parámetros de paginación inválidos")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrWrongPassword      = errors.New("contraseña incorrecta")
	ErrDuplicate          = errors.New("recurso duplicado")
)
