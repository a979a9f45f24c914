package entity

import "time"

// Géneros válidos para User (opcional, igual que el resto del perfil).
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User representa una cuenta del sistema. Es el "owner" de Customers e Invoices:
// toda consulta de esas entidades se limita implícitamente a su dueño.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Username     string // opcional
	Gender       string // opcional: male, female
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
