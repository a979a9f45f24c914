package entity

import "time"

// Customer representa un cliente facturable. OwnerID es inmutable después de la
// creación y siempre proviene de la sesión autenticada, nunca del formulario.
type Customer struct {
	ID        string
	OwnerID   string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
