package dto

// ErrorResponse cuerpo de error HTTP (rutas JSON).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldError mensaje de validación a nivel de campo; se adjunta al formulario
// re-mostrado junto con los datos originales del envío.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}
