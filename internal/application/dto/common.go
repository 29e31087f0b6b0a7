package dto

// ErrorResponse cuerpo de error HTTP. Todos los endpoints devuelven la misma
// envoltura {"error": <mensaje>}.
type ErrorResponse struct {
	Error string `json:"error"`
}
