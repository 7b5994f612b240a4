package dto

// Severidades de mensajes hacia el usuario (categorías flash clásicas).
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// ErrorResponse cuerpo de error HTTP. Severity distingue advertencias de
// regla de negocio (warning) de fallos reales (danger).
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity,omitempty"`
}

// MessageResponse cuerpo de éxito con mensaje para el usuario.
type MessageResponse struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}
