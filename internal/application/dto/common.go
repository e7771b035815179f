package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de los comandos de creación.
type IDResponse struct {
	ID string `json:"id"`
}
