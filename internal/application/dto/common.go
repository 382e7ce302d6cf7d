package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeletedResponse confirmación de borrado.
type DeletedResponse struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}
