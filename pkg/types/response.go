package types

// SuccessEnvelope wraps payloads that are not entities themselves.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// MutationResponse acknowledges a create, update or delete.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

// MessageResponse acknowledges an operation without an entity id.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PageEnvelope carries one page of entities.
type PageEnvelope struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope is the body of every non-2xx JSON response.
type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   APIError `json:"error"`
}
