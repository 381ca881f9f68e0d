// Package dto defines data transfer objects for the directory feature's HTTP transport layer.
package dto

// UserItem is the public view of a directory user.
type UserItem struct {
	Handle    string `json:"handle"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AvailabilityResponse reports whether a handle is free.
type AvailabilityResponse struct {
	Handle    string `json:"handle"`
	Available bool   `json:"available"`
}

// SearchQuery binds the query string of the search endpoint.
type SearchQuery struct {
	By string `form:"by"`
	Q  string `form:"q"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
