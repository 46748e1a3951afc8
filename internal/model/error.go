package model

// ErrorResponse is the JSON body of every API error.
// Code is stable and meant for clients; Error is for humans.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
