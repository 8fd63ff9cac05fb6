// Package dto defines the request bodies of the auth endpoints.
package dto

// LoginReq is the body of POST /api/login: the raw Google ID token.
type LoginReq struct {
	Token string `json:"token" binding:"required"`
}
