package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	UserInfo UserInfo `json:"userInfo"`
}

// UserInfo is the identity carried by an access token.
type UserInfo struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
