package dto

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,max=45"`
	Login    string `json:"login" binding:"required,max=30"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserProfile struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Login  string `json:"login"`
	Role   string `json:"role"`
	RoleID uint64 `json:"role_id"`
	Image  string `json:"image"`
}

// UpdateUserRequest is a truthy partial update: an omitted field, an
// empty string and a zero id all mean "leave unchanged". Image is
// base64-encoded.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
	RoleID   uint64 `json:"role_id"`
	Image    string `json:"image"`
}

type MessageResponse struct {
	Message  string `json:"message"`
	NewToken string `json:"new_token,omitempty"`
}
