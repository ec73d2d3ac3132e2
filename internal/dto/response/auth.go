package response

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

// FindEmailResponse carries a partially masked email address.
type FindEmailResponse struct {
	Email string `json:"email"`
}
