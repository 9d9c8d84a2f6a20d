package models

// AuthResult is the success payload of login and registration: the opaque
// bearer credential plus the account snapshot it authenticates.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio,omitempty"`
	Password    string `json:"password"`
}
