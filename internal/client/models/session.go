package models

// Session is the authenticated user identity plus its bearer credential.
// It is persisted verbatim as JSON.
type Session struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Credentials are sent to the login endpoint.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
