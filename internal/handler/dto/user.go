package dto

// LoginRequest represents the request body for the credential check.
type LoginRequest struct {
	Username   string `json:"username"`
	Credential string `json:"credential"`
}

// LoginResponse reports the outcome of a credential check. The wire key
// "acceso" is kept verbatim from the legacy client contract.
type LoginResponse struct {
	Acceso bool `json:"acceso"`
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Username   string `json:"username"`
	Credential string `json:"credential"`
}

// SetActiveAgentsRequest represents the request body for replacing the
// active agent pool.
type SetActiveAgentsRequest struct {
	Agents []string `json:"agents"`
}
