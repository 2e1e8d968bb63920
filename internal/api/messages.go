package api

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token to send back in the
// session_token metadata key.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ViewDestinationRequest struct {
	Name string `json:"name"`
}

type Destination struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	Description   string `json:"description"`
	MediaURL      string `json:"media_url,omitempty"`
	AlreadyInList bool   `json:"already_in_list"`
}

type AddToListRequest struct {
	DestinationName string `json:"destination_name"`
}

// Outcome values of AddToListResponse.
const (
	OutcomeAdded          = "added"
	OutcomeAlreadyPresent = "already_present"
)

type AddToListResponse struct {
	Outcome string `json:"outcome"`
	Key     string `json:"key"`
}

type ViewListResponse struct {
	Destinations []string `json:"destinations"`
}

type PingResponse struct {
	Status string `json:"status"`
}
