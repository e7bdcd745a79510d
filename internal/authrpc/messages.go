package authrpc

type User struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both Register and Login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// ProfileRequest carries no fields; the caller is identified by the bearer
// token in the "authorization" metadata.
type ProfileRequest struct{}

type ProfileResponse struct {
	User User `json:"user"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
