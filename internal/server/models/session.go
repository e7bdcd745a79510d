package models

// SessionUser is the public part of an account handed back to callers.
type SessionUser struct {
	FullName string
	Email    string
}

// Session is the result of a successful registration or login.
type Session struct {
	Token string
	User  SessionUser
}

// SessionClaims is the payload signed into a session token.
type SessionClaims struct {
	Subject string
	Email   string
}
