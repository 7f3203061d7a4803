package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "teamboard_session"

	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"

	// SessionMaxAge is the session lifetime in seconds (7 days).
	SessionMaxAge = 86400 * 7

	MinPasswordLength = 8

	// Pagination bounds
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
