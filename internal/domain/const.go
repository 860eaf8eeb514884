package domain

const (
	// RequesterIDCtxKey holds the authenticated user ID on the request
	// context once the auth middleware has resolved a bearer token.
	RequesterIDCtxKey = "rb-requesterId"
)
