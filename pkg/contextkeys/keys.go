package contextkeys

type contextKey string

const (
	ClaimsKey contextKey = "claims"
	UserIDKey contextKey = "userID"
)
