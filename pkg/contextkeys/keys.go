package contextkeys

type contextKey string

const (
	UserIDKey    contextKey = "UserID"
	UserRoleKey  contextKey = "UserRole"
	UserTokenKey contextKey = "UserToken"
)
