package tenant

import (
	"context"
)

type contextKey string

const (
	businessIDKey contextKey = "business_id"
	userIDKey     contextKey = "user_id"
	roleKey       contextKey = "role"
)

// SetBusinessIDContext define o business ID no contexto
func SetBusinessIDContext(ctx context.Context, businessID string) context.Context {
	return context.WithValue(ctx, businessIDKey, businessID)
}

// GetBusinessIDFromContext obtém o business ID do contexto
func GetBusinessIDFromContext(ctx context.Context) string {
	if businessID, ok := ctx.Value(businessIDKey).(string); ok {
		return businessID
	}
	return ""
}

// SetUserIDContext define o user ID no contexto
func SetUserIDContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext obtém o user ID do contexto
func GetUserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok {
		return userID
	}
	return ""
}

// SetRoleContext define o papel do usuário no contexto
func SetRoleContext(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// GetRoleFromContext obtém o papel do usuário do contexto
func GetRoleFromContext(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return ""
}

// GetBusinessID obtém o business ID de um contexto do Gin
func GetBusinessID(c interface{}) string {
	if gc, ok := c.(interface{ GetString(string) string }); ok {
		return gc.GetString("business_id")
	}
	return ""
}

// GetUserID obtém o user ID de um contexto do Gin
func GetUserID(c interface{}) string {
	if gc, ok := c.(interface{ GetString(string) string }); ok {
		return gc.GetString("user_id")
	}
	return ""
}
