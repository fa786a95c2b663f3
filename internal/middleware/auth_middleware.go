package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MrSir504/Navigate-Tools-2.1/config"
	"github.com/MrSir504/Navigate-Tools-2.1/models"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const userCacheTTL = 10 * time.Minute

// CachedUserData is the single cache entry per authenticated advisor: identity
// plus the flattened role and permission sets.
type CachedUserData struct {
	UserID      uint     `json:"user_id"`
	Login       string   `json:"login"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

func userCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d:data", userID)
}

// AuthMiddleware validates the JWT (cookie first, then Authorization header)
// and hydrates advisor data from Redis, falling back to Postgres on a miss.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := extractToken(c)
		if err != nil {
			handleAuthError(c, err.Error())
			return
		}

		userID, err := parseUserID(tokenStr)
		if err != nil {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, err.Error())
			return
		}

		if userData := lookupCachedUser(userID); userData != nil {
			setContextAndProceed(c, userData)
			return
		}

		userData, err := loadUserData(userID)
		if err != nil {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "User from token not found")
			return
		}

		storeCachedUser(userData)
		setContextAndProceed(c, userData)
	}
}

func extractToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
		return cookie, nil
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("Authorization token not provided")
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", errors.New("Invalid Authorization header format")
	}
	return token, nil
}

func parseUserID(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.JwtKey, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("Invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("Invalid token claims")
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("Invalid user ID format in token")
	}
	return uint(id), nil
}

func lookupCachedUser(userID uint) *CachedUserData {
	if config.RDB == nil {
		return nil
	}
	raw, err := config.RDB.Get(config.Ctx, userCacheKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err, "user_id", userID)
		}
		return nil
	}
	var userData CachedUserData
	if err := json.Unmarshal([]byte(raw), &userData); err != nil {
		slog.Warn("Failed to unmarshal cached user data", "user_id", userID)
		return nil
	}
	return &userData
}

func storeCachedUser(userData *CachedUserData) {
	if config.RDB == nil {
		return
	}
	payload, err := json.Marshal(userData)
	if err != nil {
		slog.Error("Failed to marshal user data for caching", "error", err, "user_id", userData.UserID)
		return
	}
	if err := config.RDB.Set(config.Ctx, userCacheKey(userData.UserID), payload, userCacheTTL).Err(); err != nil {
		slog.Error("Failed to SET user data to cache", "error", err, "user_id", userData.UserID)
	}
}

func loadUserData(userID uint) (*CachedUserData, error) {
	var user models.User
	if err := config.DB.Preload("Roles").First(&user, userID).Error; err != nil {
		return nil, err
	}

	roleIDs := make([]uint, 0, len(user.Roles))
	roleNames := make([]string, 0, len(user.Roles))
	isAdmin := false
	for _, role := range user.Roles {
		roleIDs = append(roleIDs, role.ID)
		roleNames = append(roleNames, role.Name)
		if role.Name == "admin" {
			isAdmin = true
		}
	}

	var permissions []string
	if len(roleIDs) > 0 {
		config.DB.Table("permissions").
			Joins("join role_permissions on role_permissions.permission_id = permissions.id").
			Where("role_permissions.role_id IN ?", roleIDs).
			Distinct().
			Pluck("name", &permissions)
	}

	// Admins skip permission checks everywhere; surfacing the marker
	// permission keeps client-side logic uniform.
	if isAdmin {
		permissions = append(permissions, "admin")
	}

	return &CachedUserData{
		UserID:      user.ID,
		Login:       user.Login,
		Roles:       roleNames,
		Permissions: permissions,
	}, nil
}

func setContextAndProceed(c *gin.Context, userData *CachedUserData) {
	c.Set("user_id", userData.UserID)
	c.Set("login", userData.Login)
	c.Set("userName", userData.Login)
	c.Set("roles", userData.Roles)
	c.Set("permissions", userData.Permissions)
	c.Next()
}

// PermissionMiddleware gates a route group on a named permission. Users with
// the admin role pass unconditionally.
func PermissionMiddleware(requiredPermission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if roles, exists := c.Get("roles"); exists {
			if userRoles, ok := roles.([]string); ok {
				for _, roleName := range userRoles {
					if roleName == "admin" {
						c.Next()
						return
					}
				}
			}
		}

		permissions, exists := c.Get("permissions")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Permissions not found in context"})
			c.Abort()
			return
		}

		userPermissions, ok := permissions.([]string)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Internal permission format error"})
			c.Abort()
			return
		}

		for _, permissionName := range userPermissions {
			if permissionName == requiredPermission {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
		c.Abort()
	}
}

func handleAuthError(c *gin.Context, message string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/login")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	}
	c.Abort()
}
