package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/siakadku/siakad-backend/internal/config"
	"github.com/siakadku/siakad-backend/internal/handler"
	"github.com/siakadku/siakad-backend/internal/middleware"
	"github.com/siakadku/siakad-backend/internal/model"
	"github.com/siakadku/siakad-backend/internal/response"
	"github.com/siakadku/siakad-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth *handler.AuthHandler
	Role *handler.RoleHandler
	User *handler.UserHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for login (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireJWT(authService))
	{
		// Role management
		adminAPI.GET("/roles",
			middleware.RequirePermission(string(model.PermissionViewRoles)),
			handlers.Role.ListRoles,
		)
		adminAPI.GET("/roles/:id",
			middleware.RequirePermission(string(model.PermissionViewRoles)),
			handlers.Role.GetRole,
		)
		adminAPI.POST("/roles",
			middleware.RequirePermission(string(model.PermissionManageRoles)),
			handlers.Role.CreateRole,
		)
		adminAPI.PUT("/roles/:id",
			middleware.RequirePermission(string(model.PermissionManageRoles)),
			handlers.Role.UpdateRole,
		)
		adminAPI.DELETE("/roles/:id",
			middleware.RequirePermission(string(model.PermissionManageRoles)),
			handlers.Role.DeleteRole,
		)
		adminAPI.POST("/roles/bulk-delete",
			middleware.RequirePermission(string(model.PermissionManageRoles)),
			handlers.Role.BulkDeleteRoles,
		)

		// Permission catalog (read-only, compiled-in data)
		adminAPI.GET("/permissions",
			middleware.RequirePermission(string(model.PermissionViewRoles)),
			handlers.Role.GetPermissions,
		)
		adminAPI.GET("/permissions/defaults/:role",
			middleware.RequirePermission(string(model.PermissionViewRoles)),
			handlers.Role.GetDefaultPermissions,
		)
		adminAPI.POST("/permissions/summary",
			middleware.RequirePermission(string(model.PermissionViewRoles)),
			handlers.Role.SummarizeSelection,
		)

		// Staff user management
		adminAPI.GET("/users",
			middleware.RequirePermission(string(model.PermissionViewUsers)),
			handlers.User.ListUsers,
		)
		adminAPI.POST("/users",
			middleware.RequirePermission(string(model.PermissionManageUsers)),
			handlers.User.CreateUser,
		)
		adminAPI.PUT("/users/:id",
			middleware.RequirePermission(string(model.PermissionManageUsers)),
			handlers.User.UpdateUser,
		)
		adminAPI.DELETE("/users/:id",
			middleware.RequirePermission(string(model.PermissionManageUsers)),
			handlers.User.DeleteUser,
		)
		adminAPI.POST("/users/bulk-delete",
			middleware.RequirePermission(string(model.PermissionManageUsers)),
			handlers.User.BulkDeleteUsers,
		)
		adminAPI.POST("/users/:id/role",
			middleware.RequirePermission(string(model.PermissionManageUsers)),
			handlers.User.AssignRole,
		)
	}

	return router
}
