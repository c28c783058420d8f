// Package router wires HTTP routes to handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/strokerox/agenciaHG/internal/config"
	"github.com/strokerox/agenciaHG/internal/handler"
	"github.com/strokerox/agenciaHG/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication endpoints. Register/login/refresh/
// logout live under /auth without middleware; /me and /logout-all require a
// valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("", middleware.JWTAuth(jwtSecret), middleware.RequireRole("admin", "agente"))
	auth.GET("/me", a.Me)
	auth.POST("/auth/logout-all", a.LogoutAll)
}

// RegisterAgency registers the business endpoints: sales, the client
// directory and the airline directory. All of them require a logged-in
// agency user. Directory reads sit behind the Redis response cache so the
// selectors on the new-sale form do not hammer MySQL; the cache middleware
// is a pass-through when rdb is nil.
func RegisterAgency(e *echo.Echo, s *handler.SaleHandler, cl *handler.ClientHandler, al *handler.AirlineHandler,
	jwtSecret string, cacheCfg config.CacheConfig, rdb *redis.Client) {

	g := e.Group("", middleware.JWTAuth(jwtSecret), middleware.RequireRole("admin", "agente"))

	g.POST("/sales", s.Create)
	g.GET("/sales", s.List)

	cached := middleware.NewRedisCache(cacheCfg, rdb)
	g.GET("/clients", cl.List, cached)
	g.GET("/clients/:id", cl.Get, cached)
	g.POST("/clients", cl.Create)
	g.PUT("/clients/:id", cl.Update)
	g.DELETE("/clients/:id", cl.Delete)

	g.GET("/airlines", al.List, cached)
}
