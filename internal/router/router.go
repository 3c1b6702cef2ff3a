package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/product-catalog/internal/handler"    // import the handlers that implement business logic
    "github.com/iliyamo/product-catalog/internal/middleware" // import middleware for JWT authentication and rate limiting
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check, which
// load balancers and monitoring systems use to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the two unauthenticated entry points of the API:
// registration and login.  Both sit behind the rate limiter since they are
// the bcrypt-backed credential surface.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/auth", limiter)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterProducts registers the product CRUD routes.  Every route in the
// group runs the JWTAuth middleware first, so handlers always see a
// resolved user id in the context and never touch the token themselves.
func RegisterProducts(e *echo.Echo, p *handler.ProductHandler, jwtSecret string) {
	g := e.Group("/products")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("/", p.Create)
	g.GET("/", p.List)
	g.GET("/:id", p.Get)
	g.PUT("/:id", p.Update)
	g.DELETE("/:id", p.Delete)
}
