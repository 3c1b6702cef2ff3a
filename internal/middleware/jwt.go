package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/product-catalog/internal/utils" // token parsing helpers
)

// Client-facing messages for the three ways a request can fail the guard.
// The expired and invalid texts are part of the API contract and are the
// exact strings clients are told to act on.
const (
    msgMissingBearer = "Authorization header with Bearer token required"
    msgTokenInvalid  = "Invalid token. Please register or login."
    msgTokenExpired  = "Expired token. Please login to get a new token."
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject into the request context as "user_id"
// (uint64).  The provided secret must match the one used when issuing
// tokens.  This middleware wraps every /products route so that handlers
// can rely on an authenticated user id without re-decoding the token.
//
// The header is parsed totally: an absent or malformed Authorization
// header is a structured 401, never a fault.  An invalid or expired token
// is answered with the corresponding contract message.
func JWTAuth(secret string) echo.MiddlewareFunc {
    // The outer function returns a middleware function.  Echo executes this
    // once when registering the middleware.
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        // The returned handler is invoked for each incoming HTTP request.
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header should start
            // with "Bearer " followed by the JWT.  If it doesn't, respond
            // with 401 Unauthorized indicating that authentication is
            // required.  This also covers the header being absent entirely.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": msgMissingBearer})
            }
            // Remove the "Bearer " prefix to obtain the raw token string.
            // A header of exactly "Bearer " leaves an empty token, which
            // the parser rejects as invalid rather than crashing.
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Validate the signature and expiry and resolve the subject.
            uid, err := utils.ParseAccessToken(secret, raw)
            if err != nil {
                msg := msgTokenInvalid
                if err == utils.ErrTokenExpired {
                    msg = msgTokenExpired
                }
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": msg})
            }

            // Store the resolved user id in the context.  Handlers access
            // it via c.Get("user_id") and never touch the token again.
            c.Set("user_id", uid)
            // Call the next handler in the chain and return its result.
            return next(c)
        }
    }
}
