package handler

import (
    "context"      // provides context with cancellation for DB calls
    "database/sql" // SQL sentinel errors
    "net/http"     // HTTP status codes and primitives
    "strings"      // string manipulation utilities
    "time"         // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/product-catalog/internal/config"     // app configuration
    "github.com/iliyamo/product-catalog/internal/model"      // table mirror structs
    "github.com/iliyamo/product-catalog/internal/repository" // DB repositories
    "github.com/iliyamo/product-catalog/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
	Email               string `json:"email"`
	Password            string `json:"password"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	ProfileThumbnailURL string `json:"profileThumbnailUrl"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResp mirrors the login contract: profile fields plus the freshly
// issued access token. The keys use the camelCase names clients expect.
type loginResp struct {
	ID          uint64 `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// Register creates a new account. Registering an email that already has an
// account is not an error from the client's point of view: it answers 202
// with a hint to log in instead.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := &model.User{
		Email:               req.Email,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		ProfileThumbnailURL: req.ProfileThumbnailURL,
	}
	if _, err := h.Users.Create(ctx, u, req.Password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusAccepted, echo.Map{"message": "User already exists. Please login."})
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "registration failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "You registered successfully. Please log in."})
}

// Login verifies credentials and issues a short-lived access token bound to
// the user's id. Unknown email and wrong password answer with the same 401
// body so the two cases cannot be told apart.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid email or password, Please try again"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "login failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid email or password, Please try again"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Message:     "You logged in successfully.",
		AccessToken: access.Token,
	})
}
