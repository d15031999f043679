package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/middleware"
	"github.com/jhartwg/scoutbase/pkg/token"
	"github.com/jhartwg/scoutbase/pkg/utils"
	"github.com/jhartwg/scoutbase/pkg/validator"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// Register godoc
// @Summary      Register a new scout account
// @Description  Create a new user with username, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      201   {object} AuthResponse "Account created, returns token and user"
// @Failure      400   {object} utils.ValidationErrorResponse "Validation error"
// @Failure      409   {object} utils.ErrorResponse "Email or username already taken"
// @Failure      500   {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid input",
			Fields: validator.ParseError(err),
		})
		return
	}

	if _, err := ac.repo.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, utils.ErrorResponse{Error: "user with this email already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to check email: " + err.Error()})
		return
	}
	if _, err := ac.repo.GetUserByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, utils.ErrorResponse{Error: "user with this username already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to check username: " + err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to hash password"})
		return
	}

	user := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Organization: req.Organization,
	}
	if err := ac.repo.CreateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create user: " + err.Error()})
		return
	}

	accessToken, err := token.GenerateJWT(user.ID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "token generation failed"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{AccessToken: accessToken, User: *user})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for an access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} AuthResponse
// @Failure      400  {object} utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object} utils.ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid input",
			Fields: validator.ParseError(err),
		})
		return
	}

	user, err := ac.repo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "invalid email or password"})
		return
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "invalid email or password"})
		return
	}

	accessToken, err := token.GenerateJWT(user.ID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{AccessToken: accessToken, User: *user})
}

// GetProfile godoc
// @Summary      Get the authenticated user
// @Tags         Auth
// @Produce      json
// @Success      200  {object} User
// @Failure      401  {object} utils.ErrorResponse "Unauthorized"
// @Router       /auth/me [get]
// @Security     Bearer
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	user, err := ac.repo.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
