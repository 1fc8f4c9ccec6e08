package auth

import (
	"net/http"

	"lycosidae/database"
	"lycosidae/middleware"
	"lycosidae/services"
	"lycosidae/utils"
	"lycosidae/utils/response"

	"github.com/gin-gonic/gin"
)

// Register creates a new user account
// @Summary Register a new user
// @Description Create a user account with a unique username and email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /register [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	user, err := services.CreateUser(database.DB, services.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login issues a JWT for valid credentials
// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func Login(jm *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}

		user, err := services.GetUserByEmail(database.DB, req.Email)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}
		if !utils.CheckPassword(user.Password, req.Password) {
			response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}

		token, err := jm.GenerateToken(user)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// Me returns the authenticated user's record
// @Summary Get the current user
// @Description Return the account belonging to the presented token
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]interface{}
// @Router /me [get]
// @Security Bearer
func Me(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	user, err := services.GetUser(database.DB, userID)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, ErrUserNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}
