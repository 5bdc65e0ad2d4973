package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloudvault-api/internal/application/ports"
	"cloudvault-api/internal/application/services"
	userDB "cloudvault-api/internal/infrastructure/db/postgres/user"
	"cloudvault-api/internal/interface/api/rest/dto/auth"
	"cloudvault-api/internal/interface/api/rest/middleware"
	"cloudvault-api/internal/interface/api/rest/validator"
)

const (
	actionSignup        = "signup"
	actionLogin         = "login"
	actionVerify        = "verify"
	actionLogout        = "logout"
	actionUpdateProfile = "update_profile"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteFnAuth, middleware.CORS(), ac.DispatchHandler)
	r.OPTIONS(RouteFnAuth, middleware.CORS())

	return ac
}

func (ac *AuthController) DispatchHandler(c *gin.Context) {
	var req auth.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	switch req.Action {
	case actionSignup:
		ac.signup(c, req)
	case actionLogin:
		ac.login(c, req)
	case actionVerify:
		ac.verify(c, req)
	case actionLogout:
		ac.logout(c, req)
	case actionUpdateProfile:
		ac.updateProfile(c, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
	}
}

func (ac *AuthController) signup(c *gin.Context, req auth.Request) {
	if errs := validator.ValidateSignup(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, token, err := ac.authService.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign up"},
		)
		ac.logger.Error("Signup() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.SessionResponse{
		User:  auth.ToResponseUser(*u),
		Token: token,
	})
}

func (ac *AuthController) login(c *gin.Context, req auth.Request) {
	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, token, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// one message for unknown email and wrong password alike
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to log in"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.SessionResponse{
		User:  auth.ToResponseUser(*u),
		Token: token,
	})
}

func (ac *AuthController) verify(c *gin.Context, req auth.Request) {
	u, err := ac.authService.Verify(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to verify session"},
		)
		ac.logger.Error("Verify() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.VerifyResponse{
		User: auth.ToResponseUser(*u),
	})
}

func (ac *AuthController) updateProfile(c *gin.Context, req auth.Request) {
	if errs := validator.ValidateProfile(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.authService.UpdateProfile(c.Request.Context(), req.Token, req.Name, req.AvatarURL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update the profile"},
		)
		ac.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.VerifyResponse{
		User: auth.ToResponseUser(*u),
	})
}

// logout never fails to the caller; a failed revoke is logged server-side.
func (ac *AuthController) logout(c *gin.Context, req auth.Request) {
	if err := ac.authService.Logout(c.Request.Context(), req.Token); err != nil {
		ac.logger.Error("Logout() error", zap.Error(err))
	}

	c.JSON(http.StatusOK, auth.LogoutResponse{Success: true})
}
