package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloudvault-api/internal/application/ports"
	"cloudvault-api/internal/application/services"
	"cloudvault-api/internal/domain/user"
	"cloudvault-api/internal/interface/api/rest/dto/upload"
	"cloudvault-api/internal/interface/api/rest/middleware"
	"cloudvault-api/internal/interface/api/rest/validator"
)

const (
	actionGetSignature = "get_signature"
	actionDeleteBlob   = "delete"
)

type UploadController struct {
	uploadService ports.UploadService
	logger        *zap.Logger
}

func NewUploadController(
	r *gin.Engine,
	uploadService ports.UploadService,
	logger *zap.Logger,
	authService ports.AuthService,
) *UploadController {
	uc := &UploadController{
		uploadService: uploadService,
		logger:        logger,
	}

	r.POST(RouteFnUpload, middleware.CORS(), middleware.AuthMiddleware(authService), uc.DispatchHandler)
	r.OPTIONS(RouteFnUpload, middleware.CORS())

	return uc
}

func (uc *UploadController) DispatchHandler(c *gin.Context) {
	var req upload.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	ok, userID := validator.IsUUID(req.UserID)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}
	if userID != c.MustGet(middleware.CtxUserID).(user.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	switch req.Action {
	case actionGetSignature:
		uc.getSignature(c, userID)
	case actionDeleteBlob:
		uc.deleteBlob(c, userID, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
	}
}

func (uc *UploadController) getSignature(c *gin.Context, userID user.ID) {
	grant, err := uc.uploadService.GetSignature(userID)
	if err != nil {
		if errors.Is(err, services.ErrBlobStoreNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "blob store credentials are not configured"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to sign upload"},
		)
		uc.logger.Error("GetSignature() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, grant)
}

func (uc *UploadController) deleteBlob(c *gin.Context, userID user.ID, req upload.Request) {
	if req.PublicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_id is required"})
		return
	}

	result, err := uc.uploadService.DeleteBlob(c.Request.Context(), userID, req.PublicID)
	if err != nil {
		if errors.Is(err, services.ErrBlobStoreNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "blob store credentials are not configured"})
			return
		}
		c.JSON(
			http.StatusBadGateway,
			gin.H{"error": "blob store call failed"},
		)
		uc.logger.Error("DeleteBlob() error", zap.Error(err))
		return
	}

	// provider result passed through verbatim
	c.JSON(http.StatusOK, result)
}
