package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cloudvault-api/internal/application/ports"
	"cloudvault-api/internal/application/services"
	domain "cloudvault-api/internal/domain/file"
	"cloudvault-api/internal/domain/user"
	dtoFile "cloudvault-api/internal/interface/api/rest/dto/file"
	"cloudvault-api/internal/interface/api/rest/middleware"
	"cloudvault-api/internal/interface/api/rest/validator"
)

const (
	actionList   = "list"
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

type FilesController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFilesController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	authService ports.AuthService,
) *FilesController {
	fc := &FilesController{
		fileService: fileService,
		logger:      logger,
	}

	r.POST(RouteFnFiles, middleware.CORS(), middleware.AuthMiddleware(authService), fc.DispatchHandler)
	r.OPTIONS(RouteFnFiles, middleware.CORS())

	return fc
}

func (fc *FilesController) DispatchHandler(c *gin.Context) {
	var req dtoFile.Request
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
	// the body's user_id must be the session's user; anyone else's
	// records read as nonexistent
	if userID != c.MustGet(middleware.CtxUserID).(user.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	switch req.Action {
	case actionList:
		fc.list(c, userID)
	case actionCreate:
		fc.create(c, userID, req)
	case actionUpdate:
		fc.update(c, userID, req)
	case actionDelete:
		fc.delete(c, userID, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
	}
}

func (fc *FilesController) list(c *gin.Context, userID user.ID) {
	files, err := fc.fileService.ListFiles(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("ListFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dtoFile.ListResponse{
		Files: dtoFile.ToResponseFiles(files),
	})
}

func (fc *FilesController) create(c *gin.Context, userID user.ID, req dtoFile.Request) {
	if req.Data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_data is required"})
		return
	}
	if validator.IsBlankName(req.Data.Name) && validator.IsBlankName(req.Data.OriginalName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file name must not be blank"})
		return
	}

	f, err := fc.fileService.CreateFile(c.Request.Context(), userID, dtoFile.ToDomainFile(*req.Data))
	if err != nil {
		if errors.Is(err, services.ErrBlankFileName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file name must not be blank"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a file"},
		)
		fc.logger.Error("CreateFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dtoFile.CreateResponse{
		File: dtoFile.ToResponseFile(*f),
	})
}

func (fc *FilesController) update(c *gin.Context, userID user.ID, req dtoFile.Request) {
	ok, fileID := validator.IsUUID(req.FileID)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	var patch domain.Patch
	if req.NewName != "" {
		if validator.IsBlankName(req.NewName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new name must not be blank"})
			return
		}
		name := req.NewName
		patch.Name = &name
	}
	if req.Data != nil {
		patch.IsStarred = req.Data.IsStarred
		patch.IsDeleted = req.Data.IsDeleted
	}
	if patch.Name == nil && patch.IsStarred == nil && patch.IsDeleted == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	updated, err := fc.fileService.UpdateFile(c.Request.Context(), userID, fileID, patch)
	if err != nil {
		if errors.Is(err, services.ErrBlankFileName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new name must not be blank"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update the file"},
		)
		fc.logger.Error("UpdateFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dtoFile.MutationResponse{Success: true, Updated: updated})
}

func (fc *FilesController) delete(c *gin.Context, userID user.ID, req dtoFile.Request) {
	ok, fileID := validator.IsUUID(req.FileID)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	deleted, err := fc.fileService.DeleteFile(c.Request.Context(), userID, fileID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete the file"},
		)
		fc.logger.Error("DeleteFile() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, dtoFile.MutationResponse{Success: true, Updated: deleted})
}
