package lifecycle

import (
	"net/http"
	"strconv"

	lifecycleerrors "go-erp/internal/lifecycle/errors"
	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("lifecycle.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lifecycle.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("lifecycle request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseEntityID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid employee ID", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) Hire(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}
	h.logger.Debug("http hire employee", zap.Int("business_entity_id", id))

	var req HireEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http hire employee validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Hire(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Terminate(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}
	h.logger.Debug("http terminate employee", zap.Int("business_entity_id", id))

	var req TerminateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http terminate employee validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	if err := h.service.Terminate(c.Request.Context(), id, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.NoContent(c, http.StatusOK)
}

func (h *Handler) Rehire(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}
	h.logger.Debug("http rehire employee", zap.Int("business_entity_id", id))

	var req RehireEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http rehire employee validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Rehire(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetEmploymentStatus(c *gin.Context) {
	id, ok := parseEntityID(c)
	if !ok {
		return
	}
	h.logger.Debug("http get employment status", zap.Int("business_entity_id", id))

	resp, err := h.service.GetEmploymentStatus(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		e := lifecycleerrors.ErrEmployeeNotFound
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
