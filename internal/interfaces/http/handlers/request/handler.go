package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labdesk/internal/application/request/usecases"
	"labdesk/internal/interfaces/http/middleware"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
	"labdesk/internal/shared/utils"
)

type RequestHandler struct {
	createRequestUC       usecases.CreateRequestExecutor
	claimRequestUC        usecases.ClaimRequestExecutor
	resolveRequestUC      usecases.ResolveRequestExecutor
	releaseRequestUC      usecases.ReleaseRequestExecutor
	cancelRequestUC       usecases.CancelRequestExecutor
	reprioritizeRequestUC usecases.ReprioritizeRequestExecutor
	updateRequestUC       usecases.UpdateRequestExecutor
	deleteRequestUC       usecases.DeleteRequestExecutor
	getRequestUC          usecases.GetRequestExecutor
	listRequestsUC        usecases.ListRequestsExecutor
	listMyRequestsUC      usecases.ListMyRequestsExecutor
	getStatsUC            usecases.GetStatsExecutor
	logger                logger.Interface
}

func NewRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	claimRequestUC usecases.ClaimRequestExecutor,
	resolveRequestUC usecases.ResolveRequestExecutor,
	releaseRequestUC usecases.ReleaseRequestExecutor,
	cancelRequestUC usecases.CancelRequestExecutor,
	reprioritizeRequestUC usecases.ReprioritizeRequestExecutor,
	updateRequestUC usecases.UpdateRequestExecutor,
	deleteRequestUC usecases.DeleteRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	listMyRequestsUC usecases.ListMyRequestsExecutor,
	getStatsUC usecases.GetStatsExecutor,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC:       createRequestUC,
		claimRequestUC:        claimRequestUC,
		resolveRequestUC:      resolveRequestUC,
		releaseRequestUC:      releaseRequestUC,
		cancelRequestUC:       cancelRequestUC,
		reprioritizeRequestUC: reprioritizeRequestUC,
		updateRequestUC:       updateRequestUC,
		deleteRequestUC:       deleteRequestUC,
		getRequestUC:          getRequestUC,
		listRequestsUC:        listRequestsUC,
		listMyRequestsUC:      listMyRequestsUC,
		getStatsUC:            getStatsUC,
		logger:                logger.NewLogger(),
	}
}

// CreateRequest handles POST /api/requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInvalidArgumentError(err.Error()))
		return
	}

	cmd := body.ToCommand(middleware.ActorFromContext(c))

	result, err := h.createRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Help request created successfully")
}

// GetRequest handles GET /api/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	query := usecases.GetRequestQuery{
		Actor:     middleware.ActorFromContext(c),
		RequestID: c.Param("id"),
	}

	result, err := h.getRequestUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRequests handles GET /api/requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListRequestsQuery{
		Status:   c.Query("status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// ListMyRequests handles GET /api/requests/my
func (h *RequestHandler) ListMyRequests(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListMyRequestsQuery{
		Actor:    middleware.ActorFromContext(c),
		Status:   c.Query("status"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listMyRequestsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, result.Page, result.PageSize)
}

// GetStats handles GET /api/requests/stats
func (h *RequestHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ClaimRequest handles PUT /api/requests/:id/assign
func (h *RequestHandler) ClaimRequest(c *gin.Context) {
	cmd := usecases.ClaimRequestCommand{
		Actor:     middleware.ActorFromContext(c),
		RequestID: c.Param("id"),
	}

	result, err := h.claimRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Help request claimed successfully", result)
}

// ResolveRequest handles PUT /api/requests/:id/resolve
func (h *RequestHandler) ResolveRequest(c *gin.Context) {
	cmd := usecases.ResolveRequestCommand{
		Actor:     middleware.ActorFromContext(c),
		RequestID: c.Param("id"),
	}

	result, err := h.resolveRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Help request resolved successfully", result)
}

// ReleaseRequest handles PUT /api/requests/:id/release
func (h *RequestHandler) ReleaseRequest(c *gin.Context) {
	cmd := usecases.ReleaseRequestCommand{
		Actor:     middleware.ActorFromContext(c),
		RequestID: c.Param("id"),
	}

	result, err := h.releaseRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Help request released successfully", result)
}

// CancelRequest handles PUT /api/requests/:id/cancel
func (h *RequestHandler) CancelRequest(c *gin.Context) {
	cmd := usecases.CancelRequestCommand{
		Actor:     middleware.ActorFromContext(c),
		RequestID: c.Param("id"),
	}

	result, err := h.cancelRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Help request cancelled successfully", result)
}

// ReprioritizeRequest handles PUT /api/requests/:id/priority
func (h *RequestHandler) ReprioritizeRequest(c *gin.Context) {
	var body ReprioritizeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for reprioritize request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInvalidArgumentError(err.Error()))
		return
	}

	cmd := usecases.ReprioritizeRequestCommand{
		Actor:     middleware.ActorFromContext(c),
		RequestID: c.Param("id"),
		Priority:  *body.Priority,
	}

	result, err := h.reprioritizeRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Help request reprioritized successfully", result)
}

// UpdateRequest handles PUT /api/requests/:id
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var body UpdateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for update request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInvalidArgumentError(err.Error()))
		return
	}

	cmd := usecases.UpdateRequestCommand{
		Actor:       middleware.ActorFromContext(c),
		RequestID:   c.Param("id"),
		Title:       body.Title,
		Description: body.Description,
	}

	result, err := h.updateRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Help request updated successfully", result)
}

// DeleteRequest handles DELETE /api/requests/:id
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	cmd := usecases.DeleteRequestCommand{
		Actor:     middleware.ActorFromContext(c),
		RequestID: c.Param("id"),
	}

	result, err := h.deleteRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Help request deleted successfully", result)
}
