package reply

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labdesk/internal/application/reply/usecases"
	"labdesk/internal/interfaces/http/middleware"
	"labdesk/internal/shared/errors"
	"labdesk/internal/shared/logger"
	"labdesk/internal/shared/utils"
)

type ReplyHandler struct {
	postReplyUC       usecases.PostReplyExecutor
	listRepliesUC     usecases.ListRepliesExecutor
	listRepliesPageUC usecases.ListRepliesPageExecutor
	logger            logger.Interface
}

func NewReplyHandler(
	postReplyUC usecases.PostReplyExecutor,
	listRepliesUC usecases.ListRepliesExecutor,
	listRepliesPageUC usecases.ListRepliesPageExecutor,
) *ReplyHandler {
	return &ReplyHandler{
		postReplyUC:       postReplyUC,
		listRepliesUC:     listRepliesUC,
		listRepliesPageUC: listRepliesPageUC,
		logger:            logger.NewLogger(),
	}
}

// PostReply handles POST /api/replies/request/:id
func (h *ReplyHandler) PostReply(c *gin.Context) {
	var body PostReplyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for post reply", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInvalidArgumentError(err.Error()))
		return
	}

	cmd := body.ToCommand(middleware.ActorFromContext(c), c.Param("id"))

	result, err := h.postReplyUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply posted successfully")
}

// ListReplies handles GET /api/replies/request/:id
func (h *ReplyHandler) ListReplies(c *gin.Context) {
	query := usecases.ListRepliesQuery{
		RequestID: c.Param("id"),
	}

	result, err := h.listRepliesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRepliesPage handles GET /api/replies/request/:id/page
func (h *ReplyHandler) ListRepliesPage(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListRepliesPageQuery{
		RequestID: c.Param("id"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	result, err := h.listRepliesPageUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Replies, result.Total, result.Page, result.PageSize)
}
