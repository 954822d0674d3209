// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"dreamtale-api/internal/application/story"
	"dreamtale-api/internal/domain/entity"
	"dreamtale-api/internal/domain/repository"
	"dreamtale-api/internal/interfaces/http/dto"
	"dreamtale-api/pkg/errors"
	"dreamtale-api/pkg/logger"
)

// StoryHandler 故事处理器
type StoryHandler struct {
	service *story.Service
}

// NewStoryHandler 创建故事处理器
func NewStoryHandler(service *story.Service) *StoryHandler {
	return &StoryHandler{service: service}
}

// Create 创建故事
// @Summary 生成新故事
// @Description 按参数执行生成流水线并持久化结果
// @Tags Story
// @Accept json
// @Produce json
// @Param body body dto.CreateStoryRequest true "生成参数"
// @Success 201 {object} dto.Response[dto.StoryDTO]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/stories [post]
func (h *StoryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var req dto.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.service.Create(ctx, userID, req.ToParams())
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Created(c, dto.ToStoryDTO(created))
}

// Get 获取故事详情
// @Summary 获取故事
// @Tags Story
// @Produce json
// @Param id path string true "故事 ID"
// @Success 200 {object} dto.Response[dto.StoryDTO]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/stories/{id} [get]
func (h *StoryHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	found, err := h.service.Get(ctx, userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.ToStoryDTO(found))
}

// List 获取故事列表
// @Summary 获取故事列表
// @Tags Story
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param status query string false "状态过滤"
// @Param language query string false "语言过滤"
// @Param topic query string false "主题过滤"
// @Success 200 {object} dto.Response[[]dto.StoryDTO]
// @Router /v1/stories [get]
func (h *StoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	pagination := paginationFromQuery(c)
	filter := &repository.StoryFilter{
		Status:   entity.StoryStatus(c.Query("status")),
		Language: c.Query("language"),
		Topic:    c.Query("topic"),
	}

	result, err := h.service.List(ctx, userID, filter, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessWithPage(c, dto.ToStoryDTOs(result.Items),
		dto.NewPageMeta(result.Page, result.PageSize, int(result.Total)))
}

// Update 编辑故事
// @Summary 编辑故事
// @Description 根据变更内容分类处理：元数据变更触发改编，正文变更直接采用
// @Tags Story
// @Accept json
// @Produce json
// @Param id path string true "故事 ID"
// @Param body body dto.UpdateStoryRequest true "变更内容"
// @Success 200 {object} dto.Response[dto.StoryEditResultDTO]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/stories/{id} [patch]
func (h *StoryHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var req dto.UpdateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, decision, err := h.service.Update(ctx, userID, c.Param("id"), req.ToEditRequest())
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, &dto.StoryEditResultDTO{
		Story:                 dto.ToStoryDTO(updated),
		Classification:        string(decision.Classification),
		ChangedFields:         decision.ChangedFields,
		RegenerationAttempted: decision.RegenerationAttempted,
		RegenerationSucceeded: decision.RegenerationSucceeded,
	})
}

// Delete 删除故事
// @Summary 删除故事
// @Tags Story
// @Param id path string true "故事 ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/stories/{id} [delete]
func (h *StoryHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	if err := h.service.Delete(ctx, userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	dto.NoContent(c)
}

// ListRevisions 获取故事修订历史
// @Summary 获取修订历史
// @Tags Story
// @Produce json
// @Param id path string true "故事 ID"
// @Success 200 {object} dto.Response[[]dto.RevisionDTO]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/stories/{id}/revisions [get]
func (h *StoryHandler) ListRevisions(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	result, err := h.service.ListRevisions(ctx, userID, c.Param("id"), paginationFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	dto.SuccessWithPage(c, dto.ToRevisionDTOs(result.Items),
		dto.NewPageMeta(result.Page, result.PageSize, int(result.Total)))
}

// respondError 将应用错误映射为 HTTP 响应
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, &dto.ErrorDetail{
			ErrorCode: string(appErr.Code),
			Details:   appErr.Detail,
		})
		return
	}
	logger.Error(c.Request.Context(), "unhandled error", err)
	dto.InternalError(c, "internal server error")
}
