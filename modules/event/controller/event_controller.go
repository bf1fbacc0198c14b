package controller

import (
	"fmt"
	"io"

	"sponlink-api/core/constants"
	"sponlink-api/core/controller"
	"sponlink-api/core/errors"
	"sponlink-api/core/params"
	"sponlink-api/core/storage"
	"sponlink-api/core/utils"
	"sponlink-api/modules/event/dto"
	"sponlink-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
	Storage      storage.Storage
}

// NewEventController creates a new controller
func NewEventController(svc service.EventServiceInterface, store storage.Storage) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
		Storage:        store,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *EventController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// GetEvents handles GET /events
// @Summary 活動列表
// @Description 取得已發佈活動列表，可依分類、狀態與關鍵字篩選
// @Tags Event
// @Produce json
// @Param category query string false "分類"
// @Param search query string false "關鍵字"
// @Param page_number query int false "頁碼"
// @Param page_size query int false "每頁筆數"
// @Success 200 {object} dto.PaginatedEventResponse
// @Router /public/events [get]
func (c *EventController) GetEvents(ctx echo.Context) error {
	p := params.NewQueryParams(ctx)
	filter := dto.EventFilter{
		Category: ctx.QueryParam("category"),
		Status:   ctx.QueryParam("status"),
		Search:   p.Search,
	}

	result, appErr := c.EventService.GetEvents(ctx.Request().Context(), filter, p)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetEvent handles GET /events/:id
// @Summary 活動詳情
// @Description 依 ID 取得活動詳情，含贊助方案
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.GetEventByID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetEventBySlug handles GET /events/slug/:slug
// @Summary 依網址代稱取得活動
// @Tags Event
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/slug/{slug} [get]
func (c *EventController) GetEventBySlug(ctx echo.Context) error {
	eventSlug := ctx.Param("slug")
	if eventSlug == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event slug")
	}

	result, appErr := c.EventService.GetEventBySlug(ctx.Request().Context(), eventSlug)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMyEvents handles GET /my/events
// @Summary 我主辦的活動
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Failure 401 {object} errors.AppError
// @Router /private/my/events [get]
func (c *EventController) GetMyEvents(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.EventService.GetMyEvents(ctx.Request().Context(), organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CreateEvent handles POST /events
// @Summary 建立活動
// @Description 建立活動草稿，缺漏的欄位以預設值補齊
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "活動內容"
// @Success 200 {object} dto.EventResponse
// @Failure 401 {object} errors.AppError
// @Router /private/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// UpdateEvent handles PATCH /events/:id
// @Summary 更新活動
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "更新內容"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} errors.AppError
// @Router /private/events/{id} [patch]
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.UpdateEvent(ctx.Request().Context(), eventID, organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// DeleteEvent handles DELETE /events/:id
// @Summary 刪除活動
// @Tags Event
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.AppError
// @Router /private/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.EventService.DeleteEvent(ctx.Request().Context(), eventID, organizerID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}

// PublishEvent handles POST /events/:id/publish
// @Summary 發佈活動
// @Description 將草稿活動設為公開，重複發佈不會報錯
// @Tags Event
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events/{id}/publish [post]
func (c *EventController) PublishEvent(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.PublishEvent(ctx.Request().Context(), eventID, organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event published successfully")
}

// CancelEvent handles POST /events/:id/cancel
// @Summary 取消活動
// @Tags Event
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Router /private/events/{id}/cancel [post]
func (c *EventController) CancelEvent(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.CancelEvent(ctx.Request().Context(), eventID, organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event cancelled successfully")
}

// CompleteEvent handles POST /events/:id/complete
// @Summary 結束活動
// @Tags Event
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Router /private/events/{id}/complete [post]
func (c *EventController) CompleteEvent(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.CompleteEvent(ctx.Request().Context(), eventID, organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event completed successfully")
}

// UploadCoverImage handles POST /events/:id/cover
// @Summary 上傳活動封面
// @Description 上傳封面圖片至物件儲存並更新活動
// @Tags Event
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Event ID"
// @Param file formData file true "封面圖片"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events/{id}/cover [post]
func (c *EventController) UploadCoverImage(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Missing file")
	}
	if fileHeader.Size > constants.MaxUploadSizeBytes {
		return c.BadRequest(errors.ErrInvalidInput, "File too large")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := storage.ExtensionForContentType(contentType)
	if !ok {
		return c.BadRequest(errors.ErrInvalidInput, "Unsupported image type")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Cannot read file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, constants.MaxUploadSizeBytes+1))
	if err != nil || int64(len(data)) > constants.MaxUploadSizeBytes {
		return c.BadRequest(errors.ErrInvalidInput, "Cannot read file")
	}

	key := fmt.Sprintf("events/%s/cover-%s%s", eventID, utils.GenerateID(), ext)
	url, err := c.Storage.UploadImage(ctx.Request().Context(), key, contentType, data)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to upload image")
	}

	result, appErr := c.EventService.SetCoverImage(ctx.Request().Context(), eventID, organizerID, url)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Cover image updated")
}

// CreatePlan handles POST /events/:id/plans
// @Summary 新增贊助方案
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.CreatePlanRequest true "方案內容"
// @Success 200 {object} dto.PlanResponse
// @Failure 403 {object} errors.AppError
// @Router /private/events/{id}/plans [post]
func (c *EventController) CreatePlan(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.CreatePlanRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Title == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Plan title is required")
	}

	result, appErr := c.EventService.CreateSponsorshipPlan(ctx.Request().Context(), eventID, organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Plan created successfully")
}

// UpdatePlan handles PATCH /events/:id/plans/:planId
// @Summary 更新贊助方案
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param planId path string true "Plan ID"
// @Param request body dto.UpdatePlanRequest true "更新內容"
// @Success 200 {object} dto.PlanResponse
// @Router /private/events/{id}/plans/{planId} [patch]
func (c *EventController) UpdatePlan(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	planID, err := uuid.Parse(ctx.Param("planId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid plan ID")
	}

	var req dto.UpdatePlanRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.UpdateSponsorshipPlan(ctx.Request().Context(), eventID, planID, organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Plan updated successfully")
}

// DeletePlan handles DELETE /events/:id/plans/:planId
// @Summary 刪除贊助方案
// @Tags Event
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param planId path string true "Plan ID"
// @Success 200 {object} map[string]string
// @Router /private/events/{id}/plans/{planId} [delete]
func (c *EventController) DeletePlan(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	planID, err := uuid.Parse(ctx.Param("planId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid plan ID")
	}

	if appErr := c.EventService.DeleteSponsorshipPlan(ctx.Request().Context(), eventID, planID, organizerID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Plan deleted successfully")
}
