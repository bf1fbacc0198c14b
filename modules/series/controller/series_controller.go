package controller

import (
	"sponlink-api/core/constants"
	"sponlink-api/core/controller"
	"sponlink-api/core/errors"
	"sponlink-api/core/params"
	"sponlink-api/core/utils"
	"sponlink-api/modules/series/dto"
	"sponlink-api/modules/series/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SeriesController handles event series HTTP requests
type SeriesController struct {
	controller.BaseController
	SeriesService service.SeriesServiceInterface
}

// NewSeriesController creates a new controller
func NewSeriesController(svc service.SeriesServiceInterface) *SeriesController {
	return &SeriesController{
		BaseController: controller.NewBaseController(),
		SeriesService:  svc,
	}
}

func (c *SeriesController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GetAllSeries handles GET /series
// @Summary 系列活動列表
// @Tags Series
// @Produce json
// @Param status query string false "狀態"
// @Param search query string false "關鍵字"
// @Success 200 {array} dto.SeriesResponse
// @Router /public/series [get]
func (c *SeriesController) GetAllSeries(ctx echo.Context) error {
	p := params.NewQueryParams(ctx)
	filter := dto.SeriesFilter{
		Status: ctx.QueryParam("status"),
		Search: p.Search,
	}

	items, total, appErr := c.SeriesService.GetAllEventSeries(ctx.Request().Context(), filter, p)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, map[string]any{
		"items":       items,
		"total_items": total,
		"page_number": p.PageNumber,
		"page_size":   p.PageSize,
	}, "Success")
}

// GetSeries handles GET /series/:id
// @Summary 系列活動詳情
// @Tags Series
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {object} dto.SeriesDetailResponse
// @Failure 404 {object} errors.AppError
// @Router /public/series/{id} [get]
func (c *SeriesController) GetSeries(ctx echo.Context) error {
	seriesID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid series ID")
	}

	result, appErr := c.SeriesService.GetEventSeriesByID(ctx.Request().Context(), seriesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetSeriesEvents handles GET /series/:id/events
// @Summary 系列內活動
// @Description 依序解析系列成員活動，已刪除的活動不會出現
// @Tags Series
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {array} eventdto.EventResponse
// @Router /public/series/{id}/events [get]
func (c *SeriesController) GetSeriesEvents(ctx echo.Context) error {
	seriesID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid series ID")
	}

	result, appErr := c.SeriesService.GetEventsInSeries(ctx.Request().Context(), seriesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMainEvent handles GET /series/:id/main-event
// @Summary 系列主活動
// @Tags Series
// @Produce json
// @Param id path string true "Series ID"
// @Success 200 {object} eventdto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /public/series/{id}/main-event [get]
func (c *SeriesController) GetMainEvent(ctx echo.Context) error {
	seriesID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid series ID")
	}

	result, appErr := c.SeriesService.GetMainEventInSeries(ctx.Request().Context(), seriesID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetFeaturedSeries handles GET /series/featured
// @Summary 精選系列
// @Tags Series
// @Produce json
// @Param limit query int false "筆數上限"
// @Success 200 {array} dto.SeriesResponse
// @Router /public/series/featured [get]
func (c *SeriesController) GetFeaturedSeries(ctx echo.Context) error {
	limit := utils.ToNumberWithDefault(ctx.QueryParam("limit"), 10)

	result, appErr := c.SeriesService.GetFeaturedEventSeries(ctx.Request().Context(), limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CreateSeries handles POST /series
// @Summary 建立系列活動
// @Tags Series
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSeriesRequest true "系列內容"
// @Success 200 {object} dto.SeriesResponse
// @Failure 400 {object} errors.AppError
// @Router /private/series [post]
func (c *SeriesController) CreateSeries(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateSeriesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SeriesService.CreateEventSeries(ctx.Request().Context(), organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Series created successfully")
}
