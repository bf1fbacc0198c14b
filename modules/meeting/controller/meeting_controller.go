package controller

import (
	"sponlink-api/core/constants"
	"sponlink-api/core/controller"
	"sponlink-api/core/errors"
	"sponlink-api/core/utils"
	"sponlink-api/modules/meeting/dto"
	"sponlink-api/modules/meeting/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MeetingController handles meeting HTTP requests
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

// NewMeetingController creates a new controller
func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

func (c *MeetingController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// ScheduleMeeting handles POST /meetings
// @Summary 預約會議
// @Description 贊助商提出會議請求與多個建議時間
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ScheduleMeetingRequest true "會議內容"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Router /private/meetings [post]
func (c *MeetingController) ScheduleMeeting(ctx echo.Context) error {
	sponsorID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ScheduleMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.ScheduleMeeting(ctx.Request().Context(), sponsorID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting requested")
}

// GetMeeting handles GET /meetings/:id
// @Summary 會議詳情
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 404 {object} errors.AppError
// @Router /private/meetings/{id} [get]
func (c *MeetingController) GetMeeting(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.GetMeetingByID(ctx.Request().Context(), meetingID, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMyMeetings handles GET /meetings
// @Summary 我的會議
// @Description 列出我以贊助商或主辦方身分參與的會議
// @Tags Meeting
// @Security BearerAuth
// @Produce json
// @Param role query string false "sponsor 或 organizer"
// @Param status query string false "會議狀態"
// @Success 200 {array} dto.MeetingResponse
// @Router /private/meetings [get]
func (c *MeetingController) GetMyMeetings(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	filter := dto.MeetingFilter{
		Role:   ctx.QueryParam("role"),
		Status: ctx.QueryParam("status"),
	}
	result, appErr := c.MeetingService.GetMyMeetings(ctx.Request().Context(), userID, filter)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ConfirmMeeting handles PATCH /meetings/:id/confirm
// @Summary 確認會議
// @Description 主辦方確認時間並提供會議連結，兩者缺一不可
// @Tags Meeting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.ConfirmMeetingRequest true "確認內容"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Router /private/meetings/{id}/confirm [patch]
func (c *MeetingController) ConfirmMeeting(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	var req dto.ConfirmMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.ConfirmMeeting(ctx.Request().Context(), meetingID, organizerID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting confirmed")
}

// CancelMeeting handles PATCH /meetings/:id/cancel
// @Summary 取消會議
// @Description 任一方皆可取消，取消後不可復原
// @Tags Meeting
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Router /private/meetings/{id}/cancel [patch]
func (c *MeetingController) CancelMeeting(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.CancelMeeting(ctx.Request().Context(), meetingID, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting cancelled")
}

// CompleteMeeting handles PATCH /meetings/:id/complete
// @Summary 結束會議
// @Tags Meeting
// @Security BearerAuth
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Router /private/meetings/{id}/complete [patch]
func (c *MeetingController) CompleteMeeting(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.CompleteMeeting(ctx.Request().Context(), meetingID, organizerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting completed")
}
