package controller

import (
	"sponlink-api/core/constants"
	"sponlink-api/core/controller"
	"sponlink-api/core/errors"
	"sponlink-api/core/utils"
	"sponlink-api/core/worker"
	"sponlink-api/modules/importer/dto"
	"sponlink-api/modules/importer/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ImporterController handles event import HTTP requests
type ImporterController struct {
	controller.BaseController
	ImporterService service.ImporterServiceInterface
	Enqueuer        worker.Enqueuer
}

// NewImporterController creates a new controller
func NewImporterController(svc service.ImporterServiceInterface, enqueuer worker.Enqueuer) *ImporterController {
	return &ImporterController{
		BaseController:  controller.NewBaseController(),
		ImporterService: svc,
		Enqueuer:        enqueuer,
	}
}

func (c *ImporterController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// ScrapeLumaEvent handles POST /import/luma
// @Summary 匯入 Luma 活動
// @Description 抓取 lu.ma 活動頁並轉為站內活動草稿內容
// @Tags Importer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ImportLumaRequest true "活動網址"
// @Success 200 {object} dto.ImportedEventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/import/luma [post]
func (c *ImporterController) ScrapeLumaEvent(ctx echo.Context) error {
	if _, err := c.getUserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ImportLumaRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ImporterService.ScrapeLumaEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event imported")
}

// ScrapeLumaEventAsync handles POST /import/luma/async
// @Summary 背景匯入 Luma 活動
// @Description 將匯入排入背景佇列，完成後建立活動草稿並通知
// @Tags Importer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ImportLumaRequest true "活動網址"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/import/luma/async [post]
func (c *ImporterController) ScrapeLumaEventAsync(ctx echo.Context) error {
	organizerID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ImportLumaRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.URL == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Event URL is required")
	}

	err = c.Enqueuer.Enqueue(ctx.Request().Context(), constants.TaskLumaImport, dto.LumaImportPayload{
		URL:         req.URL,
		Timezone:    req.Timezone,
		OrganizerID: organizerID.String(),
	})
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to queue import")
	}

	return c.SuccessResponse(ctx, map[string]string{"status": "queued"}, "Import queued")
}
