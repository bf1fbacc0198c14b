package controller

import (
	"sponlink-api/core/constants"
	"sponlink-api/core/controller"
	"sponlink-api/core/errors"
	"sponlink-api/core/utils"
	"sponlink-api/modules/sponsor/dto"
	"sponlink-api/modules/sponsor/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SponsorController handles cart and saved/followed event HTTP requests
type SponsorController struct {
	controller.BaseController
	SponsorService service.SponsorServiceInterface
}

// NewSponsorController creates a new controller
func NewSponsorController(svc service.SponsorServiceInterface) *SponsorController {
	return &SponsorController{
		BaseController: controller.NewBaseController(),
		SponsorService: svc,
	}
}

func (c *SponsorController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// AddToCart handles POST /cart
// @Summary 加入贊助購物車
// @Description 將贊助方案加入購物車，同方案重複加入回傳既有項目
// @Tags Sponsor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddToCartRequest true "方案 ID"
// @Success 200 {object} dto.CartItemResponse
// @Failure 404 {object} errors.AppError
// @Router /private/cart [post]
func (c *SponsorController) AddToCart(ctx echo.Context) error {
	sponsorID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.AddToCartRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	planID, err := uuid.Parse(req.SponsorshipPlanID)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid sponsorship plan ID")
	}

	result, appErr := c.SponsorService.AddToCart(ctx.Request().Context(), sponsorID, planID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Added to cart")
}

// RemoveFromCart handles DELETE /cart/:itemId
// @Summary 移除購物車項目
// @Description 僅能移除 PENDING 狀態的項目
// @Tags Sponsor
// @Security BearerAuth
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/cart/{itemId} [delete]
func (c *SponsorController) RemoveFromCart(ctx echo.Context) error {
	sponsorID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	itemID, err := uuid.Parse(ctx.Param("itemId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid cart item ID")
	}

	if appErr := c.SponsorService.RemoveFromCart(ctx.Request().Context(), sponsorID, itemID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Removed from cart")
}

// GetCart handles GET /cart
// @Summary 查看購物車
// @Tags Sponsor
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CartItemResponse
// @Router /private/cart [get]
func (c *SponsorController) GetCart(ctx echo.Context) error {
	sponsorID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SponsorService.GetCart(ctx.Request().Context(), sponsorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Checkout handles POST /cart/checkout
// @Summary 結帳
// @Description 將所有 PENDING 項目逐一轉為 CONFIRMED；購物車為空時回傳錯誤
// @Tags Sponsor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {object} errors.AppError
// @Router /private/cart/checkout [post]
func (c *SponsorController) Checkout(ctx echo.Context) error {
	sponsorID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SponsorService.Checkout(ctx.Request().Context(), sponsorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Checkout completed")
}

// GetMySponsorships handles GET /my/sponsorships
// @Summary 我的贊助紀錄
// @Tags Sponsor
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CartItemResponse
// @Router /private/my/sponsorships [get]
func (c *SponsorController) GetMySponsorships(ctx echo.Context) error {
	sponsorID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SponsorService.GetUserSponsorships(ctx.Request().Context(), sponsorID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// SaveEvent handles POST /events/:id/save
// @Summary 收藏活動
// @Tags Sponsor
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Router /private/events/{id}/save [post]
func (c *SponsorController) SaveEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.SponsorService.SaveEvent(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event saved")
}

// UnsaveEvent handles DELETE /events/:id/save
// @Summary 取消收藏
// @Tags Sponsor
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Router /private/events/{id}/save [delete]
func (c *SponsorController) UnsaveEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.SponsorService.UnsaveEvent(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event unsaved")
}

// GetSavedEvents handles GET /my/saved-events
// @Summary 收藏的活動
// @Tags Sponsor
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.SavedEventResponse
// @Router /private/my/saved-events [get]
func (c *SponsorController) GetSavedEvents(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SponsorService.GetSavedEvents(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// FollowEvent handles POST /events/:id/follow
// @Summary 追蹤活動
// @Tags Sponsor
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Router /private/events/{id}/follow [post]
func (c *SponsorController) FollowEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.SponsorService.FollowEvent(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event followed")
}

// UnfollowEvent handles DELETE /events/:id/follow
// @Summary 取消追蹤
// @Tags Sponsor
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Router /private/events/{id}/follow [delete]
func (c *SponsorController) UnfollowEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.SponsorService.UnfollowEvent(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event unfollowed")
}

// GetFollowedEvents handles GET /my/followed-events
// @Summary 追蹤的活動
// @Tags Sponsor
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.SavedEventResponse
// @Router /private/my/followed-events [get]
func (c *SponsorController) GetFollowedEvents(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SponsorService.GetFollowedEvents(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
