package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sankofa/internal/models/request_models"
	"sankofa/internal/services"
	"sankofa/pkg/utils"
)

type ActivitySocialController struct {
	socialService services.SocialServiceInterface
}

func NewActivitySocialController(socialService services.SocialServiceInterface) *ActivitySocialController {
	return &ActivitySocialController{
		socialService: socialService,
	}
}

// ListMessages godoc
// @Summary List activity messages
// @Description Fetch the comment thread of an activity, oldest first
// @Tags Social
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {array} response_models.MessageResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId}/messages/ [get]
func (a *ActivitySocialController) ListMessages(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	messages, err := a.socialService.ListMessages(c.Request.Context(), activityID, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}

// PostMessage godoc
// @Summary Post a message on an activity
// @Description Append a comment to the activity thread; requires edit capability
// @Tags Social
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param request body request_models.PostMessageRequest true "Message payload"
// @Success 201 {object} response_models.MessageResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId}/messages/add/ [post]
func (a *ActivitySocialController) PostMessage(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	var req request_models.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	message, err := a.socialService.PostMessage(c.Request.Context(), activityID, accountID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, message, "Message posted successfully")
}

// ToggleLike godoc
// @Summary Toggle a like on an activity
// @Description Like when un-liked, unlike when liked; any accepted member may react
// @Tags Social
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} response_models.LikeToggleResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId}/like/ [post]
func (a *ActivitySocialController) ToggleLike(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	result, err := a.socialService.ToggleLike(c.Request.Context(), activityID, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Reaction toggled successfully")
}
