package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sankofa/internal/models/request_models"
	"sankofa/internal/services"
	"sankofa/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// currentAccountID pulls the authenticated caller out of the gin
// context where the JWT middleware stored it.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}

// ListTrips godoc
// @Summary List my trips
// @Description Fetch every trip where the caller holds an accepted membership, newest first
// @Tags Trips
// @Accept json
// @Produce json
// @Success 200 {array} response_models.TripSummaryResponse
// @Security BearerAuth
// @Router /trips/ [get]
func (t *TripController) ListTrips(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip and enroll the caller as its accepted owner
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} response_models.TripDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/create/ [post]
func (t *TripController) CreateTrip(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// GetTripDetail godoc
// @Summary Get trip detail
// @Description Fetch a trip with its members, days and activities (live like/comment counts)
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/ [get]
func (t *TripController) GetTripDetail(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip id")
		return
	}

	trip, err := t.tripService.GetTripDetail(c.Request.Context(), tripID, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip detail fetched successfully")
}

// InviteMembers godoc
// @Summary Invite members to a trip
// @Description Invite accounts as pending editors; requires an accepted owner/editor membership
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.InviteMembersRequest true "User IDs to invite"
// @Success 200 {object} response_models.InviteResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/invite/ [post]
func (t *TripController) InviteMembers(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip id")
		return
	}

	var req request_models.InviteMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_ids must be a non-empty list")
		return
	}

	invites, err := t.tripService.InviteMembers(c.Request.Context(), tripID, accountID, req.UserIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invites, "Invites sent successfully")
}

// AcceptInvite godoc
// @Summary Accept a trip invite
// @Description Flip the caller's pending membership on the trip to accepted
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/accept-invite/ [post]
func (t *TripController) AcceptInvite(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip id")
		return
	}

	if err := t.tripService.AcceptInvite(c.Request.Context(), tripID, accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invite accepted")
}

// JoinByToken godoc
// @Summary Join a trip by share token
// @Description Join as an accepted viewer; an already-invited member keeps its role
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.JoinByTokenRequest true "Share token"
// @Success 200 {object} response_models.JoinTripResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/join-by-token/ [post]
func (t *TripController) JoinByToken(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var req request_models.JoinByTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "share_token is required")
		return
	}

	joined, err := t.tripService.JoinByToken(c.Request.Context(), req.ShareToken, accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, joined, "Joined trip successfully")
}
