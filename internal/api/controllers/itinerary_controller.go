package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sankofa/internal/models/request_models"
	"sankofa/internal/services"
	"sankofa/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// AddDay godoc
// @Summary Add a day to a trip
// @Description Create the next itinerary day, or patch date/title on an existing day number
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddDayRequest true "Day payload"
// @Success 201 {object} response_models.TripDayResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/add/ [post]
func (i *ItineraryController) AddDay(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip id")
		return
	}

	var req request_models.AddDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	day, err := i.itineraryService.AddDay(c.Request.Context(), tripID, accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, day, "Day saved successfully")
}

// AddActivity godoc
// @Summary Add an activity to a trip day
// @Description Create an activity on the given day number, creating the day when missing
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddActivityRequest true "Activity payload"
// @Success 201 {object} response_models.ActivityResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/activities/add/ [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("tripId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip id")
		return
	}

	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	activity, err := i.itineraryService.AddActivity(c.Request.Context(), tripID, accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, activity, "Activity added successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Patch any subset of title, location name, start time and sort order
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Fields to change"
// @Success 200 {object} response_models.ActivityResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId}/update/ [patch]
func (i *ItineraryController) UpdateActivity(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := i.itineraryService.UpdateActivity(c.Request.Context(), activityID, accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Remove an activity along with its messages and reactions
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId}/delete/ [delete]
func (i *ItineraryController) DeleteActivity(c *gin.Context) {

	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}

	if err := i.itineraryService.DeleteActivity(c.Request.Context(), activityID, accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}
