package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"driverpro-service/internal/auth"
	"driverpro-service/internal/client"
	"driverpro-service/internal/http/middleware"
	"driverpro-service/internal/model"
	"driverpro-service/internal/service"
)

type Handler struct {
	requestService      *service.RequestService
	userService         *service.UserService
	vehicleService      *service.VehicleService
	notificationService *service.NotificationService
	statsService        *service.StatsService
	assistant           *client.AssistantClient
	issuer              *auth.Issuer
	log                 zerolog.Logger
}

func NewHandler(
	requestService *service.RequestService,
	userService *service.UserService,
	vehicleService *service.VehicleService,
	notificationService *service.NotificationService,
	statsService *service.StatsService,
	assistant *client.AssistantClient,
	issuer *auth.Issuer,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		requestService:      requestService,
		userService:         userService,
		vehicleService:      vehicleService,
		notificationService: notificationService,
		statsService:        statsService,
		assistant:           assistant,
		issuer:              issuer,
		log:                 log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	r.POST("/auth/login", h.login)

	protected := r.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/me/notifications", h.listMyNotifications)
	protected.PUT("/notifications/:id/read", h.markNotificationRead)

	solicitor := protected.Group("/solicitor")
	{
		solicitor.POST("/requests", h.createRequest)
		solicitor.GET("/requests", h.listRequests)
		solicitor.GET("/requests/:id", h.getRequest)
		solicitor.PUT("/requests/:id/cancel", h.cancelRequest)
	}

	driver := protected.Group("/driver")
	{
		driver.GET("/requests", h.listRequests)
		driver.GET("/requests/:id", h.getRequest)
		driver.PUT("/requests/:id/accept", h.acceptRequest)
		driver.PUT("/requests/:id/reject", h.rejectRequest)
		driver.PUT("/requests/:id/start-travel", h.startTravel)
		driver.PUT("/requests/:id/start-work", h.startWork)
		driver.PUT("/requests/:id/complete", h.completeRequest)
		driver.PUT("/requests/:id/restart", h.restartRequest)
		driver.POST("/assistant/chat", h.assistantChat)
		driver.POST("/assistant/transcribe", h.assistantTranscribe)
	}

	admin := protected.Group("/admin")
	{
		admin.GET("/requests", h.listRequests)
		admin.GET("/requests/:id", h.getRequest)
		admin.POST("/requests/:id/assign", h.assignDriver)
		admin.GET("/users", h.listUsers)
		admin.POST("/users", h.createUser)
		admin.PUT("/users/:id", h.updateUser)
		admin.DELETE("/users/:id", h.deleteUser)
		admin.GET("/vehicles", h.listVehicles)
		admin.POST("/vehicles", h.createVehicle)
		admin.PUT("/vehicles/:id", h.updateVehicle)
		admin.DELETE("/vehicles/:id", h.deleteVehicle)
		admin.GET("/stats", h.dashboardStats)
		admin.GET("/stats/insight", h.statsInsight)
	}
}

func (h *Handler) login(c *gin.Context) {
	var req struct {
		CPF      string `json:"cpf" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.CPF, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse("invalid CPF or password"))
		return
	}

	token, err := h.issuer.Issue(*user)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to issue token")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"token": token,
		"user":  user,
	}))
}

// Request handlers

func (h *Handler) createRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Origin          string             `json:"origin"`
		Destination     string             `json:"destination" binding:"required"`
		TaskDescription string             `json:"task_description" binding:"required"`
		Notes           string             `json:"notes"`
		CC              string             `json:"cc"`
		Priority        model.TaskPriority `json:"priority"`
		AttachmentURL   string             `json:"attachment_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	created, err := h.requestService.Create(c.Request.Context(), principal, service.CreateRequestInput{
		Origin:          req.Origin,
		Destination:     req.Destination,
		TaskDescription: req.TaskDescription,
		Notes:           req.Notes,
		CC:              req.CC,
		Priority:        req.Priority,
		AttachmentURL:   req.AttachmentURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(created))
}

func (h *Handler) getRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	req, err := h.requestService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, successResponse(gin.H{
		"request":              req,
		"live_travel_duration": req.TravelDurationAt(now),
		"live_work_duration":   req.WorkDurationAt(now),
	}))
}

func (h *Handler) listRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	input := service.ListRequestsInput{}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		rs := model.RequestStatus(strings.ToUpper(status))
		input.Status = &rs
	}
	if raw := strings.TrimSpace(c.Query("created_from")); raw != "" {
		if t, err := parseTime(raw); err == nil {
			input.CreatedFrom = &t
		}
	}
	if raw := strings.TrimSpace(c.Query("created_to")); raw != "" {
		if t, err := parseTime(raw); err == nil {
			input.CreatedTo = &t
		}
	}

	requests, err := h.requestService.List(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(requests))
}

func (h *Handler) acceptRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	updated, err := h.requestService.AssignDriver(c.Request.Context(), principal, id, principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) assignDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var req struct {
		DriverID string `json:"driver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.requestService.AssignDriver(c.Request.Context(), principal, id, req.DriverID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) rejectRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.requestService.Reject(c.Request.Context(), principal, id, service.RejectRequestInput{Reason: req.Reason})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) startTravel(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var req struct {
		DriverStartLocation string   `json:"driver_start_location"`
		StartLat            *float64 `json:"start_lat"`
		StartLng            *float64 `json:"start_lng"`
		VehicleID           string   `json:"vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.requestService.StartTravel(c.Request.Context(), principal, id, service.StartTravelInput{
		DriverStartLocation: req.DriverStartLocation,
		StartLat:            req.StartLat,
		StartLng:            req.StartLng,
		VehicleID:           req.VehicleID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) startWork(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var req struct {
		TravelDuration *int64   `json:"travel_duration" binding:"required"`
		TripDistanceKm *float64 `json:"trip_distance_km"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.requestService.StartWork(c.Request.Context(), principal, id, service.StartWorkInput{
		TravelDuration: *req.TravelDuration,
		TripDistanceKm: req.TripDistanceKm,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) completeRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var req struct {
		WorkDuration        *int64 `json:"work_duration" binding:"required"`
		DriverNotes         string `json:"driver_notes"`
		DriverAttachmentURL string `json:"driver_attachment_url"`
		VehicleID           string `json:"vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.requestService.Complete(c.Request.Context(), principal, id, service.CompleteRequestInput{
		WorkDuration:        *req.WorkDuration,
		DriverNotes:         req.DriverNotes,
		DriverAttachmentURL: req.DriverAttachmentURL,
		VehicleID:           req.VehicleID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) restartRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.requestService.Restart(c.Request.Context(), principal, id, service.RestartRequestInput{Reason: req.Reason})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) cancelRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.requestService.Cancel(c.Request.Context(), principal, id, service.CancelRequestInput{Reason: req.Reason})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

// User handlers

func (h *Handler) listUsers(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	users, err := h.userService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(users))
}

func (h *Handler) createUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Name             string         `json:"name" binding:"required"`
		Email            string         `json:"email"`
		CPF              string         `json:"cpf" binding:"required"`
		Password         string         `json:"password" binding:"required"`
		Role             model.UserRole `json:"role" binding:"required"`
		Avatar           string         `json:"avatar"`
		CR               string         `json:"cr"`
		DefaultVehicleID string         `json:"default_vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	created, err := h.userService.Create(c.Request.Context(), principal, service.CreateUserInput{
		Name:             req.Name,
		Email:            req.Email,
		CPF:              req.CPF,
		Password:         req.Password,
		Role:             req.Role,
		Avatar:           req.Avatar,
		CR:               req.CR,
		DefaultVehicleID: req.DefaultVehicleID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(created))
}

func (h *Handler) updateUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	var req struct {
		Name             *string `json:"name"`
		Email            *string `json:"email"`
		Password         *string `json:"password"`
		Avatar           *string `json:"avatar"`
		CR               *string `json:"cr"`
		DefaultVehicleID *string `json:"default_vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.userService.Update(c.Request.Context(), principal, id, service.UpdateUserInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Avatar:           req.Avatar,
		CR:               req.CR,
		DefaultVehicleID: req.DefaultVehicleID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) deleteUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	if err := h.userService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Vehicle handlers

func (h *Handler) listVehicles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Model      string   `json:"model" binding:"required"`
		Plate      string   `json:"plate" binding:"required"`
		Tag        string   `json:"tag"`
		HourlyRate *float64 `json:"hourly_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	created, err := h.vehicleService.Create(c.Request.Context(), principal, service.CreateVehicleInput{
		Model:      req.Model,
		Plate:      req.Plate,
		Tag:        req.Tag,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(created))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	var req struct {
		Model      *string  `json:"model"`
		Plate      *string  `json:"plate"`
		Tag        *string  `json:"tag"`
		HourlyRate *float64 `json:"hourly_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updated, err := h.vehicleService.Update(c.Request.Context(), principal, id, service.UpdateVehicleInput{
		Model:      req.Model,
		Plate:      req.Plate,
		Tag:        req.Tag,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Notification handlers

func (h *Handler) listMyNotifications(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	notes := h.notificationService.ListMine(c.Request.Context(), principal)
	c.JSON(http.StatusOK, successResponse(notes))
}

func (h *Handler) markNotificationRead(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid notification id"))
		return
	}

	updated, err := h.notificationService.MarkRead(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updated))
}

// Stats and assistant handlers

func (h *Handler) dashboardStats(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	input := service.StatsInput{}
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if t, err := parseTime(raw); err == nil {
			input.From = &t
		}
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		if t, err := parseTime(raw); err == nil {
			input.To = &t
		}
	}

	stats, err := h.statsService.Dashboard(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) statsInsight(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	stats, err := h.statsService.Dashboard(c.Request.Context(), principal, service.StatsInput{})
	if err != nil {
		h.handleError(c, err)
		return
	}

	text, err := h.assistant.ProductivityInsight(c.Request.Context(), *stats)
	if err != nil {
		// Collaborator failure degrades to a visible notice, not an error.
		h.log.Warn().Err(err).Msg("insight generation failed")
		c.JSON(http.StatusOK, successResponse(gin.H{"text": "Could not generate insights right now."}))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"text": text}))
}

func (h *Handler) assistantChat(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Message string            `json:"message" binding:"required"`
		History []client.ChatTurn `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		h.log.Warn().Err(err).Msg("assistant chat failed")
		c.JSON(http.StatusOK, successResponse(gin.H{"text": "Sorry, the assistant is unavailable right now."}))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"text": reply}))
}

func (h *Handler) assistantTranscribe(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Audio    string `json:"audio" binding:"required"`
		MimeType string `json:"mime_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	text, err := h.assistant.TranscribeAudio(c.Request.Context(), req.Audio, req.MimeType)
	if err != nil {
		h.log.Warn().Err(err).Msg("transcription failed")
		c.JSON(http.StatusOK, successResponse(gin.H{"text": ""}))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"text": text}))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid time format")
}
