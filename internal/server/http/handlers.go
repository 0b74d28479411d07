package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blackmessages/backend/internal/common"
	"github.com/blackmessages/backend/internal/server/models"
)

type registerRequest struct {
	PinHash string `json:"pinHash"`
}

type registerResponse struct {
	Username       string `json:"username"`
	DeviceID       string `json:"deviceId"`
	TransactionKey string `json:"transactionKey"`
}

type loginRequest struct {
	DeviceID string `json:"deviceId"`
	PinHash  string `json:"pinHash"`
}

type loginResponse struct {
	Username       string `json:"username"`
	TransactionKey string `json:"transactionKey"`
}

// Coordinates are pointers so that an absent field is distinguishable from a
// legitimate zero value and rejected as invalid.
type localizationRequest struct {
	DeviceID  string   `json:"deviceId"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type postMessageRequest struct {
	Sender    string     `json:"sender"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
}

type fetchNearbyRequest struct {
	DeviceID       string `json:"deviceId"`
	TransactionKey string `json:"transactionKey"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reg, err := s.credentials.Register(c.Request.Context(), req.PinHash)
	if err != nil {
		s.fail(c, err, "registration failed")
		return
	}

	c.JSON(http.StatusCreated, registerResponse{
		Username:       reg.Username,
		DeviceID:       reg.DeviceID,
		TransactionKey: reg.TransactionKey,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.credentials.Login(c.Request.Context(), req.DeviceID, req.PinHash)
	if err != nil {
		s.fail(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Username:       result.Username,
		TransactionKey: result.TransactionKey,
	})
}

func (s *Server) handleUpdateLocalization(c *gin.Context) {
	var req localizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid localization data"})
		return
	}

	err := s.localizations.Upsert(c.Request.Context(), req.DeviceID, *req.Latitude, *req.Longitude)
	if err != nil {
		s.fail(c, err, "localization update failed")
		return
	}

	c.Status(http.StatusOK)
}

func (s *Server) handlePostMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message data"})
		return
	}

	err := s.messages.Create(c.Request.Context(),
		req.Sender, req.Content, *req.Latitude, *req.Longitude, req.Timestamp)
	if err != nil {
		s.fail(c, err, "message creation failed")
		return
	}

	c.Status(http.StatusCreated)
}

// handleFetchNearby walks the fixed flow: authenticate, resolve the device's
// current position, query messages around it with the default radius. Any
// earlier failure short-circuits the rest.
func (s *Server) handleFetchNearby(c *gin.Context) {
	var req fetchNearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()

	if err := s.credentials.Authenticate(ctx, req.DeviceID, req.TransactionKey); err != nil {
		s.fail(c, err, "authentication failed")
		return
	}

	loc, err := s.localizations.Current(ctx, req.DeviceID)
	if err != nil {
		s.fail(c, err, "localization lookup failed")
		return
	}

	found, err := s.messages.FindNearbyDefault(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.fail(c, err, "message query failed")
		return
	}

	if found == nil {
		found = []*models.Message{}
	}
	c.JSON(http.StatusOK, found)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.Status(http.StatusOK)
}

// fail maps the error taxonomy onto status codes. Client-facing messages
// stay generic; the underlying detail is only logged.
func (s *Server) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, common.ErrorInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data"})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid device ID or credentials"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no known location"})
	default:
		s.logger.Error(c.Request.Context(), msg, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
