package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HasanAboShally/dayma/internal/adapters/handler/http/middleware"
	"github.com/HasanAboShally/dayma/internal/core/domain"
	"github.com/HasanAboShally/dayma/internal/core/services"
)

type SyncHandler struct {
	svc *services.SyncService
}

func NewSyncHandler(svc *services.SyncService) *SyncHandler {
	return &SyncHandler{
		svc: svc,
	}
}

type pushRequest struct {
	DeviceID string          `json:"device_id" binding:"required"`
	Seq      int             `json:"seq" binding:"required,min=1"`
	Payload  json.RawMessage `json:"payload" binding:"required"`
}

func (h *SyncHandler) RegisterRoutes(router *gin.RouterGroup) {
	sync := router.Group("/sync")
	{
		sync.POST("/push", h.Push)
		sync.GET("/pull", h.Pull)
		sync.GET("/changes", h.Changes)
		sync.GET("/stats", h.Stats)
	}
}

func (h *SyncHandler) Push(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	var req pushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snapshot, err := h.svc.Push(c.Request.Context(), services.PushInput{
		UserID:   userID,
		DeviceID: req.DeviceID,
		Seq:      req.Seq,
		Payload:  req.Payload,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func (h *SyncHandler) Pull(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	snapshot, err := h.svc.Pull(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *SyncHandler) Changes(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	sinceStr := c.Query("since")
	var since time.Time

	if sinceStr != "" {
		var err error
		since, err = time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use RFC3339)"})
			return
		}
	}

	changes, err := h.svc.GetDelta(c.Request.Context(), userID, since)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changes":   changes,
		"timestamp": time.Now().UTC(),
	})
}

func (h *SyncHandler) Stats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	today := c.Query("today")
	if today == "" {
		today = domain.FormatDate(time.Now().UTC())
	} else if _, ok := domain.ParseDate(today); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), userID, today)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrSnapshotDeviceID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "device id is required"})

	case errors.Is(err, domain.ErrInvalidSnapshot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is not a valid tracker document"})

	case errors.Is(err, domain.ErrSnapshotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "sequence conflict",
			"message": "a newer snapshot exists, pull before pushing again",
		})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
