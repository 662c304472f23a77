package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/validation"
)

type NotificationsController struct {
	store     NotificationsStore
	validator *validation.Validator
}

func NewNotificationsController(store NotificationsStore, v *validation.Validator) *NotificationsController {
	return &NotificationsController{store: store, validator: v}
}

type CreateNotificationRequest struct {
	Title   string `json:"title" validate:"required,max=256"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=new_release system"`
	BookID  *uint  `json:"bookId"`
}

// ListNotifications handles GET /api/notifications
func (nc *NotificationsController) ListNotifications(c *gin.Context) {
	notifications, err := nc.store.GetNotifications(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /api/notifications/unread-count
func (nc *NotificationsController) UnreadCount(c *gin.Context) {
	count, err := nc.store.GetUnreadNotificationCount(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "count unread notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// CreateNotification handles POST /api/notifications
func (nc *NotificationsController) CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if !bindJSON(c, nc.validator, &req) {
		return
	}

	ctx := c.Request.Context()

	if req.BookID != nil {
		book, err := nc.store.GetBook(ctx, *req.BookID)
		if err != nil {
			respondInternalError(c, err, "create notification")
			return
		}
		if book == nil {
			respondNotFound(c, "book")
			return
		}
	}

	notification, err := nc.store.CreateNotification(ctx, &entities.Notification{
		UserID:  GetUserID(c),
		Title:   req.Title,
		Message: req.Message,
		Type:    entities.NotificationType(req.Type),
		BookID:  req.BookID,
	})
	if err != nil {
		respondInternalError(c, err, "create notification")
		return
	}
	respondCreated(c, notification)
}

// MarkRead handles POST /api/notifications/mark-read/:id
func (nc *NotificationsController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	marked, err := nc.store.MarkNotificationRead(c.Request.Context(), GetUserID(c), id)
	if err != nil {
		respondInternalError(c, err, "mark notification read")
		return
	}
	if !marked {
		respondNotFound(c, "notification")
		return
	}
	respondSuccess(c, "notification marked as read")
}

// MarkAllRead handles POST /api/notifications/mark-all-read
func (nc *NotificationsController) MarkAllRead(c *gin.Context) {
	updated, err := nc.store.MarkAllNotificationsRead(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "mark all notifications read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
