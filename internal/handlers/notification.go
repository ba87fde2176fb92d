package handlers

import (
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/launchbase/launchbase-backend/internal/services"
)

type NotificationHandler struct {
  notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
  return &NotificationHandler{notificationService: notificationService}
}

func (nh *NotificationHandler) List(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  limit, _ := strconv.Atoi(c.Query("limit"))
  notifications, err := nh.notificationService.List(c.Request.Context(), userID, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, notifications)
}

func (nh *NotificationHandler) MarkRead(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  id, ok := pathUUID(c, "id")
  if !ok {
    return
  }
  if err := nh.notificationService.MarkRead(c.Request.Context(), userID, id); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

func (nh *NotificationHandler) MarkAllRead(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  if err := nh.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

func (nh *NotificationHandler) Delete(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  id, ok := pathUUID(c, "id")
  if !ok {
    return
  }
  if err := nh.notificationService.Delete(c.Request.Context(), userID, id); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}
