package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/launchbase/launchbase-backend/internal/services"
)

type ChecklistHandler struct {
  checklistService services.ChecklistService
}

func NewChecklistHandler(checklistService services.ChecklistService) *ChecklistHandler {
  return &ChecklistHandler{checklistService: checklistService}
}

func (ch *ChecklistHandler) Progress(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  progress, err := ch.checklistService.Progress(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, progress)
}

func (ch *ChecklistHandler) Toggle(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  var req struct {
    ItemID string `json:"item_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
    RespondError(c, http.StatusBadRequest, "bad_request", errors.New("item_id required"))
    return
  }
  progress, err := ch.checklistService.Toggle(c.Request.Context(), userID, req.ItemID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "toggle_failed", err)
    return
  }
  RespondOK(c, progress)
}
