package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/launchbase/launchbase-backend/internal/services"
)

type ReplitHandler struct {
  replitService services.ReplitService
}

func NewReplitHandler(replitService services.ReplitService) *ReplitHandler {
  return &ReplitHandler{replitService: replitService}
}

func (rh *ReplitHandler) Connect(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  var req struct {
    URL string `json:"url"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", errors.New("invalid request body"))
    return
  }
  project, err := rh.replitService.Connect(c.Request.Context(), userID, req.URL)
  if err != nil {
    if errors.Is(err, services.ErrDuplicateProject) {
      RespondServiceError(c, err)
      return
    }
    RespondError(c, http.StatusBadRequest, "connect_failed", err)
    return
  }
  c.JSON(http.StatusCreated, project)
}

func (rh *ReplitHandler) List(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  projects, err := rh.replitService.List(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, projects)
}

func (rh *ReplitHandler) Disconnect(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  id, ok := pathUUID(c, "id")
  if !ok {
    return
  }
  if err := rh.replitService.Disconnect(c.Request.Context(), userID, id); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}
