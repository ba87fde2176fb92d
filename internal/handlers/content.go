package handlers

import (
  "errors"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/launchbase/launchbase-backend/internal/services"
)

type ContentHandler struct {
  contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
  return &ContentHandler{contentService: contentService}
}

func (ch *ContentHandler) Generate(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  var req struct {
    Type         string `json:"type"`
    CustomPrompt string `json:"custom_prompt"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", errors.New("invalid request body"))
    return
  }
  content, err := ch.contentService.Generate(c.Request.Context(), userID, req.Type, req.CustomPrompt)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "generate_failed", err)
    return
  }
  c.JSON(http.StatusCreated, content)
}

func (ch *ContentHandler) ListRecent(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  limit, _ := strconv.Atoi(c.Query("limit"))
  contents, err := ch.contentService.ListRecent(c.Request.Context(), userID, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, contents)
}

func (ch *ContentHandler) MarkUsed(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  id, ok := pathUUID(c, "id")
  if !ok {
    return
  }
  if err := ch.contentService.MarkUsed(c.Request.Context(), userID, id); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}
