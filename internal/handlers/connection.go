package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/launchbase/launchbase-backend/internal/services"
)

type ConnectionHandler struct {
  connectionService services.ConnectionService
  analysisService   services.AnalysisService
}

func NewConnectionHandler(connectionService services.ConnectionService, analysisService services.AnalysisService) *ConnectionHandler {
  return &ConnectionHandler{
    connectionService: connectionService,
    analysisService:   analysisService,
  }
}

func (ch *ConnectionHandler) Connect(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  var req struct {
    ConnectionType     string `json:"connection_type"`
    Platform           string `json:"platform"`
    ConnectionURL      string `json:"connection_url"`
    ProjectName        string `json:"project_name"`
    ProjectDescription string `json:"project_description"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", errors.New("invalid request body"))
    return
  }
  connection, err := ch.connectionService.Connect(c.Request.Context(), userID, services.ConnectInput{
    ConnectionType:     req.ConnectionType,
    Platform:           req.Platform,
    ConnectionURL:      req.ConnectionURL,
    ProjectName:        req.ProjectName,
    ProjectDescription: req.ProjectDescription,
  })
  if err != nil {
    RespondError(c, http.StatusBadRequest, "connect_failed", err)
    return
  }
  c.JSON(http.StatusCreated, connection)
}

func (ch *ConnectionHandler) List(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  connections, err := ch.connectionService.List(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, connections)
}

func (ch *ConnectionHandler) Disconnect(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  id, ok := pathUUID(c, "id")
  if !ok {
    return
  }
  if err := ch.connectionService.Disconnect(c.Request.Context(), userID, id); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

// LatestAnalysis returns the newest analysis row, or 404 when the user has
// never connected an MVP.
func (ch *ConnectionHandler) LatestAnalysis(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  analysis, err := ch.analysisService.Latest(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  if analysis == nil {
    RespondError(c, http.StatusNotFound, "not_found", errors.New("no analysis yet"))
    return
  }
  RespondOK(c, analysis)
}
