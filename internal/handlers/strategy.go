package handlers

import (
  "errors"
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/launchbase/launchbase-backend/internal/services"
)

type StrategyHandler struct {
  strategyService services.StrategyService
}

func NewStrategyHandler(strategyService services.StrategyService) *StrategyHandler {
  return &StrategyHandler{strategyService: strategyService}
}

func (sh *StrategyHandler) GenerateStep(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  stepID := c.Param("step")
  suggestion, err := sh.strategyService.GenerateStep(c.Request.Context(), userID, stepID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "generate_failed", err)
    return
  }
  c.JSON(http.StatusCreated, suggestion)
}

func (sh *StrategyHandler) GenerateAll(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  suggestions, err := sh.strategyService.GenerateAll(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "generate_failed", err)
    return
  }
  c.JSON(http.StatusCreated, suggestions)
}

func (sh *StrategyHandler) Steps(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  suggestions, err := sh.strategyService.Steps(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, suggestions)
}

func (sh *StrategyHandler) QuickAction(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  var req struct {
    Action string `json:"action"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", errors.New("invalid request body"))
    return
  }
  suggestion, err := sh.strategyService.QuickAction(c.Request.Context(), userID, req.Action)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "quick_action_failed", err)
    return
  }
  c.JSON(http.StatusCreated, suggestion)
}

func (sh *StrategyHandler) AgentTask(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  agentID := c.Param("agent")
  suggestion, err := sh.strategyService.AgentTask(c.Request.Context(), userID, agentID)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "agent_task_failed", err)
    return
  }
  c.JSON(http.StatusCreated, suggestion)
}

func (sh *StrategyHandler) ListSuggestions(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  limit, _ := strconv.Atoi(c.Query("limit"))
  suggestions, err := sh.strategyService.ListSuggestions(c.Request.Context(), userID, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, suggestions)
}

func (sh *StrategyHandler) CompleteSuggestion(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  id, ok := pathUUID(c, "id")
  if !ok {
    return
  }
  if err := sh.strategyService.CompleteSuggestion(c.Request.Context(), userID, id); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true})
}

func (sh *StrategyHandler) ListActivities(c *gin.Context) {
  userID, ok := currentUserID(c)
  if !ok {
    return
  }
  limit, _ := strconv.Atoi(c.Query("limit"))
  activities, err := sh.strategyService.ListActivities(c.Request.Context(), userID, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, activities)
}
