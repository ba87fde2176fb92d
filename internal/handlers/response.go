package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/launchbase/launchbase-backend/internal/requestdata"
  "github.com/launchbase/launchbase-backend/internal/services"
)

type APIError struct {
  Message string `json:"message"`
  Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps service sentinel errors onto HTTP statuses; any
// unrecognized error is a 500.
func RespondServiceError(c *gin.Context, err error) {
  switch {
  case errors.Is(err, services.ErrNotFound):
    RespondError(c, http.StatusNotFound, "not_found", err)
  case errors.Is(err, services.ErrDuplicateProject):
    RespondError(c, http.StatusConflict, "duplicate_project", err)
  case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
    RespondError(c, http.StatusUnauthorized, "unauthorized", err)
  default:
    RespondError(c, http.StatusInternalServerError, "internal", err)
  }
}

// currentUserID pulls the authenticated user out of the request context.
// Returns uuid.Nil and writes the error response when missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing authenticated user"))
    return uuid.Nil, false
  }
  return rd.UserID, true
}

// pathUUID parses a UUID path param, writing a 400 on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
  id, err := uuid.Parse(c.Param(name))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_id", errors.New("invalid "+name))
    return uuid.Nil, false
  }
  return id, true
}
