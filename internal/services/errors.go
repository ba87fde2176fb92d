package services

import "errors"

// Sentinel errors handlers map onto HTTP statuses.
var (
  ErrNotFound           = errors.New("resource not found")
  ErrDuplicateProject   = errors.New("project already connected")
  ErrInvalidCredentials = errors.New("invalid email or password")
  ErrEmailTaken         = errors.New("email already registered")
  ErrInvalidToken       = errors.New("invalid or expired token")
)
