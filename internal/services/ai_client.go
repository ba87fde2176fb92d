package services

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "math/rand"
  "net"
  "net/http"
  "os"
  "strconv"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"

  "github.com/launchbase/launchbase-backend/internal/logger"
  "github.com/launchbase/launchbase-backend/internal/repos"
  "github.com/launchbase/launchbase-backend/internal/types"
)

// GenerateTextRequest describes one model call. CallType and the optional
// user/context IDs are recorded on the call log row for every attempt.
type GenerateTextRequest struct {
  CallType        string
  UserID          *uuid.UUID
  ContextID       *uuid.UUID
  Prompt          string
  MaxTokens       int
  SearchGrounding bool
}

type AIClient interface {
  GenerateText(ctx context.Context, req GenerateTextRequest) (string, error)
}

type aiClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  httpClient *http.Client
  callLogs   repos.AICallLogRepo

  maxRetries int
}

func NewAIClient(log *logger.Logger, callLogs repos.AICallLogRepo) (AIClient, error) {
  apiKey := os.Getenv("OPENAI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing OPENAI_API_KEY")
  }

  baseURL := os.Getenv("OPENAI_BASE_URL")
  if baseURL == "" {
    baseURL = "https://api.openai.com"
  }

  model := os.Getenv("OPENAI_MODEL")
  if model == "" {
    model = "gpt-4o-mini"
  }

  // IMPORTANT: default timeout higher for production generation workloads
  timeoutSec := 180
  if v := os.Getenv("OPENAI_TIMEOUT_SECONDS"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
      timeoutSec = parsed
    }
  }

  maxRetries := 4
  if v := os.Getenv("OPENAI_MAX_RETRIES"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
      maxRetries = parsed
    }
  }

  return &aiClient{
    log:        log.With("service", "AIClient"),
    baseURL:    baseURL,
    apiKey:     apiKey,
    model:      model,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
    callLogs:   callLogs,
    maxRetries: maxRetries,
  }, nil
}

type aiHTTPError struct {
  StatusCode int
  Body       string
}

func (e *aiHTTPError) Error() string {
  return fmt.Sprintf("ai http %d: %s", e.StatusCode, e.Body)
}

func isRetryableHTTP(code int) bool {
  if code == 408 || code == 429 {
    return true
  }
  if code >= 500 && code <= 599 {
    return true
  }
  return false
}

func isRetryableErr(err error) bool {
  if err == nil {
    return false
  }
  if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
    // caller cancellation is checked separately in the retry loop
    return true
  }
  var netErr net.Error
  if errors.As(err, &netErr) {
    if netErr.Timeout() || netErr.Temporary() {
      return true
    }
  }
  var httpErr *aiHTTPError
  if errors.As(err, &httpErr) {
    return isRetryableHTTP(httpErr.StatusCode)
  }
  return false
}

func jitterSleep(base time.Duration) time.Duration {
  // +/- 20%
  if base <= 0 {
    return 0
  }
  j := 0.2
  delta := base.Seconds() * j
  low := base.Seconds() - delta
  high := base.Seconds() + delta
  if low < 0 {
    low = 0
  }
  v := low + rand.Float64()*(high-low)
  return time.Duration(v * float64(time.Second))
}

func (c *aiClient) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return nil, nil, err
    }
  }

  req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
  if err != nil {
    return nil, nil, err
  }
  req.Header.Set("Authorization", "Bearer "+c.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, nil, err
  }

  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return resp, nil, readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return resp, raw, &aiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }
  return resp, raw, nil
}

func (c *aiClient) do(ctx context.Context, method, path string, body any, out any) error {
  // exponential backoff: 1s, 2s, 4s, 8s (cap ~10s)
  backoff := 1 * time.Second

  for attempt := 0; attempt <= c.maxRetries; attempt++ {
    if ctx.Err() != nil {
      return ctx.Err()
    }

    resp, raw, err := c.doOnce(ctx, method, path, body)
    if err == nil {
      if out == nil {
        return nil
      }
      if uErr := json.Unmarshal(raw, out); uErr != nil {
        return fmt.Errorf("ai decode error: %w; raw=%s", uErr, string(raw))
      }
      return nil
    }

    if !isRetryableErr(err) {
      return err
    }

    if attempt == c.maxRetries {
      return err
    }

    // Respect Retry-After when present
    sleepFor := backoff
    if resp != nil {
      ra := strings.TrimSpace(resp.Header.Get("Retry-After"))
      if ra != "" {
        if secs, parseErr := strconv.Atoi(ra); parseErr == nil && secs > 0 {
          sleepFor = time.Duration(secs) * time.Second
        }
      }
    }

    if sleepFor > 10*time.Second {
      sleepFor = 10 * time.Second
    }
    sleepFor = jitterSleep(sleepFor)

    c.log.Warn("AI request retrying",
      "path", path,
      "attempt", attempt+1,
      "max_retries", c.maxRetries,
      "sleep", sleepFor.String(),
      "error", err.Error(),
    )

    time.Sleep(sleepFor)
    backoff *= 2
  }

  return fmt.Errorf("unreachable retry loop")
}

type responsesRequest struct {
  Model string `json:"model"`
  Input []struct {
    Role    string `json:"role"`
    Content string `json:"content"`
  } `json:"input"`
  MaxOutputTokens int              `json:"max_output_tokens,omitempty"`
  Tools           []map[string]any `json:"tools,omitempty"`
}

type responsesResponse struct {
  Output []struct {
    Type    string `json:"type"`
    Role    string `json:"role,omitempty"`
    Content []struct {
      Type string `json:"type"`
      Text string `json:"text,omitempty"`
    } `json:"content,omitempty"`
  } `json:"output"`
  Usage   map[string]any `json:"usage,omitempty"`
  Refusal string         `json:"refusal,omitempty"`
}

func (c *aiClient) GenerateText(ctx context.Context, genReq GenerateTextRequest) (string, error) {
  if strings.TrimSpace(genReq.Prompt) == "" {
    return "", errors.New("prompt required")
  }

  req := responsesRequest{
    Model: c.model,
    Input: []struct {
      Role    string `json:"role"`
      Content string `json:"content"`
    }{
      {Role: "user", Content: genReq.Prompt},
    },
    MaxOutputTokens: genReq.MaxTokens,
  }
  if genReq.SearchGrounding {
    req.Tools = []map[string]any{{"type": "web_search"}}
  }

  var resp responsesResponse
  callErr := c.do(ctx, "POST", "/v1/responses", req, &resp)

  var text string
  if callErr == nil {
    if resp.Refusal != "" {
      callErr = fmt.Errorf("model refused: %s", resp.Refusal)
    } else {
      for _, item := range resp.Output {
        if item.Type == "message" && item.Role == "assistant" {
          for _, part := range item.Content {
            if part.Type == "output_text" && part.Text != "" {
              text += part.Text
            }
          }
        }
      }
      if text == "" {
        callErr = fmt.Errorf("no output_text found in response")
      }
    }
  }

  c.recordCall(genReq, text, resp.Usage, callErr)

  if callErr != nil {
    return "", callErr
  }
  return text, nil
}

// recordCall persists an audit row for the call. Logging failures never fail
// the call itself.
func (c *aiClient) recordCall(genReq GenerateTextRequest, text string, usage map[string]any, callErr error) {
  row := &types.AICallLog{
    UserID:    genReq.UserID,
    ContextID: genReq.ContextID,
    CallType:  genReq.CallType,
    Model:     c.model,
    Prompt:    genReq.Prompt,
    Response:  text,
    Success:   callErr == nil,
  }
  if callErr != nil {
    row.Error = callErr.Error()
  }
  if usage != nil {
    if raw, err := json.Marshal(usage); err == nil {
      row.Usage = datatypes.JSON(raw)
    }
  }

  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if _, err := c.callLogs.Create(ctx, nil, []*types.AICallLog{row}); err != nil {
    c.log.Warn("Failed to record AI call log", "call_type", genReq.CallType, "error", err)
  }
}
