package services

import (
  "context"
  "fmt"
  "io"
  "net/http"
  "strings"
  "time"

  "golang.org/x/net/html"

  "github.com/launchbase/launchbase-backend/internal/insights"
  "github.com/launchbase/launchbase-backend/internal/logger"
)

// maxScrapeBytes caps how much of a page body we read. Marketing pages that
// matter fit comfortably under this.
const maxScrapeBytes = 2 << 20

type PageScraper interface {
  Scrape(ctx context.Context, url string) (insights.PageMetadata, string, error)
}

type pageScraper struct {
  log        *logger.Logger
  httpClient *http.Client
}

func NewPageScraper(log *logger.Logger) PageScraper {
  return &pageScraper{
    log:        log.With("service", "PageScraper"),
    httpClient: &http.Client{Timeout: 20 * time.Second},
  }
}

// Scrape fetches the page and returns its metadata plus visible text. The
// text is what the tech stack and endpoint detectors run over.
func (s *pageScraper) Scrape(ctx context.Context, url string) (insights.PageMetadata, string, error) {
  var meta insights.PageMetadata

  req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
  if err != nil {
    return meta, "", fmt.Errorf("build request: %w", err)
  }
  req.Header.Set("User-Agent", "LaunchbaseBot/1.0 (+https://launchbase.app)")

  resp, err := s.httpClient.Do(req)
  if err != nil {
    return meta, "", fmt.Errorf("fetch %s: %w", url, err)
  }
  defer resp.Body.Close()

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return meta, "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
  }

  doc, err := html.Parse(io.LimitReader(resp.Body, maxScrapeBytes))
  if err != nil {
    return meta, "", fmt.Errorf("parse %s: %w", url, err)
  }

  var text strings.Builder
  walkPage(doc, &meta, &text)
  return meta, text.String(), nil
}

func attrVal(n *html.Node, key string) string {
  for _, a := range n.Attr {
    if strings.EqualFold(a.Key, key) {
      return a.Val
    }
  }
  return ""
}

func nodeText(n *html.Node) string {
  var sb strings.Builder
  for c := n.FirstChild; c != nil; c = c.NextSibling {
    if c.Type == html.TextNode {
      sb.WriteString(c.Data)
    }
  }
  return strings.TrimSpace(sb.String())
}

// walkPage collects title, meta description, generator, favicon, and the
// concatenated text content. Script and style bodies count as content on
// purpose: framework markers often only appear in bundled script text.
func walkPage(n *html.Node, meta *insights.PageMetadata, text *strings.Builder) {
  if n.Type == html.ElementNode {
    switch n.Data {
    case "title":
      if meta.Title == "" {
        meta.Title = nodeText(n)
      }
    case "meta":
      name := strings.ToLower(attrVal(n, "name"))
      switch name {
      case "description":
        if meta.Description == "" {
          meta.Description = attrVal(n, "content")
        }
      case "generator":
        if meta.Generator == "" {
          meta.Generator = attrVal(n, "content")
        }
      }
    case "link":
      rel := strings.ToLower(attrVal(n, "rel"))
      if meta.Favicon == "" && strings.Contains(rel, "icon") {
        meta.Favicon = attrVal(n, "href")
      }
    }
  }

  if n.Type == html.TextNode {
    trimmed := strings.TrimSpace(n.Data)
    if trimmed != "" {
      text.WriteString(trimmed)
      text.WriteString(" ")
    }
  }

  for c := n.FirstChild; c != nil; c = c.NextSibling {
    walkPage(c, meta, text)
  }

  // src attributes carry framework hints too (cdn bundle names and the like)
  if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "link") {
    for _, key := range []string{"src", "href"} {
      if v := attrVal(n, key); v != "" {
        text.WriteString(v)
        text.WriteString(" ")
      }
    }
  }
}
