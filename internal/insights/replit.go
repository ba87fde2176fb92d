package insights

import (
  "regexp"
  "strings"
)

var replitURLPatterns = []*regexp.Regexp{
  regexp.MustCompile(`^https://[\w-]+\.replit\.app`),
  regexp.MustCompile(`^https://replit\.com/@[\w-]+/[\w-]+`),
  regexp.MustCompile(`^https://[\w-]+--[\w-]+\.repl\.co`),
}

// ValidateReplitURL reports whether url looks like a deployed Replit app or
// a replit.com project page.
func ValidateReplitURL(url string) bool {
  for _, pattern := range replitURLPatterns {
    if pattern.MatchString(url) {
      return true
    }
  }
  return false
}

// ProjectSlug derives a short identifier part from a project URL: the last
// "/"-separated segment when non-empty, otherwise the first label of the
// host, otherwise "unknown".
func ProjectSlug(url string) string {
  segments := strings.Split(url, "/")
  if last := segments[len(segments)-1]; last != "" {
    return last
  }
  if idx := strings.Index(url, "//"); idx >= 0 {
    host := url[idx+2:]
    if slash := strings.Index(host, "/"); slash >= 0 {
      host = host[:slash]
    }
    if label := strings.Split(host, ".")[0]; label != "" {
      return label
    }
  }
  return "unknown"
}
