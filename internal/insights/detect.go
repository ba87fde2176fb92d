package insights

import (
  "regexp"
  "strings"
)

// PageMetadata is the metadata half of a scrape result.
type PageMetadata struct {
  Title       string
  Description string
  Favicon     string
  Generator   string
}

// techStackMarkers defines the detection vocabulary. Check order is the
// tie-break: first-checked markers appear first in the result.
var techStackMarkers = []struct {
  label   string
  markers []string
}{
  {"React", []string{"react"}},
  {"Vue.js", []string{"vue"}},
  {"Angular", []string{"angular"}},
  {"Next.js", []string{"next.js", "nextjs"}},
  {"Node.js", []string{"express", "node.js"}},
  {"Python", []string{"python", "flask", "django"}},
  {"JavaScript", []string{"javascript"}},
  {"TypeScript", []string{"typescript"}},
  {"Tailwind CSS", []string{"tailwind"}},
  {"Bootstrap", []string{"bootstrap"}},
}

// generatorMarkers are the labels the page's generator meta tag can vouch
// for on its own.
var generatorMarkers = map[string]string{
  "React":  "react",
  "Vue.js": "vue",
}

// DetectTechStack infers the tech stack from scraped page content and the
// generator meta tag. Returns ["Web Application"] when nothing matches.
func DetectTechStack(meta PageMetadata, text string) []string {
  content := strings.ToLower(text)
  generator := strings.ToLower(meta.Generator)

  var stack []string
  for _, entry := range techStackMarkers {
    matched := false
    for _, marker := range entry.markers {
      if strings.Contains(content, marker) {
        matched = true
        break
      }
    }
    if !matched {
      if gm, ok := generatorMarkers[entry.label]; ok && generator != "" && strings.Contains(generator, gm) {
        matched = true
      }
    }
    if matched {
      stack = append(stack, entry.label)
    }
  }

  if len(stack) == 0 {
    return []string{"Web Application"}
  }
  return stack
}

var endpointPatterns = []*regexp.Regexp{
  regexp.MustCompile(`/api/[\w/]+`),
  regexp.MustCompile(`/v\d+/[\w/]+`),
  regexp.MustCompile(`/graphql`),
  regexp.MustCompile(`/webhook`),
}

const maxEndpoints = 10

// ExtractEndpoints pulls API-looking paths out of raw page text. Duplicates
// are dropped keeping first-occurrence order; the result is capped at 10.
func ExtractEndpoints(text string) []string {
  seen := make(map[string]bool)
  endpoints := []string{}
  for _, pattern := range endpointPatterns {
    for _, match := range pattern.FindAllString(text, -1) {
      if seen[match] {
        continue
      }
      seen[match] = true
      endpoints = append(endpoints, match)
    }
  }
  if len(endpoints) > maxEndpoints {
    endpoints = endpoints[:maxEndpoints]
  }
  return endpoints
}

// languageChecks in priority order; first match wins.
var languageChecks = []struct {
  label   string
  markers []string
}{
  {"JavaScript", []string{"javascript", "js"}},
  {"TypeScript", []string{"typescript", "ts"}},
  {"Python", []string{"python", "py"}},
  {"Java", []string{"java"}},
  {"Go", []string{"go", "golang"}},
}

// DetectLanguage guesses the primary language from page text. The marker
// list is deliberately loose (bare "js"/"ts" count); precision is not the
// point here, a non-empty label for the dashboard is.
func DetectLanguage(text string) string {
  content := strings.ToLower(text)
  for _, check := range languageChecks {
    for _, marker := range check.markers {
      if strings.Contains(content, marker) {
        return check.label
      }
    }
  }
  return "Unknown"
}

var frameworkPriority = []string{"React", "Vue.js", "Angular", "Next.js", "Node.js"}

// DetectFramework picks the primary framework out of a detected tech stack.
func DetectFramework(techStack []string) string {
  for _, framework := range frameworkPriority {
    for _, tech := range techStack {
      if tech == framework {
        return framework
      }
    }
  }
  return "Web Application"
}
