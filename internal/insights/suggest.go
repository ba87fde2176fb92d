package insights

import (
  "fmt"
)

// GTMSuggestions builds the ordered advisory list for a connected app from
// the detected tech stack and endpoints. Rule blocks are appended in
// declaration order: baseline, SPA-specific, API-specific, backend-specific,
// then the generic growth set. Rules are mutually exclusive by construction
// so no dedup pass is needed.
func GTMSuggestions(techStack, endpoints []string) []string {
  suggestions := []string{
    "Add Google Analytics tracking",
    "Implement user feedback collection",
    "Set up error monitoring",
  }

  if containsAny(techStack, "React", "Vue.js") {
    suggestions = append(suggestions,
      "Add performance monitoring for SPA",
      "Implement A/B testing framework",
    )
  }

  if len(endpoints) > 0 {
    suggestions = append(suggestions,
      "Monitor API performance and usage",
      "Set up API rate limiting alerts",
    )
  }

  if containsAny(techStack, "Node.js", "Python") {
    suggestions = append(suggestions,
      "Add server-side error tracking",
      "Implement health check endpoints",
    )
  }

  suggestions = append(suggestions,
    "Create landing page for user acquisition",
    "Set up email capture for early users",
    "Implement user onboarding flow",
    "Add social sharing capabilities",
  )

  return suggestions
}

func containsAny(haystack []string, needles ...string) bool {
  for _, needle := range needles {
    for _, item := range haystack {
      if item == needle {
        return true
      }
    }
  }
  return false
}

// TrackingSnippet renders the analytics snippet for a project. The project
// identifier is embedded verbatim with no escaping; identifiers are
// generated server-side, never taken from user input.
func TrackingSnippet(projectID string) string {
  return fmt.Sprintf(`<!-- Launchbase GTM Tracking -->
<script>
  (function(l,a,u,n,c,h,b,a,s,e) {
    l[c] = l[c] || function() { (l[c].q = l[c].q || []).push(arguments) };
    h = a.createElement(u); b = a.getElementsByTagName(u)[0];
    h.async = 1; h.src = n; b.parentNode.insertBefore(h, b);
  })(window, document, 'script', 'https://cdn.launchbase.ai/track.js', 'launchbase');

  launchbase('init', '%s');
  launchbase('track', 'pageview');
</script>
<!-- End Launchbase GTM Tracking -->`, projectID)
}
