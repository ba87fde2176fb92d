package insights

import (
	"strings"
	"testing"
)

func TestGTMSuggestionsBaseline(t *testing.T) {
	got := GTMSuggestions(nil, nil)
	want := []string{
		"Add Google Analytics tracking",
		"Implement user feedback collection",
		"Set up error monitoring",
		"Create landing page for user acquisition",
		"Set up email capture for early users",
		"Implement user onboarding flow",
		"Add social sharing capabilities",
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestGTMSuggestionsConditionalBlocks(t *testing.T) {
	got := GTMSuggestions([]string{"React", "Node.js"}, []string{"/api/users"})

	// baseline(3) + SPA(2) + API(2) + backend(2) + growth(4)
	if len(got) != 13 {
		t.Fatalf("len=%d, want 13: %v", len(got), got)
	}

	mustContain := []string{
		"Add performance monitoring for SPA",
		"Monitor API performance and usage",
		"Add server-side error tracking",
	}
	for _, want := range mustContain {
		found := false
		for _, s := range got {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing suggestion %q", want)
		}
	}

	// SPA block comes before the API block, which comes before backend
	idx := func(s string) int {
		for i, v := range got {
			if v == s {
				return i
			}
		}
		return -1
	}
	if !(idx("Add performance monitoring for SPA") < idx("Monitor API performance and usage")) {
		t.Error("SPA suggestions should precede API suggestions")
	}
	if !(idx("Monitor API performance and usage") < idx("Add server-side error tracking")) {
		t.Error("API suggestions should precede backend suggestions")
	}
}

func TestGTMSuggestionsNoAPIBlockWithoutEndpoints(t *testing.T) {
	got := GTMSuggestions([]string{"Bootstrap"}, nil)
	for _, s := range got {
		if s == "Monitor API performance and usage" {
			t.Fatal("API suggestions should require detected endpoints")
		}
	}
}

func TestTrackingSnippet(t *testing.T) {
	snippet := TrackingSnippet("proj-123")
	for _, want := range []string{
		"<!-- Launchbase GTM Tracking -->",
		"https://cdn.launchbase.ai/track.js",
		"launchbase('init', 'proj-123');",
		"launchbase('track', 'pageview');",
	} {
		if !strings.Contains(snippet, want) {
			t.Errorf("snippet missing %q", want)
		}
	}
}
