package insights

import (
  "strings"
)

// ExtractSection returns the first line of text containing keyword
// (case-insensitive substring match), trimmed of whitespace. When no line
// matches it returns fallback. A missing match is not an error; the result
// degrades to the fallback.
func ExtractSection(text, keyword, fallback string) string {
  loweredKeyword := strings.ToLower(keyword)
  for _, line := range strings.Split(text, "\n") {
    if strings.Contains(strings.ToLower(line), loweredKeyword) {
      return strings.TrimSpace(line)
    }
  }
  return fallback
}

// AnalysisFields is the structured shape pulled out of a free-text AI
// analysis.
type AnalysisFields struct {
  BusinessModel       string
  TargetAudience      string
  MarketCategory      string
  Industry            string
  ValueProposition    string
  PricingModel        string
  MarketSize          string
  GoToMarketStrategy  string
  KeyFeatures         []string
  Competitors         []string
  RevenueStreams      []string
  CustomerSegments    []string
  PainPoints          []string
  UniqueSellingPoints []string
}

// Fallbacks used when the response carries no matching line for a field.
const (
  FallbackBusinessModel      = "SaaS"
  FallbackTargetAudience     = "Small to medium businesses"
  FallbackMarketCategory     = "B2B Software"
  FallbackIndustry           = "Technology"
  FallbackValueProposition   = "Streamlined workflow automation"
  FallbackPricingModel       = "Subscription-based"
  FallbackMarketSize         = "Large and growing"
  FallbackGoToMarketStrategy = "Content marketing and partnerships"
)

// ParseAnalysis applies the keyword extraction table to a raw AI response.
// The six list fields have no extraction heuristic yet and are returned as
// static placeholders; a structured-output generation call would replace
// them. Do not "fix" this by inventing parsing: the dashboard renders the
// raw response alongside these fields.
func ParseAnalysis(text string) AnalysisFields {
  return AnalysisFields{
    BusinessModel:       ExtractSection(text, "business model", FallbackBusinessModel),
    TargetAudience:      ExtractSection(text, "target audience", FallbackTargetAudience),
    MarketCategory:      ExtractSection(text, "market", FallbackMarketCategory),
    Industry:            ExtractSection(text, "industry", FallbackIndustry),
    ValueProposition:    ExtractSection(text, "value proposition", FallbackValueProposition),
    PricingModel:        ExtractSection(text, "pricing", FallbackPricingModel),
    MarketSize:          ExtractSection(text, "market size", FallbackMarketSize),
    GoToMarketStrategy:  ExtractSection(text, "go-to-market", FallbackGoToMarketStrategy),
    KeyFeatures:         []string{"Feature 1", "Feature 2", "Feature 3"},
    Competitors:         []string{"Competitor 1", "Competitor 2"},
    RevenueStreams:      []string{"Subscriptions", "Premium features"},
    CustomerSegments:    []string{"SMBs", "Enterprise"},
    PainPoints:          []string{"Manual processes", "Inefficiency"},
    UniqueSellingPoints: []string{"AI-powered", "Easy to use"},
  }
}
