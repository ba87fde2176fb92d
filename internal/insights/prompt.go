package insights

import (
  "encoding/json"
  "fmt"
  "strings"
)

// AnalysisSource describes where a connection's data came from. Exactly one
// shape is populated: Platform+URL for integrations, URL(+Description) for
// raw URLs, Manual for form submissions.
type AnalysisSource struct {
  Source      string
  Platform    string
  URL         string
  Description string
  Manual      map[string]string
}

// BuildAnalysisPrompt assembles the go-to-market analysis prompt sent to the
// text-generation service. The section outline is fixed; the extraction
// table in ParseAnalysis depends on its headings surviving into the
// response.
func BuildAnalysisPrompt(source AnalysisSource) string {
  var sb strings.Builder

  sb.WriteString("Analyze this MVP/startup and provide a comprehensive go-to-market analysis.\n\n")
  sb.WriteString(fmt.Sprintf("Source: %s\n", source.Source))
  if source.Platform != "" {
    sb.WriteString(fmt.Sprintf("Platform: %s\n", source.Platform))
  }
  if source.URL != "" {
    sb.WriteString(fmt.Sprintf("URL: %s\n", source.URL))
  }
  if source.Description != "" {
    sb.WriteString(fmt.Sprintf("Description: %s\n", source.Description))
  }
  if len(source.Manual) > 0 {
    raw, err := json.Marshal(source.Manual)
    if err == nil {
      sb.WriteString(fmt.Sprintf("Manual Data: %s\n", string(raw)))
    }
  }

  sb.WriteString(`
Please provide a detailed analysis covering:

1. BUSINESS MODEL ANALYSIS
- Revenue model (SaaS, marketplace, e-commerce, etc.)
- Pricing strategy recommendations
- Revenue streams identification

2. TARGET AUDIENCE & MARKET
- Primary customer segments
- Ideal customer profile (ICP)
- Market size and opportunity
- Industry category and trends

3. VALUE PROPOSITION
- Core value proposition
- Key differentiators
- Unique selling points
- Pain points addressed

4. COMPETITIVE LANDSCAPE
- Direct and indirect competitors
- Competitive advantages
- Market positioning

5. GO-TO-MARKET STRATEGY
- Recommended marketing channels
- Customer acquisition strategy
- Launch sequence recommendations
- Key metrics to track

6. PRODUCT INSIGHTS
- Key features analysis
- Feature prioritization
- User experience considerations

Format the response as a structured analysis with clear sections and actionable insights.
`)

  return sb.String()
}
