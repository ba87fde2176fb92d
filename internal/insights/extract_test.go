package insights

import (
	"strings"
	"testing"
)

func TestExtractSection(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		keyword  string
		fallback string
		want     string
	}{
		{
			name:     "first_matching_line_wins",
			text:     "intro\nBusiness Model: subscription SaaS\nbusiness model appendix",
			keyword:  "business model",
			fallback: "none",
			want:     "Business Model: subscription SaaS",
		},
		{
			name:     "match_is_case_insensitive",
			text:     "THE PRICING STRATEGY IS FREEMIUM",
			keyword:  "pricing",
			fallback: "none",
			want:     "THE PRICING STRATEGY IS FREEMIUM",
		},
		{
			name:     "matched_line_is_trimmed",
			text:     "   Target Audience: indie founders   \n",
			keyword:  "target audience",
			fallback: "none",
			want:     "Target Audience: indie founders",
		},
		{
			name:     "no_match_returns_fallback",
			text:     "nothing relevant here",
			keyword:  "industry",
			fallback: "Technology",
			want:     "Technology",
		},
		{
			name:     "empty_text_returns_fallback",
			text:     "",
			keyword:  "market size",
			fallback: "Large and growing",
			want:     "Large and growing",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractSection(tc.text, tc.keyword, tc.fallback)
			if got != tc.want {
				t.Fatalf("ExtractSection(%q, %q)=%q, want %q", tc.text, tc.keyword, got, tc.want)
			}
		})
	}
}

func TestParseAnalysisDefaults(t *testing.T) {
	fields := ParseAnalysis("")

	if fields.BusinessModel != FallbackBusinessModel {
		t.Errorf("BusinessModel=%q, want %q", fields.BusinessModel, FallbackBusinessModel)
	}
	if fields.TargetAudience != FallbackTargetAudience {
		t.Errorf("TargetAudience=%q, want %q", fields.TargetAudience, FallbackTargetAudience)
	}
	if fields.MarketCategory != FallbackMarketCategory {
		t.Errorf("MarketCategory=%q, want %q", fields.MarketCategory, FallbackMarketCategory)
	}
	if fields.Industry != FallbackIndustry {
		t.Errorf("Industry=%q, want %q", fields.Industry, FallbackIndustry)
	}
	if fields.ValueProposition != FallbackValueProposition {
		t.Errorf("ValueProposition=%q, want %q", fields.ValueProposition, FallbackValueProposition)
	}
	if fields.PricingModel != FallbackPricingModel {
		t.Errorf("PricingModel=%q, want %q", fields.PricingModel, FallbackPricingModel)
	}
	if fields.MarketSize != FallbackMarketSize {
		t.Errorf("MarketSize=%q, want %q", fields.MarketSize, FallbackMarketSize)
	}
	if fields.GoToMarketStrategy != FallbackGoToMarketStrategy {
		t.Errorf("GoToMarketStrategy=%q, want %q", fields.GoToMarketStrategy, FallbackGoToMarketStrategy)
	}

	if len(fields.KeyFeatures) != 3 || len(fields.Competitors) != 2 {
		t.Errorf("placeholder lists wrong lengths: features=%d competitors=%d", len(fields.KeyFeatures), len(fields.Competitors))
	}
}

func TestParseAnalysisExtractsMatchingLines(t *testing.T) {
	text := strings.Join([]string{
		"1. BUSINESS MODEL ANALYSIS",
		"The business model is a two-sided marketplace.",
		"Target audience: early-stage SaaS founders",
		"Industry: developer tooling",
		"Value proposition: ship GTM faster",
		"Pricing should be usage-based",
		"The market size is estimated at $4B",
		"Go-to-market motion: product-led growth",
	}, "\n")

	fields := ParseAnalysis(text)

	if fields.BusinessModel != "1. BUSINESS MODEL ANALYSIS" {
		t.Errorf("BusinessModel=%q, want first line containing keyword", fields.BusinessModel)
	}
	if fields.TargetAudience != "Target audience: early-stage SaaS founders" {
		t.Errorf("TargetAudience=%q", fields.TargetAudience)
	}
	if fields.Industry != "Industry: developer tooling" {
		t.Errorf("Industry=%q", fields.Industry)
	}
	if fields.PricingModel != "Pricing should be usage-based" {
		t.Errorf("PricingModel=%q", fields.PricingModel)
	}
	if fields.MarketSize != "The market size is estimated at $4B" {
		t.Errorf("MarketSize=%q", fields.MarketSize)
	}
	if fields.GoToMarketStrategy != "Go-to-market motion: product-led growth" {
		t.Errorf("GoToMarketStrategy=%q", fields.GoToMarketStrategy)
	}
}

func TestBuildAnalysisPromptIncludesSourceFields(t *testing.T) {
	prompt := BuildAnalysisPrompt(AnalysisSource{
		Source:      "url",
		URL:         "https://example.com",
		Description: "a thing",
	})
	for _, want := range []string{
		"Source: url",
		"URL: https://example.com",
		"Description: a thing",
		"1. BUSINESS MODEL ANALYSIS",
		"5. GO-TO-MARKET STRATEGY",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "Platform:") {
		t.Error("prompt should omit empty platform")
	}
}
