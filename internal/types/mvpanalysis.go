package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
)

const (
  AnalysisStatusAnalyzing = "analyzing"
  AnalysisStatusCompleted = "completed"
  AnalysisStatusFailed    = "failed"
)

type MVPAnalysis struct {
  ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  UserID              uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
  User                *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
  MVPConnectionID     uuid.UUID      `gorm:"type:uuid;not null;index;column:mvp_connection_id" json:"mvp_connection_id"`
  MVPConnection       *MVPConnection `gorm:"constraint:OnDelete:CASCADE;foreignKey:MVPConnectionID;references:ID" json:"mvp_connection,omitempty"`
  AnalysisStatus      string         `gorm:"column:analysis_status;not null" json:"analysis_status"`
  BusinessModel       string         `gorm:"column:business_model" json:"business_model"`
  TargetAudience      string         `gorm:"column:target_audience" json:"target_audience"`
  MarketCategory      string         `gorm:"column:market_category" json:"market_category"`
  Industry            string         `gorm:"column:industry" json:"industry"`
  ValueProposition    string         `gorm:"column:value_proposition" json:"value_proposition"`
  PricingModel        string         `gorm:"column:pricing_model" json:"pricing_model"`
  MarketSize          string         `gorm:"column:market_size" json:"market_size"`
  GoToMarketStrategy  string         `gorm:"column:go_to_market_strategy" json:"go_to_market_strategy"`
  KeyFeatures         datatypes.JSON `gorm:"type:jsonb;column:key_features" json:"key_features"`
  Competitors         datatypes.JSON `gorm:"type:jsonb;column:competitors" json:"competitors"`
  RevenueStreams      datatypes.JSON `gorm:"type:jsonb;column:revenue_streams" json:"revenue_streams"`
  CustomerSegments    datatypes.JSON `gorm:"type:jsonb;column:customer_segments" json:"customer_segments"`
  PainPoints          datatypes.JSON `gorm:"type:jsonb;column:pain_points" json:"pain_points"`
  UniqueSellingPoints datatypes.JSON `gorm:"type:jsonb;column:unique_selling_points" json:"unique_selling_points"`
  AnalysisConfidence  float64        `gorm:"column:analysis_confidence" json:"analysis_confidence"`
  RawAnalysisData     string         `gorm:"type:text;column:raw_analysis_data" json:"raw_analysis_data"`
  CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
}

func (MVPAnalysis) TableName() string {
  return "mvp_analysis"
}
