package model

import "time"

// Level is the institutional level an activity was conducted at
type Level string

const (
	LevelI   Level = "I"   // College
	LevelII  Level = "II"  // Zonal / district
	LevelIII Level = "III" // State / university
	LevelIV  Level = "IV"  // National
	LevelV   Level = "V"   // International
)

// Levels lists every level in ascending order
var Levels = []Level{LevelI, LevelII, LevelIII, LevelIV, LevelV}

// Valid reports whether l is one of the five known levels
func (l Level) Valid() bool {
	switch l {
	case LevelI, LevelII, LevelIII, LevelIV, LevelV:
		return true
	}
	return false
}

// ActivityHead is the coarse category of a catalog rule
type ActivityHead string

const (
	HeadNationalInitiatives ActivityHead = "National Initiatives Participation"
	HeadSportsGames         ActivityHead = "Sports & Games Participation"
	HeadCultural            ActivityHead = "Cultural Activities Participation"
	HeadProfessional        ActivityHead = "Professional Self Initiatives"
	HeadEntrepreneurship    ActivityHead = "Entrepreneurship and Innovation"
	HeadLeadership          ActivityHead = "Leadership & Management"
)

// ActivityHeads lists the six catalog categories
var ActivityHeads = []ActivityHead{
	HeadNationalInitiatives,
	HeadSportsGames,
	HeadCultural,
	HeadProfessional,
	HeadEntrepreneurship,
	HeadLeadership,
}

// LevelPoints holds one value per level. Missing levels decode as 0.
type LevelPoints struct {
	I   int `json:"I" bson:"I" validate:"gte=0"`
	II  int `json:"II" bson:"II" validate:"gte=0"`
	III int `json:"III" bson:"III" validate:"gte=0"`
	IV  int `json:"IV" bson:"IV" validate:"gte=0"`
	V   int `json:"V" bson:"V" validate:"gte=0"`
}

// At returns the value for level, 0 for an unknown level
func (p LevelPoints) At(level Level) int {
	switch level {
	case LevelI:
		return p.I
	case LevelII:
		return p.II
	case LevelIII:
		return p.III
	case LevelIV:
		return p.IV
	case LevelV:
		return p.V
	}
	return 0
}

// Uniform returns a table with the same value at every level
func Uniform(points int) LevelPoints {
	return LevelPoints{I: points, II: points, III: points, IV: points, V: points}
}

// PrizePoints is the per-level bonus table for placed finishes
type PrizePoints struct {
	First  LevelPoints `json:"first" bson:"first"`
	Second LevelPoints `json:"second" bson:"second"`
	Third  LevelPoints `json:"third" bson:"third"`
}

// ActivityRule is one entry of the activity points catalog
type ActivityRule struct {
	ID                string       `json:"id" bson:"_id,omitempty"`
	Name              string       `json:"name" bson:"name" validate:"required"`
	ActivityHead      ActivityHead `json:"activityHead" bson:"activityHead" validate:"required,activityhead"`
	ActivityNumber    string       `json:"activityNumber" bson:"activityNumber" validate:"required"` // e.g. "11", "11a"
	Keywords          []string     `json:"keywords" bson:"keywords" validate:"required,min=1,dive,required"`
	PointsPerLevel    LevelPoints  `json:"pointsPerLevel" bson:"pointsPerLevel"`
	PrizePoints       *PrizePoints `json:"prizePoints,omitempty" bson:"prizePoints,omitempty"`
	MaxPoints         int          `json:"maxPoints" bson:"maxPoints" validate:"gte=0"`
	MinDuration       string       `json:"minDuration,omitempty" bson:"minDuration,omitempty"`
	ApprovalDocuments string       `json:"approvalDocuments,omitempty" bson:"approvalDocuments,omitempty"`
	HasSpecialRules   bool         `json:"hasSpecialRules" bson:"hasSpecialRules"`
	SpecialRules      string       `json:"specialRules,omitempty" bson:"specialRules,omitempty"` // informational only
	CreatedAt         time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// PointsResult is the outcome of scoring one certificate
type PointsResult struct {
	ActivityType   string `json:"activityType" bson:"activityType"`
	ActivityName   string `json:"activityName" bson:"activityName"`
	ActivityLevel  Level  `json:"activityLevel" bson:"activityLevel"`
	ActivityNumber string `json:"activityNumber" bson:"activityNumber"` // "0" when no rule matched
	Points         int    `json:"points" bson:"points"`
}
