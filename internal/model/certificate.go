package model

import "time"

// CertificateStatus is the review state of an uploaded certificate
type CertificateStatus string

const (
	StatusPending  CertificateStatus = "pending"
	StatusApproved CertificateStatus = "approved"
	StatusRejected CertificateStatus = "rejected"
)

// Valid reports whether s is a known status
func (s CertificateStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// CertificateData is the extraction and scoring trail kept with a certificate
type CertificateData struct {
	RawText           string          `json:"rawText" bson:"rawText"`
	Entities          ExtractedRecord `json:"entities" bson:"entities"`
	PointsCalculation PointsResult    `json:"pointsCalculation" bson:"pointsCalculation"`
}

// Certificate is a student's uploaded activity certificate
type Certificate struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	UserID        string            `json:"userId" bson:"userId"`
	Class         string            `json:"class" bson:"class"`
	FileName      string            `json:"fileName" bson:"fileName"` // original upload name
	FilePath      string            `json:"filePath" bson:"filePath"` // relative to the upload dir
	ActivityType  string            `json:"activityType" bson:"activityType"`
	ActivityName  string            `json:"activityName" bson:"activityName"`
	ActivityLevel Level             `json:"activityLevel" bson:"activityLevel"`
	PointsAwarded int               `json:"pointsAwarded" bson:"pointsAwarded"`
	Status        CertificateStatus `json:"status" bson:"status"`
	ExtractedData CertificateData   `json:"extractedData" bson:"extractedData"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// SummaryItem is one approved certificate inside a summary group
type SummaryItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  Level  `json:"level"`
	Points int    `json:"points"`
}

// ActivityGroup totals approved certificates of one activity type
type ActivityGroup struct {
	Type         string        `json:"type"`
	Certificates []SummaryItem `json:"certificates"`
	TotalPoints  int           `json:"totalPoints"`
}

// PointsSummary is a student's approved points grouped by activity type
type PointsSummary struct {
	TotalPoints int             `json:"totalPoints"`
	Activities  []ActivityGroup `json:"activities"`
}

// LeaderboardEntry is one student's approved total within a class
type LeaderboardEntry struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}
