package model

// ExtractedRecord is the structured view of one certificate's OCR text.
// Empty strings stand for absent optional fields.
type ExtractedRecord struct {
	Names           []string `json:"names" bson:"names"`
	EventName       string   `json:"eventName" bson:"eventName"`
	Organizations   []string `json:"organizations" bson:"organizations"`
	Dates           []string `json:"dates" bson:"dates"`
	CertificateType string   `json:"certificateType" bson:"certificateType"`
	EventDuration   string   `json:"eventDuration,omitempty" bson:"eventDuration,omitempty"`
	Location        string   `json:"location,omitempty" bson:"location,omitempty"`
	Positions       []string `json:"positions" bson:"positions"`
	Prize           string   `json:"prize,omitempty" bson:"prize,omitempty"`
	ActivityHead    string   `json:"activityHead" bson:"activityHead"` // coarse category guess
	ActivityName    string   `json:"activityName" bson:"activityName"` // fine-grained guess
	RawText         string   `json:"rawText" bson:"rawText"`

	// Low-confidence hints from the OCR/NLP service
	ActivityLevel  Level  `json:"activityLevel,omitempty" bson:"activityLevel,omitempty"`
	ActivityNumber string `json:"activityNumber,omitempty" bson:"activityNumber,omitempty"`
	PointsAwarded  int    `json:"pointsAwarded,omitempty" bson:"pointsAwarded,omitempty"`
}
