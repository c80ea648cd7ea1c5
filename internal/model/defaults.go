package model

// Defaults is the single place fallback values are decided
type Defaults struct {
	EventName       string
	CertificateType string
	ActivityHead    string
	ActivityName    string
	ActivityLevel   Level
	ActivityType    string // result type when nothing better is known
	ActivityNumber  string
	Points          int // awarded when no rule or special case applies

	// Names that mean "nothing was recognised"
	UnknownNames []string
}

// StandardDefaults are the values used unless a caller overrides them
var StandardDefaults = Defaults{
	EventName:       "Unknown Event",
	CertificateType: "Certificate",
	ActivityHead:    string(HeadProfessional),
	ActivityName:    "Training Course",
	ActivityLevel:   LevelI,
	ActivityType:    "Unknown",
	ActivityNumber:  "0",
	Points:          10,
	UnknownNames:    []string{"Unknown Event", "Unknown Activity", "Unknown"},
}

// IsUnknown reports whether name is empty or one of the sentinel unknowns
func (d Defaults) IsUnknown(name string) bool {
	if name == "" {
		return true
	}
	for _, u := range d.UnknownNames {
		if name == u {
			return true
		}
	}
	return false
}

// Level returns l if it is a known level, the default level otherwise
func (d Defaults) Level(l Level) Level {
	if l.Valid() {
		return l
	}
	return d.ActivityLevel
}

// Fill replaces absent fields of rec with defaults and nil slices with empty ones
func (d Defaults) Fill(rec *ExtractedRecord) {
	if rec.Names == nil {
		rec.Names = []string{}
	}
	if rec.Organizations == nil {
		rec.Organizations = []string{}
	}
	if rec.Dates == nil {
		rec.Dates = []string{}
	}
	if rec.Positions == nil {
		rec.Positions = []string{}
	}
	if rec.EventName == "" {
		rec.EventName = d.EventName
	}
	if rec.CertificateType == "" {
		rec.CertificateType = d.CertificateType
	}
	if rec.ActivityHead == "" {
		rec.ActivityHead = d.ActivityHead
	}
	if rec.ActivityName == "" {
		rec.ActivityName = d.ActivityName
	}
}
