// Package points scores an extracted certificate against the activity
// points catalog.
package points

import (
	"certpoints/internal/corpus"
	"certpoints/internal/model"
)

// Prize is a placed finish detected in the certificate text
type Prize int

const (
	PrizeNone Prize = iota
	PrizeFirst
	PrizeSecond
	PrizeThird
)

func (p Prize) String() string {
	switch p {
	case PrizeFirst:
		return "first"
	case PrizeSecond:
		return "second"
	case PrizeThird:
		return "third"
	}
	return "none"
}

// Policy holds every constant the engine scores with
type Policy struct {
	Defaults model.Defaults

	NPTELPoints         int
	CoursePoints        int
	ParticipationPoints int // college-level cultural, sports and literary base

	FirstBonus  int
	SecondBonus int
	ThirdBonus  int
}

// DefaultPolicy is the KTU scoring policy
func DefaultPolicy() Policy {
	return Policy{
		Defaults:            model.StandardDefaults,
		NPTELPoints:         50,
		CoursePoints:        6,
		ParticipationPoints: 8,
		FirstBonus:          10,
		SecondBonus:         8,
		ThirdBonus:          6,
	}
}

// Bonus is the flat bonus for a prize tier
func (p Policy) Bonus(prize Prize) int {
	switch prize {
	case PrizeFirst:
		return p.FirstBonus
	case PrizeSecond:
		return p.SecondBonus
	case PrizeThird:
		return p.ThirdBonus
	}
	return 0
}

// DetectPrize finds the prize tier, first before second before third.
// A first-tier word only counts when no second or third tier word appears.
func DetectPrize(text corpus.Corpus) Prize {
	second := text.HasAny("second", "2nd")
	third := text.HasAny("third", "3rd")
	switch {
	case text.HasAny("first", "1st", "winner") && !second && !third:
		return PrizeFirst
	case second:
		return PrizeSecond
	case third:
		return PrizeThird
	}
	return PrizeNone
}

var levelTerms = []struct {
	level model.Level
	terms []string
}{
	{model.LevelV, []string{"international"}},
	{model.LevelIV, []string{"national"}},
	{model.LevelIII, []string{"state", "university"}},
	{model.LevelII, []string{"zonal", "district"}},
	{model.LevelI, []string{"college", "institution"}},
}

// DetectLevel guesses the level an activity was held at from its text
func DetectLevel(text corpus.Corpus) model.Level {
	for _, lt := range levelTerms {
		if text.HasAny(lt.terms...) {
			return lt.level
		}
	}
	return model.LevelI
}
