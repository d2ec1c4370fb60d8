package entities

import "time"

type Demographics struct {
	Age      string
	Income   string
	Location string
	JobTitle string
	Gender   string
}

type Psychographics struct {
	Values    []string
	Fears     []string
	Worldview string
}

// Avatar is the psychological profile of the target customer. FullBriefMD is
// a markdown research brief rendered to HTML on export.
type Avatar struct {
	AvatarID         string
	Name             string
	Demographics     Demographics
	Psychographics   Psychographics
	PainPoints       []string
	FailedSolutions  []string
	LanguagePatterns []string
	Objections       []string
	TriggerEvents    []string
	Aspirations      []string
	FullBriefMD      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
