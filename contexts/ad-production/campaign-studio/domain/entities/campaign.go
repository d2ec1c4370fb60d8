package entities

import "time"

type AdFormat string

const (
	AdFormatUGC        AdFormat = "ugc"
	AdFormatStoryMovie AdFormat = "story_movie"
)

func IsSupportedAdFormat(value AdFormat) bool {
	switch value {
	case AdFormatUGC, AdFormatStoryMovie:
		return true
	default:
		return false
	}
}

type SpecStatus string

const (
	SpecStatusDraft  SpecStatus = "draft"
	SpecStatusLocked SpecStatus = "locked"
)

// AvatarSpec pins down the on-screen character so every image prompt
// describes the same person.
type AvatarSpec struct {
	Age                    string
	Gender                 string
	HairColor              string
	HairStyle              string
	SkinTone               string
	Clothing               string
	DistinguishingFeatures string
	FullDescription        string
}

// EnvironmentSpec pins down the setting reused across all keyframes.
type EnvironmentSpec struct {
	Location        string
	TimeOfDay       string
	Lighting        string
	KeyProps        []string
	ColorScheme     []string
	FullDescription string
}

// ConsistencySpec is the locked visual contract for a campaign. Status moves
// draft -> locked exactly once and never back.
type ConsistencySpec struct {
	AvatarSpec      AvatarSpec
	EnvironmentSpec EnvironmentSpec
	VisualStyle     string
	ColorPalette    []string
	Status          SpecStatus
}

// DurationAllocation maps each narrative section to its target seconds.
type DurationAllocation struct {
	Hook        int
	Problem     int
	Solution    int
	SocialProof int
	CTA         int
}

// DefaultDurationAllocation targets a 60 second ad.
func DefaultDurationAllocation() DurationAllocation {
	return DurationAllocation{
		Hook:        5,
		Problem:     13,
		Solution:    14,
		SocialProof: 14,
		CTA:         14,
	}
}

func (d DurationAllocation) For(section Section) int {
	switch section {
	case SectionHook:
		return d.Hook
	case SectionProblem:
		return d.Problem
	case SectionSolution:
		return d.Solution
	case SectionSocialProof:
		return d.SocialProof
	case SectionCTA:
		return d.CTA
	default:
		return 0
	}
}

func (d DurationAllocation) Total() int {
	return d.Hook + d.Problem + d.Solution + d.SocialProof + d.CTA
}

// Campaign is the root aggregate of one ad production run. All mutations to
// phase, consistency spec and storyboard go through single-document updates
// keyed by CampaignID.
type Campaign struct {
	CampaignID         string
	OfferID            string
	AvatarID           string
	AdFormat           AdFormat
	Phase              Phase
	SkipConsistency    bool
	DurationAllocation DurationAllocation
	ConsistencySpec    *ConsistencySpec
	Storyboard         *Storyboard
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ConsistencyLocked reports whether keyframe generation may rely on a
// character lock.
func (c Campaign) ConsistencyLocked() bool {
	return c.ConsistencySpec != nil && c.ConsistencySpec.Status == SpecStatusLocked
}
