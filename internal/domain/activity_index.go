package domain

import "math"

// PoliticalIndex summarises a user's leaning from their profile and their scraps.
type PoliticalIndex struct {
	ProfileScore        int         `json:"profile_score"`
	ProfileAffiliation  Affiliation `json:"profile_affiliation"`
	HasProfileScore     bool        `json:"has_profile_score"`
	ActivityScore       int         `json:"activity_score"`
	ActivityAffiliation Affiliation `json:"activity_affiliation"`
	ActivityFromScraps  bool        `json:"activity_from_scraps"`
	ScrapCount          int         `json:"scrap_count"`
	ScoredScrapCount    int         `json:"scored_scrap_count"`
}

// ActivityIndex is the mean of the valid scores rounded half up. Without any valid score it
// falls back to the profile score, or NeutralScore when there is none. The bool reports
// whether the result came from the scores.
func ActivityIndex(scores []*int, profileScore *int) (int, bool) {
	var sum, count int
	for _, s := range scores {
		if s == nil {
			continue
		}
		sum += *s
		count++
	}

	if count == 0 {
		if profileScore != nil {
			return ClampScore(*profileScore), false
		}
		return NeutralScore, false
	}

	mean := float64(sum) / float64(count)
	return ClampScore(int(math.Floor(mean + 0.5))), true
}

// NewPoliticalIndex computes the index for a user from their scrapped articles' scores.
func NewPoliticalIndex(user User, scrapScores []*int, thresholds Thresholds) PoliticalIndex {
	profile := NeutralScore
	if user.PoliticalScore != nil {
		profile = ClampScore(*user.PoliticalScore)
	}

	activity, fromScraps := ActivityIndex(scrapScores, user.PoliticalScore)

	scored := 0
	for _, s := range scrapScores {
		if s != nil {
			scored++
		}
	}

	return PoliticalIndex{
		ProfileScore:        profile,
		ProfileAffiliation:  thresholds.Classify(profile),
		HasProfileScore:     user.PoliticalScore != nil,
		ActivityScore:       activity,
		ActivityAffiliation: thresholds.Classify(activity),
		ActivityFromScraps:  fromScraps,
		ScrapCount:          len(scrapScores),
		ScoredScrapCount:    scored,
	}
}
