package quiz

// Recommendation is one ranked club match produced by the scoring service.
type Recommendation struct {
	ClubID          string `json:"club_id"`
	ClubName        string `json:"club_name"`
	MatchPercentage int    `json:"match_percentage"`
	Reason          string `json:"reason"`
}

// Result is the scoring service's output: a personality classification
// plus club recommendations, already ordered best match first. Consumers
// render it as-is and never re-sort.
type Result struct {
	PersonalityType        string           `json:"personality_type"`
	PersonalityDescription string           `json:"personality_description"`
	Recommendations        []Recommendation `json:"recommendations"`
}
