package schema

// OptionCount is how many responses chose an option of a question
type OptionCount struct {
	Question int    `json:"question" bson:"question"`
	Option   string `json:"option" bson:"option"`
	Count    int64  `json:"count" bson:"count"`
}

// SurveyDashboard summarizes the responses of one survey
type SurveyDashboard struct {
	Survey        Survey           `json:"survey"`
	ResponseCount int64            `json:"response_count"`
	OptionCounts  []OptionCount    `json:"option_counts"`
	Responses     []SurveyResponse `json:"responses"`
	Locations     []Location       `json:"locations"`
}
