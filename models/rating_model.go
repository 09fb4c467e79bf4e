package models

// Rating is the five-criteria evaluation a student submits once per
// attended session. Immutable after creation; there is no edit endpoint.
type Rating struct {
	Knowledge      int    `json:"knowledge"`
	Communication  int    `json:"communication"`
	Patience       int    `json:"patience"`
	Engagement     int    `json:"engagement"`
	ProblemSolving int    `json:"problem_solving"`
	Comments       string `json:"comments,omitempty"`
}
