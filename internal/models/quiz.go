package models

// QuizState represents the client view of a quiz session. The question
// payload never includes correct answers.
type QuizState struct {
	SessionID  string `json:"sessionId"`
	State      string `json:"state"`
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	Score      int    `json:"score"`
	Kind       string `json:"kind,omitempty"`
	Question   any    `json:"question,omitempty"`
	WasCorrect *bool  `json:"wasCorrect,omitempty"`
	FinalScore *int   `json:"finalScore,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
}

// AnswerRequest captures an option or boolean answer submission
type AnswerRequest struct {
	Option *string `json:"option,omitempty"`
	Truth  *bool   `json:"truth,omitempty"`
}

// MatchRequest captures one (left, right) matching choice
type MatchRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}
