// Package quiz implements the question model, answer validation, and the
// per-lesson quiz session state machine.
package quiz

// Question is the sealed interface over the four question kinds.
// Each kind carries only the fields that are valid for it, so an
// ill-formed question (e.g. a matching question without pairs) cannot
// be represented.
type Question interface {
	// Kind returns the wire identifier of the question kind
	Kind() string
	// Prompt returns the question text shown to the user
	Prompt() string

	isQuestion()
}

// MultipleChoice asks the user to pick one option
type MultipleChoice struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Correct string   `json:"-"`
}

// Completion asks the user to fill a blank with one of the candidate fillers
type Completion struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Correct string   `json:"-"`
}

// TrueFalse asks the user to judge a statement
type TrueFalse struct {
	Text    string `json:"question"`
	Correct bool   `json:"-"`
}

// Pair is one authored (left, right) matching pair
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Matching asks the user to reconstruct every authored pair
type Matching struct {
	Text  string `json:"question"`
	Pairs []Pair `json:"pairs"`
}

func (q MultipleChoice) Kind() string { return "multiple-choice" }
func (q Completion) Kind() string     { return "completion" }
func (q TrueFalse) Kind() string      { return "true-false" }
func (q Matching) Kind() string       { return "matching" }

func (q MultipleChoice) Prompt() string { return q.Text }
func (q Completion) Prompt() string     { return q.Text }
func (q TrueFalse) Prompt() string      { return q.Text }
func (q Matching) Prompt() string       { return q.Text }

func (MultipleChoice) isQuestion() {}
func (Completion) isQuestion()     {}
func (TrueFalse) isQuestion()      {}
func (Matching) isQuestion()       {}
