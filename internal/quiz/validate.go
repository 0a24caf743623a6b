package quiz

// Submission holds the candidate answer captured for one question.
// Exactly one of the fields is meaningful for a given question kind.
type Submission struct {
	Option  *string
	Truth   *bool
	Matches map[string]string
}

// Validate decides whether a submission answers a question correctly.
// It is pure and never fails: an absent or mismatched selection is
// simply incorrect.
func Validate(q Question, sub Submission) bool {
	switch question := q.(type) {
	case MultipleChoice:
		return sub.Option != nil && *sub.Option == question.Correct
	case Completion:
		return sub.Option != nil && *sub.Option == question.Correct
	case TrueFalse:
		return sub.Truth != nil && *sub.Truth == question.Correct
	case Matching:
		// Correct only when the mapping is total over the authored pairs
		// and every submitted pair matches exactly.
		if len(sub.Matches) != len(question.Pairs) {
			return false
		}
		for _, pair := range question.Pairs {
			right, ok := sub.Matches[pair.Left]
			if !ok || right != pair.Right {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// hasAnswer reports whether a submission is complete enough to be checked.
// For matching this means every left key has a submitted right value;
// partial mappings are rejected from checking rather than validated.
func hasAnswer(q Question, sub Submission) bool {
	switch question := q.(type) {
	case MultipleChoice, Completion:
		return sub.Option != nil
	case TrueFalse:
		return sub.Truth != nil
	case Matching:
		for _, pair := range question.Pairs {
			if _, ok := sub.Matches[pair.Left]; !ok {
				return false
			}
		}
		return len(question.Pairs) > 0
	default:
		return false
	}
}
