package keyword

import "strings"

// followUpCues are phrases that mark a question as continuing the
// previous answer rather than asking something new.
var followUpCues = []string{
	"other than that",
	"what else",
	"anything else",
	"something more",
	"tell me more",
	"what more",
	"what about the rest",
	"what improvements you can add",
}

// IsFollowUp reports whether the question reads as a continuation of the
// previous answer. Short or cue-phrased questions after a prior answer
// usually are: their lexical overlap with the document is structurally
// near zero even though the question is legitimate. Empty questions are
// not follow-ups.
func IsFollowUp(question string) bool {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return false
	}
	for _, cue := range followUpCues {
		if strings.Contains(q, cue) {
			return true
		}
	}
	return len(strings.Fields(q)) <= 4
}
