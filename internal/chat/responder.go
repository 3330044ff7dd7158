// Package chat implements a small deterministic guidance responder.
// It matches keywords in the question against a fixed rule set and
// returns canned guidance text. It holds no state and never records
// what was asked.
package chat

import "strings"

// rule maps a set of trigger keywords to one guidance reply.
// The first rule with any keyword present in the question wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"delay", "late"},
		reply: "If your period is 7 or more days late, consider seeing a doctor. " +
			"Stress, weight changes and pregnancy are common causes.",
	},
	{
		keywords: []string{"pain", "cramp"},
		reply: "A hot water bottle, rest and mild pain relief (as advised by a doctor) " +
			"usually help. Contact a doctor if the pain is severe.",
	},
	{
		keywords: []string{"heavy", "bleeding"},
		reply: "Unusually heavy bleeding warrants prompt medical attention. " +
			"Eat iron-rich foods in the meantime.",
	},
}

// FallbackReply is returned when no rule matches the question.
const FallbackReply = "Sorry, I did not understand. Try words like 'delay', 'pain' or " +
	"'heavy', or submit a consultation request."

// Responder answers free-text questions with canned guidance.
type Responder struct{}

// NewResponder creates a new Responder.
func NewResponder() *Responder {
	return &Responder{}
}

// Reply returns the guidance text for the given question.
// Matching is case-insensitive substring matching over the whole question;
// rules are checked in order and the first match wins. An empty or
// unmatched question gets FallbackReply.
func (c *Responder) Reply(question string) string {
	text := strings.ToLower(question)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.reply
			}
		}
	}
	return FallbackReply
}
