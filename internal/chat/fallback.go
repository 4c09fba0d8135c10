package chat

import "strings"

// rule maps a lowercase substring to a canned reply.  Order matters: the
// first match wins, so the literal showcase emails sit above the generic
// keywords that would otherwise swallow them ("esprit" matches any
// @esprit.tn address).
type rule struct {
	keyword string
	reply   string
}

var fallbackRules = []rule{
	{
		keyword: "ahmed.bensalem@esprit.tn",
		reply:   "Ahmed BenSalem is one of our showcase alumni profiles. Search his email in the directory to see the full record, including LinkedIn and Facebook links.",
	},
	{
		keyword: "sara.mansouri@esprit.tn",
		reply:   "Sara Mansouri is one of our showcase alumni profiles. Search her email in the directory to see the full record, including LinkedIn and Facebook links.",
	},
	{
		keyword: "hello",
		reply:   "Hello! I'm the Alumni Portal AI assistant. How can I help you today?",
	},
	{
		keyword: "hi",
		reply:   "Hello! I'm the Alumni Portal AI assistant. How can I help you today?",
	},
	{
		keyword: "joke",
		reply:   "Why don't skeletons fight each other? They don't have the guts.",
	},
	{
		keyword: "alumni",
		reply:   "I can help you search for alumni information using their Esprit email addresses. Just enter an email like 'Ahmed.BenSalem@esprit.tn' in the search box!",
	},
	{
		keyword: "esprit",
		reply:   "Esprit is the university this alumni portal is designed for. All alumni emails follow the format: FirstName.LastName@esprit.tn",
	},
}

// fallbackDefault is the reply when no rule matches.
const fallbackDefault = "I'm here to help with alumni information. You can search for alumni using their Esprit email addresses, or ask me about the portal features!"

// Fallback picks a canned reply for the message.  Matching is a
// case-insensitive substring scan over the ordered rule list, so the same
// input always yields the same output.
func Fallback(message string) string {
	lower := strings.ToLower(message)
	for _, r := range fallbackRules {
		if strings.Contains(lower, r.keyword) {
			return r.reply
		}
	}
	return fallbackDefault
}
