package nlp

import "strings"

// IsOnTopic decides whether a message is admitted by the domain gate.
// A message passes if any rule holds, checked in this order: general
// conversation keyword, automobile keyword, question marker, short message
// (<= 4 words), or an already-active conversation for the user.
func IsOnTopic(text string, hasHistory bool) bool {
	textLower := strings.ToLower(text)

	if ContainsAny(textLower, GeneralConversationKeywords) {
		return true
	}
	if ContainsAny(textLower, AutomobileKeywords) {
		return true
	}
	if ContainsAny(textLower, QuestionMarkers) {
		return true
	}
	if len(strings.Fields(text)) <= 4 {
		return true
	}
	return hasHistory
}
