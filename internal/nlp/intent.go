package nlp

import (
	"regexp"
	"strings"
)

// Intent categories. The cascade order in DetectIntent is a hard contract:
// a message with both a greeting and a technical keyword is "technical".
const (
	IntentObdCode   = "obd_code"
	IntentKounhany  = "kounhany"
	IntentTechnical = "technical"
	IntentGreeting  = "greeting"
	IntentGeneral   = "general"
)

var intentCodeRe = regexp.MustCompile(`[PpBbCcUu][0-9]{4}`)

// DetectIntent classifies a message with a first-match-wins rule cascade:
// diagnostic code, then Kounhany keywords, then technical keywords, then
// greetings, then general.
func DetectIntent(message string) string {
	if intentCodeRe.MatchString(message) {
		return IntentObdCode
	}

	messageLower := strings.ToLower(message)

	if ContainsAny(messageLower, KounhanyKeywords) {
		return IntentKounhany
	}
	if ContainsAny(messageLower, TechnicalKeywords) {
		return IntentTechnical
	}
	if ContainsAny(messageLower, GreetingKeywords) {
		return IntentGreeting
	}
	return IntentGeneral
}
