// Package obd recognizes OBD-II diagnostic codes in free text and serves the
// static reference table with French explanations.
package obd

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// codeOrder fixes the iteration order over the table so keyword search returns
// deterministic results.
var codeOrder []string

func init() {
	codeOrder = make([]string, 0, len(Codes))
	for code := range Codes {
		codeOrder = append(codeOrder, code)
	}
	sort.Strings(codeOrder)
}

var (
	// Strict form: prefix, optional leading zeros, exactly four digits.
	strictCodeRe = regexp.MustCompile(`\b([PpBbCcUu])\s*0*([0-9]{4})\b`)
	// Lenient form: prefix plus 3-5 significant digits, normalized afterwards.
	lenientCodeRe = regexp.MustCompile(`\b([PpBbCcUu])\s*0*([0-9]{3,5})\b`)
)

// ExtractCode finds an OBD-II code in the given text and returns it in
// canonical form (uppercase prefix + 4 digits). The empty string means no
// code was detected; that is not an error.
func ExtractCode(text string) string {
	if m := strictCodeRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1]) + m[2]
	}

	if m := lenientCodeRe.FindStringSubmatch(text); m != nil {
		digits := m[2]
		if len(digits) > 4 {
			digits = digits[:4]
		} else {
			digits = strings.Repeat("0", 4-len(digits)) + digits
		}
		return strings.ToUpper(m[1]) + digits
	}

	return ""
}

// Lookup returns the table entry for a code, tolerating lowercase input and a
// missing prefix (a bare number is assumed to be a powertrain code).
func Lookup(code string) (CodeInfo, bool) {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))
	if codeUpper == "" {
		return CodeInfo{}, false
	}
	switch codeUpper[0] {
	case 'P', 'B', 'C', 'U':
	default:
		codeUpper = "P" + codeUpper
	}
	info, ok := Codes[codeUpper]
	return info, ok
}

// SearchResult pairs a code with its table entry for keyword search responses.
type SearchResult struct {
	Code string   `json:"code"`
	Info CodeInfo `json:"info"`
}

// Search matches the query as a substring against the French and English
// descriptions, the probable cause and the recommended fix. At most 10
// results are returned, in ascending code order.
func Search(query string) []SearchResult {
	queryLower := strings.ToLower(query)
	var matches []SearchResult

	for _, code := range codeOrder {
		info := Codes[code]
		if strings.Contains(strings.ToLower(info.DescriptionFR), queryLower) ||
			strings.Contains(strings.ToLower(info.DescriptionEN), queryLower) ||
			strings.Contains(strings.ToLower(info.Cause), queryLower) ||
			strings.Contains(strings.ToLower(info.Solution), queryLower) {
			matches = append(matches, SearchResult{Code: code, Info: info})
			if len(matches) == 10 {
				break
			}
		}
	}

	return matches
}

var severityIcons = map[string]string{
	"high":   "🔴",
	"medium": "🟡",
	"low":    "🟢",
}

var severityText = map[string]string{
	"high":   "ÉLEVÉE - À traiter rapidement",
	"medium": "MOYENNE - À surveiller",
	"low":    "FAIBLE - Non urgent",
}

// FormatResponse renders the user-facing French block for a known code.
func FormatResponse(code string, info CodeInfo) string {
	icon, ok := severityIcons[info.Severity]
	if !ok {
		icon = "⚪"
	}
	sevText, ok := severityText[info.Severity]
	if !ok {
		sevText = "Inconnue"
	}

	return fmt.Sprintf(`🔧 **CODE OBD-II: %s**

📋 **Description:** %s

%s **Gravité:** %s

⚠️ **Cause probable:** %s

🔨 **Solution recommandée:** %s

💡 *Pour une réparation fiable, utilisez KOUNHANY pour trouver un garage audité près de chez vous.*`,
		strings.ToUpper(code), info.DescriptionFR, icon, sevText, info.Cause, info.Solution)
}

// FormatUnknownCode renders the fallback block for a syntactically valid code
// that is missing from the table.
func FormatUnknownCode(code string) string {
	return fmt.Sprintf("🔧 **Code OBD-II: %s**\n\nCe code n'est pas dans ma base de données. "+
		"Je vous recommande de consulter un mécanicien ou d'utiliser KOUNHANY pour trouver "+
		"un garage audité qui pourra effectuer un diagnostic complet.", code)
}
