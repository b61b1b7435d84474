// Package profile infers profile facts from a single user utterance using
// keyword heuristics. Matching is best-effort and never consults history.
package profile

import (
	"regexp"
	"strings"

	model "github.com/dvhelper/backend/internal/model/profile"
)

// Locations is the closed vocabulary of recognised places. Order matters: the
// first entry found as a substring wins, so "mumbai" shadows "navi mumbai".
var Locations = []string{
	"delhi", "mumbai", "bangalore", "chennai", "kolkata", "hyderabad", "pune", "ahmedabad",
	"jaipur", "lucknow", "kanpur", "nagpur", "indore", "thane", "bhopal", "visakhapatnam",
	"pimpri", "patna", "vadodara", "ghaziabad", "ludhiana", "agra", "nashik", "faridabad",
	"meerut", "rajkot", "kalyan", "vasai", "varanasi", "srinagar", "aurangabad", "dhanbad",
	"amritsar", "navi mumbai", "allahabad", "ranchi", "howrah", "coimbatore", "jabalpur",
	"gwalior", "vijayawada", "jodhpur", "madurai", "raipur", "kota", "guwahati", "chandigarh",
	"solapur", "hubli", "tiruchirappalli", "bareilly", "mysore", "tiruppur", "gurgaon",
	"aligarh", "jalandhar", "bhubaneswar", "salem", "warangal", "guntur", "bhiwandi",
	"saharanpur", "gorakhpur", "bikaner", "amravati", "noida", "jamshedpur", "bhilai",
	"cuttack", "firozabad", "kochi", "nellore", "bhavnagar", "dehradun", "durgapur", "asansol",
	"rourkela", "nanded", "kolhapur", "ajmer", "akola", "gulbarga", "jamnagar", "ujjain",
	"loni", "siliguri", "jhansi", "ulhasnagar", "jammu", "sangli", "mangalore", "erode",
	"belgaum", "ambattur", "tirunelveli", "malegaon", "gaya", "jalgaon", "udaipur", "maheshtala",
}

// namePatterns are tried in order; the first that matches captures one word.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my name is (\w+)`),
	regexp.MustCompile(`(?i)i am (\w+)`),
	regexp.MustCompile(`(?i)call me (\w+)`),
	regexp.MustCompile(`(?i)i'm (\w+)`),
}

var genderPhrases = []struct {
	gender  model.Gender
	phrases []string
}{
	{model.GenderFemale, []string{"i am a woman", "i am female"}},
	{model.GenderMale, []string{"i am a man", "i am male"}},
}

// situationRules form an exclusive else-if chain in priority order.
var situationRules = []struct {
	situation model.Situation
	keywords  []string
}{
	{model.SituationMarital, []string{"spouse", "marriage", "husband", "wife"}},
	{model.SituationFamily, []string{"family", "in-laws", "parents"}},
	{model.SituationDowry, []string{"dowry"}},
	{model.SituationIntimatePartner, []string{"partner", "boyfriend", "girlfriend"}},
}

// Extract returns the fields of current that text would change. Each field is
// matched independently and the first rule to match wins for that field.
func Extract(text string, current model.Profile) model.Update {
	var update model.Update
	lower := strings.ToLower(text)

	if location, ok := matchLocation(lower); ok && location != current.Location {
		update.Location = &location
	}
	if name, ok := matchName(text); ok && name != current.Name {
		update.Name = &name
	}
	if gender, ok := matchGender(lower); ok && gender != current.Gender {
		update.Gender = &gender
	}
	if situation, ok := matchSituation(lower); ok && situation != current.Situation {
		update.Situation = &situation
	}

	return update
}

func matchLocation(lower string) (string, bool) {
	for _, place := range Locations {
		if strings.Contains(lower, place) {
			return strings.ToUpper(place[:1]) + place[1:], true
		}
	}
	return "", false
}

func matchName(text string) (string, bool) {
	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func matchGender(lower string) (model.Gender, bool) {
	for _, group := range genderPhrases {
		if containsAny(lower, group.phrases) {
			return group.gender, true
		}
	}
	return "", false
}

func matchSituation(lower string) (model.Situation, bool) {
	for _, rule := range situationRules {
		if containsAny(lower, rule.keywords) {
			return rule.situation, true
		}
	}
	return "", false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
