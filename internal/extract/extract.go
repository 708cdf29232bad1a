package extract

import (
	"regexp"
	"strings"
)

// Info is the structured data pulled out of a transcript.
type Info struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Patterns are pre-compiled and tried in order; the first match wins.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:hi|hello|hey)[, ]*(?:this is me|i am|my name is|myself) ([A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)\bthis is me[, ]*([A-Z][a-z]+)\b`),
	regexp.MustCompile(`(?i)\bmy name is ([A-Z][a-z]+)\b`),
	regexp.MustCompile(`(?i)\bi am ([A-Z][a-z]+)\b`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:i'm from|i live in|i am from) ([A-Z][a-z]+)\b`),
	regexp.MustCompile(`(?i)\b(?:in|from) ([A-Z][a-z]+)(?:,|\s|$)`),
	regexp.MustCompile(`(?i)\bdid \w+ in ([A-Z][a-z]+)\b`),
	regexp.MustCompile(`(?i)\bmoved to ([A-Z][a-z]+)\b`),
}

// nameCorrections maps common speech-to-text homophones of names back to the
// spelling the speaker intended.
var nameCorrections = map[string]string{
	"pyle": "Payal",
	"pail": "Payal",
	"pyl":  "Payal",
}

// FromTranscript extracts the speaker's name and location from a transcript.
// Fields are left empty when nothing matches.
func FromTranscript(text string) Info {
	var info Info

	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if corrected, ok := nameCorrections[strings.ToLower(name)]; ok {
				name = corrected
			}
			info.Name = name
			break
		}
	}

	for _, re := range locationPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			info.Location = strings.TrimSpace(m[1])
			break
		}
	}

	return info
}
