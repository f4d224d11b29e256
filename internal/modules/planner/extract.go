// README: Best-effort extraction of follow-up questions from itinerary text.
package planner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FollowUpMarker is the literal section heading the system prompt instructs
// the model to emit. The extractor keys off its last occurrence.
const FollowUpMarker = "FOLLOW-UP QUESTIONS"

// followUpItem matches the start of one question unit: a bullet glyph, a
// numbered prefix, or a bullet followed by a number ("- 1. ...").
var followUpItem = regexp.MustCompile(`(?m)^[ \t]*(?:[•\-*][ \t]*(?:\d+[.)][ \t]*)?|\d+[.)][ \t]*)`)

// minQuestionLen filters stray punctuation and empty matches; units whose
// trimmed length is at or below it are discarded.
const minQuestionLen = 5

// ExtractFollowUps parses free-text model output into an ordered question
// list. Parsing is best-effort by design: a missing marker, an empty section,
// or prose without list syntax all yield zero questions, never an error.
func ExtractFollowUps(text string) []FollowUpQuestion {
	idx := strings.LastIndex(text, FollowUpMarker)
	if idx < 0 {
		return nil
	}
	section := text[idx+len(FollowUpMarker):]

	locs := followUpItem.FindAllStringIndex(section, -1)
	if len(locs) == 0 {
		return nil
	}

	var out []FollowUpQuestion
	for i, loc := range locs {
		end := len(section)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		// A unit runs from the end of its marker to the next marker (or end
		// of text), so multi-line question bodies stay intact.
		q := strings.TrimSpace(section[loc[1]:end])
		if utf8.RuneCountInString(q) <= minQuestionLen {
			continue
		}
		out = append(out, FollowUpQuestion{Text: q, Order: len(out) + 1})
	}
	return out
}
