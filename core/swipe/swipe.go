package swipe

import (
	"regexp"
	"strings"
	"time"
)

// space is any character strings.TrimSpace removes, so the pattern and the
// capture trimming agree on what whitespace is.
const space = `[\s\p{Z}\x{85}]`

// cardLine matches a full CardLogger notification. Surrounding whitespace is tolerated,
// any other leading or trailing content is not.
var cardLine = regexp.MustCompile(strings.NewReplacer(`\s`, space).Replace(
	`^\s*:desktop:\s*\[Custom\]\s*\[CardLogger\]\s*\[(?P<time>\d{1,2}:\d{2}\s[AP]M)\s(?P<tz>[A-Z]{2,4})\]\s(?P<player>.+?)\sswiped a card at\s(?P<monument>.+?)\s*$`,
))

var (
	playerIdx   = cardLine.SubexpIndex("player")
	monumentIdx = cardLine.SubexpIndex("monument")
)

// Candidate is the text-derived part of a swipe: who swiped and where.
type Candidate struct {
	Player   string
	Monument string
}

// Event is a fully resolved swipe ready for reconciliation.
type Event struct {
	// MonumentName is the case-sensitive identity of the monument.
	MonumentName string `json:"monument"`
	// PlayerName is the player credited with the swipe.
	PlayerName string `json:"player"`
	// OccurredAt is the UTC instant of the source message.
	OccurredAt time.Time `json:"occurred_at"`
	// SourceEventID identifies the source message and is used for dedup only.
	SourceEventID string `json:"source_event_id"`
}

// Extract parses a CardLogger line. ok is false for any text that is not a swipe
// notification.
func Extract(text string) (Candidate, bool) {
	m := cardLine.FindStringSubmatch(text)
	if m == nil {
		return Candidate{}, false
	}

	c := Candidate{
		Player:   strings.TrimSpace(m[playerIdx]),
		Monument: strings.TrimSpace(m[monumentIdx]),
	}
	if c.Player == "" || c.Monument == "" {
		return Candidate{}, false
	}
	return c, true
}

// At binds the candidate to its envelope timestamp and message id.
func (c Candidate) At(sentAt time.Time, messageID string) Event {
	return Event{
		MonumentName:  c.Monument,
		PlayerName:    c.Player,
		OccurredAt:    sentAt.UTC(),
		SourceEventID: messageID,
	}
}
