// Package swipe turns CardLogger chat notifications into structured swipe events.
//
// The in-game CardLogger plugin posts one line per keycard swipe, for example:
//
//	:desktop: [Custom] [CardLogger] [3:15 PM EST] Alice swiped a card at Sewer Branch
//
// # Extraction
//
// Extract matches the fixed literals of that template exactly (case-sensitive) and
// captures the player and monument names. The bracketed display time is validated for
// shape but otherwise ignored: the authoritative instant always comes from the message
// envelope, never from the text.
//
// Extraction is fail-closed. Anything that does not match the whole line, or that leaves
// an empty player or monument after trimming, is reported as a no-match. A no-match is
// not an error.
//
// # Usage
//
//	c, ok := swipe.Extract(msg.Content)
//	if !ok {
//	    return
//	}
//	ev := c.At(msg.Timestamp, msg.ID)
package swipe
