// Package cardlogger ingests CardLogger notifications from a Discord channel.
//
// # Message Flow
//
// Every inbound message is reduced to a Message (text, automated-author flag, channel id,
// message id, sent-at instant) and passed to Listener.Handle, which:
//
//  1. drops messages from any channel other than the configured one,
//  2. drops messages from human authors when RequireBotAuthor is set,
//  3. extracts the swipe with swipe.Extract (no-match is dropped silently),
//  4. records the swipe through the reconciliation engine, using the message envelope's
//     timestamp and id.
//
// Filtered messages never reach the extractor.
//
// # Discord Session
//
// DiscordSource owns the gateway session: it is opened when Run starts and closed when
// the context ends. Events are delivered synchronously so swipes reach the engine in
// gateway order.
package cardlogger
