package cardlogger

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for listener settings that cannot accept any swipe.
var ErrInvalidConfig = errors.New("invalid cardlogger configuration")

// Config holds configuration for the Discord CardLogger listener.
type Config struct {
	// DiscordToken is the bot token. Empty disables the listener.
	DiscordToken string `mapstructure:"discord_token" default:""`
	// ChannelID is the only channel swipes are accepted from.
	ChannelID string `mapstructure:"channel_id" default:""`
	// RequireBotAuthor drops messages not posted by a bot or application.
	RequireBotAuthor bool `mapstructure:"require_bot_author" default:"true"`
}

// Validate rejects an enabled listener without a channel, which would ignore every message.
func (c Config) Validate() error {
	if c.DiscordToken != "" && c.ChannelID == "" {
		return fmt.Errorf("%w: channel_id is required when discord_token is set", ErrInvalidConfig)
	}
	return nil
}
