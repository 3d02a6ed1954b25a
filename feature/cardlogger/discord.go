package cardlogger

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// ErrMissingToken is returned when the listener is started without a bot token.
var ErrMissingToken = errors.New("discord token is empty; set CARDLOGGER_DISCORD_TOKEN")

// DiscordSource feeds a Listener from the Discord gateway.
type DiscordSource struct {
	token    string
	listener *Listener
	logger   *zap.Logger
}

// NewDiscordSource creates a source. The session is not opened until Run.
func NewDiscordSource(token string, listener *Listener, logger *zap.Logger) *DiscordSource {
	return &DiscordSource{token: token, listener: listener, logger: logger}
}

// Run opens the gateway session and delivers messages until ctx is done.
func (d *DiscordSource) Run(ctx context.Context) error {
	if d.token == "" {
		return ErrMissingToken
	}

	session, err := discordgo.New("Bot " + d.token)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	session.SyncEvents = true
	session.LogLevel = discordgo.LogWarning
	discordgo.Logger = func(level, _ int, format string, a ...interface{}) {
		d.logger.Warn("[Discord] "+fmt.Sprintf(format, a...), zap.Int("discord_level", level))
	}

	session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		_ = d.listener.Handle(ctx, toMessage(m.Message))
	})
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		d.logger.Info("Discord session ready", zap.String("user", r.User.Username))
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	d.logger.Info("Discord listener started", zap.String("channel_id", d.listener.cfg.ChannelID))

	<-ctx.Done()

	if err := session.Close(); err != nil {
		d.logger.Warn("Failed to close discord session", zap.Error(err))
	}
	d.logger.Info("Discord listener stopped")
	return nil
}

func toMessage(m *discordgo.Message) Message {
	msg := Message{
		Text:      m.Content,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		SentAt:    m.Timestamp.UTC(),
	}
	if m.Author != nil {
		msg.AuthorIsAutomated = m.Author.Bot || m.Author.System
	}
	if m.WebhookID != "" {
		msg.AuthorIsAutomated = true
	}
	return msg
}
