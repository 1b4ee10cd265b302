package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Service is the outbound surface handlers talk to. Tests substitute
// testutils.MockBot.
type Service interface {
	SendMessage(chatID int64, text string)
	SendVideo(chatID int64, filePath string, replyToMessageID int) error
}

// Bot wraps the Telegram API client.
type Bot struct {
	Api *tgbotapi.BotAPI
}

var _ Service = (*Bot)(nil)

func InitBot(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logrus.WithError(err).Error("Error creating bot")
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{Api: api}, nil
}

func (b *Bot) SendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.Api.Send(msg); err != nil {
		logrus.WithError(err).Errorf("Message not sent: %s", text)
	}
}

// SendVideo uploads the file at filePath as a video reply threaded to
// the original message. Delivery can fail on the platform side (for
// example the upload size limit); the caller decides what to do then.
func (b *Bot) SendVideo(chatID int64, filePath string, replyToMessageID int) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(filePath))
	video.ReplyToMessageID = replyToMessageID
	if _, err := b.Api.Send(video); err != nil {
		return fmt.Errorf("failed to send video: %w", err)
	}
	return nil
}

// GetUpdatesChan starts long polling and returns the update channel.
func (b *Bot) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.Api.GetUpdatesChan(config)
}

// StopReceivingUpdates closes the update channel, letting the main loop
// drain and exit.
func (b *Bot) StopReceivingUpdates() {
	b.Api.StopReceivingUpdates()
}
