package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func LoggingMiddleware(update *tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	fields := logrus.Fields{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	}
	if update.Message.From != nil {
		fields["username"] = update.Message.From.UserName
	}
	logrus.WithFields(fields).Info("Received a new message")
}
