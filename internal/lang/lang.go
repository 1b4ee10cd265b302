package lang

import (
	"fmt"
	"log"
)

type MessageID string

const (
	AuthNotRequiredMsgID     MessageID = "auth_not_required"
	AuthPasswordMissingMsgID MessageID = "auth_password_missing"
	AuthUsageMsgID           MessageID = "auth_usage"
	WrongPasswordMsgID       MessageID = "wrong_password"
	ChatAuthenticatedMsgID   MessageID = "chat_authenticated"
	OtherAuthenticatedMsgID  MessageID = "other_authenticated"
	MetricsMsgID             MessageID = "metrics"
)

var messages = map[MessageID]string{
	AuthNotRequiredMsgID:     "✅ Authentication is not required! You're good to go.",
	AuthPasswordMissingMsgID: "❌ Please provide a password. Usage: /auth <password>",
	AuthUsageMsgID:           "❌ Invalid command. Usage: `/auth <password>` or `/auth <chat_id> <password>`.",
	WrongPasswordMsgID:       "❌ Incorrect password.",
	ChatAuthenticatedMsgID:   "✅ This chat has been authenticated!",
	OtherAuthenticatedMsgID:  "✅ Successfully authenticated the specified chat!",
	MetricsMsgID:             "⬇️ Total number of downloads: %d",
}

func GetMessage(id MessageID, args ...any) string {
	if msg, ok := messages[id]; ok {
		return fmt.Sprintf(msg, args...)
	}
	log.Printf("Message not found for ID: %s", id)
	return "Message not found"
}
