package testutils

// MockMessage captures a single text message sent by MockBot.
type MockMessage struct {
	ChatID int64
	Text   string
}

// MockVideo captures a single video reply sent by MockBot.
type MockVideo struct {
	ChatID           int64
	FilePath         string
	ReplyToMessageID int
}

// MockBot implements bot.Service for testing.
// SentMessages collects every text sent via SendMessage.
// SentVideos collects every video sent via SendVideo.
type MockBot struct {
	SentMessages []MockMessage
	SentVideos   []MockVideo

	// SendVideoError, if set, is returned by SendVideo.
	SendVideoError error
}

func (m *MockBot) SendMessage(chatID int64, text string) {
	m.SentMessages = append(m.SentMessages, MockMessage{
		ChatID: chatID,
		Text:   text,
	})
}

func (m *MockBot) SendVideo(chatID int64, filePath string, replyToMessageID int) error {
	if m.SendVideoError != nil {
		return m.SendVideoError
	}
	m.SentVideos = append(m.SentVideos, MockVideo{
		ChatID:           chatID,
		FilePath:         filePath,
		ReplyToMessageID: replyToMessageID,
	})
	return nil
}

// GetLastMessage returns the most recently sent message, or nil if none.
func (m *MockBot) GetLastMessage() *MockMessage {
	if len(m.SentMessages) == 0 {
		return nil
	}
	return &m.SentMessages[len(m.SentMessages)-1]
}

// ClearMessages resets the captured messages and videos.
func (m *MockBot) ClearMessages() {
	m.SentMessages = nil
	m.SentVideos = nil
}
