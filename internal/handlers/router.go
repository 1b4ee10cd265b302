package handlers

import (
	"context"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/reelfetch/telegram-reels-bot/internal/auth"
	"github.com/reelfetch/telegram-reels-bot/internal/bot"
	"github.com/reelfetch/telegram-reels-bot/internal/downloads"
	"github.com/reelfetch/telegram-reels-bot/internal/lang"
	"github.com/reelfetch/telegram-reels-bot/internal/metrics"
	"github.com/reelfetch/telegram-reels-bot/internal/urlmatch"
)

// Router dispatches inbound updates to the matching action. It keeps no
// per-call state; everything stateful lives in the registry, the counter
// and the user-to-group bookkeeping map.
type Router struct {
	bot          bot.Service
	registry     *auth.Registry
	counter      *metrics.Counter
	orchestrator *downloads.Orchestrator

	// shutdown is invoked by the admin /exit command.
	shutdown func()

	// userToGroup remembers the last group chat each user spoke in.
	mu          sync.Mutex
	userToGroup map[string]string
}

func NewRouter(
	botService bot.Service,
	registry *auth.Registry,
	counter *metrics.Counter,
	orchestrator *downloads.Orchestrator,
	shutdown func(),
) *Router {
	return &Router{
		bot:          botService,
		registry:     registry,
		counter:      counter,
		orchestrator: orchestrator,
		shutdown:     shutdown,
		userToGroup:  make(map[string]string),
	}
}

// HandleUpdate processes one update. Nothing escaping a handler may kill
// the update loop, so panics are recovered and logged here.
func (r *Router) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithField("panic", rec).Error("Recovered from panic while handling an update")
		}
	}()

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	LoggingMiddleware(update)

	if update.Message.IsCommand() {
		r.handleCommand(ctx, update)
		return
	}

	text := strings.TrimSpace(update.Message.Text)
	r.handleDownloadRequest(ctx, text, update)
}

func (r *Router) handleCommand(ctx context.Context, update *tgbotapi.Update) {
	command := update.Message.Command()
	switch command {
	case "auth":
		r.handleAuth(update)
	case "download":
		r.handleDownloadCommand(ctx, update)
	case "metrics":
		r.handleMetrics(update)
	case "clear_auth":
		r.handleClearAuth(update)
	case "exit":
		r.handleExit(update)
	default:
		logrus.Debugf("Ignoring unknown command: %s", command)
	}
}

// handleAuth covers both forms: /auth <password> authenticates the
// sender's chat, /auth <chat_id> <password> authenticates the named one.
func (r *Router) handleAuth(update *tgbotapi.Update) {
	senderChatID := chatIDString(update)

	if !r.registry.Required() {
		r.bot.SendMessage(update.Message.Chat.ID, lang.GetMessage(lang.AuthNotRequiredMsgID))
		return
	}

	args := strings.Fields(update.Message.CommandArguments())

	var chatID, password string
	switch len(args) {
	case 0:
		r.bot.SendMessage(update.Message.Chat.ID, lang.GetMessage(lang.AuthPasswordMissingMsgID))
		return
	case 1:
		chatID = senderChatID
		password = args[0]
	case 2:
		chatID = args[0]
		password = args[1]
	default:
		r.bot.SendMessage(update.Message.Chat.ID, lang.GetMessage(lang.AuthUsageMsgID))
		return
	}

	if !r.registry.CheckPassword(password) {
		r.bot.SendMessage(update.Message.Chat.ID, lang.GetMessage(lang.WrongPasswordMsgID))
		return
	}

	r.registry.Authenticate(chatID)
	logrus.Infof("Authenticated chat: %q", chatID)

	if chatID == senderChatID {
		r.bot.SendMessage(update.Message.Chat.ID, lang.GetMessage(lang.ChatAuthenticatedMsgID))
	} else {
		r.bot.SendMessage(update.Message.Chat.ID, lang.GetMessage(lang.OtherAuthenticatedMsgID))
	}
}

// handleDownloadCommand takes the second whitespace-separated token of
// the message as the download text. A bare /download is ignored.
func (r *Router) handleDownloadCommand(ctx context.Context, update *tgbotapi.Update) {
	splits := strings.Fields(strings.TrimSpace(update.Message.Text))
	if len(splits) <= 1 {
		return
	}

	text := splits[1]
	logrus.Infof("Received /download command: %q", text)
	r.handleDownloadRequest(ctx, text, update)
}

func (r *Router) handleMetrics(update *tgbotapi.Update) {
	r.bot.SendMessage(update.Message.Chat.ID, lang.GetMessage(lang.MetricsMsgID, r.counter.Value()))
}

// handleClearAuth resets the registry to the pre-authorized seed list.
// Non-admin senders are dropped silently, with no reply revealing that
// the command exists.
func (r *Router) handleClearAuth(update *tgbotapi.Update) {
	if !r.isAdminSender(update) {
		return
	}

	logrus.Info("/clear_auth: clearing all authenticated chat IDs")
	r.registry.Reset()
}

func (r *Router) handleExit(update *tgbotapi.Update) {
	if !r.isAdminSender(update) {
		return
	}

	logrus.Info("Received 'exit' command from admin. Goodbye!")
	if r.shutdown != nil {
		r.shutdown()
	}
}

// handleDownloadRequest is shared by the /download command and the free
// text path. Unauthorized chats and unrecognized text are both dropped
// silently, so an outside observer cannot tell which chats are gated.
func (r *Router) handleDownloadRequest(ctx context.Context, text string, update *tgbotapi.Update) {
	chatID := chatIDString(update)

	if chat := update.Message.Chat; chat.IsGroup() || chat.IsSuperGroup() {
		if update.Message.From != nil {
			r.recordGroup(userIDString(update), chatID)
		}
	}

	if r.registry.Required() && !r.registry.IsAuthenticated(chatID) {
		logrus.Infof("Unauthenticated chat: %q", chatID)
		return
	}

	match, ok := urlmatch.Find(text)
	if !ok {
		return
	}

	// At most one download per inbound message, even if several
	// supported fragments are present.
	if err := r.orchestrator.Handle(ctx, match.URL, update.Message.Chat.ID, update.Message.MessageID); err != nil {
		logrus.WithError(err).Error("Download request failed")
	}
}

func (r *Router) isAdminSender(update *tgbotapi.Update) bool {
	if update.Message.From == nil {
		return false
	}
	return r.registry.IsAdmin(userIDString(update))
}

func (r *Router) recordGroup(userID, chatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userToGroup[userID] = chatID
}

// LastGroupFor returns the last group chat the user was seen in, if any.
func (r *Router) LastGroupFor(userID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chatID, ok := r.userToGroup[userID]
	return chatID, ok
}

func chatIDString(update *tgbotapi.Update) string {
	return strconv.FormatInt(update.Message.Chat.ID, 10)
}

func userIDString(update *tgbotapi.Update) string {
	return strconv.FormatInt(update.Message.From.ID, 10)
}
