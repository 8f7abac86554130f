package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meowvie/internal/catalog"
	"meowvie/internal/history"
	"meowvie/internal/i18n"
	"meowvie/internal/llm"
	"meowvie/internal/picker"
	"meowvie/internal/session"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	s        sender
	sessions *session.Store
	catalog  catalog.Client
	picker   *picker.Picker
	history  history.Store
	ai       llm.Client
	langs    []string
}

func New(botToken string, cat catalog.Client, pk *picker.Picker, hist history.Store, ai llm.Client, langs []string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		s:        botAPISender{api: api},
		sessions: session.NewStore(),
		catalog:  cat,
		picker:   pk,
		history:  hist,
		ai:       ai,
		langs:    supportedOnly(langs),
	}, nil
}

func supportedOnly(langs []string) []string {
	var out []string
	for _, l := range langs {
		if i18n.IsSupported(l) {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		out = []string{i18n.DefaultLang}
	}
	return out
}

// entryState is where a fresh conversation begins. The language step is
// skipped when only one language is configured.
func (b *Bot) entryState() session.State {
	if len(b.langs) > 1 {
		return session.StateLanguageSelect
	}
	return session.StateCompanionSelect
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	log.Printf("Meowvie is in the chat as @%s", b.api.Self.UserName)

	for update := range updates {
		if update.Message != nil {
			b.handleIncomingMessage(ctx, update.Message)
			continue
		}
		if update.CallbackQuery != nil {
			b.handleCallback(ctx, update.CallbackQuery)
			continue
		}
	}
}

// SendText delivers a plain message outside a conversation (used by the
// digest scheduler).
func (b *Bot) SendText(chatID int64, text string) error {
	_, err := b.s.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = false
	msg.ReplyMarkup = kb
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
