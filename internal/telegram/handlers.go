package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meowvie/internal/catalog"
	"meowvie/internal/history"
	"meowvie/internal/i18n"
	"meowvie/internal/llm"
	"meowvie/internal/session"
)

const aiTimeout = 10 * time.Second

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.startConversation(userID, chatID)
		case "cancel":
			b.cancelConversation(userID, chatID)
		default:
			sess := b.sessions.Peek(userID)
			b.sendMessage(chatID, i18n.T(langOf(sess), i18n.KeyInvalidOption))
		}
		return
	}

	sess := b.sessions.Peek(userID)
	if sess == nil {
		// No conversation yet (or it was cancelled); any message opens
		// a fresh one.
		b.startConversation(userID, chatID)
		return
	}

	switch sess.State {
	case session.StateCompanionSelect:
		// Free text is as good as a button here.
		b.setCompanions(sess, chatID, msg.Text)
	case session.StateAwaitingQuestion:
		b.answerQuestion(ctx, sess, chatID, msg.Text)
	case session.StateLanguageSelect:
		b.sendWithKeyboard(chatID, i18n.T(langOf(sess), i18n.KeyChooseLanguage), languageKeyboard(b.langs))
	case session.StateGenreSelect:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseGenre), genreKeyboard())
	case session.StateTimeSelect:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseTime), timeKeyboard())
	case session.StateRatingSelect:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidRating), ratingKeyboard())
	case session.StateResultLoop:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidOption), b.actionsKeyboard(sess.Lang))
	}
}

func (b *Bot) handleCallback(ctx context.Context, cbq *tgbotapi.CallbackQuery) {
	userID := cbq.From.ID
	if cbq.Message == nil {
		return
	}
	chatID := cbq.Message.Chat.ID

	sess := b.sessions.Peek(userID)
	if sess == nil {
		// Stale button from a cancelled conversation.
		log.Printf("callback %q from user %d without a session, ignoring", cbq.Data, userID)
		return
	}

	prefix, value, ok := strings.Cut(cbq.Data, ":")
	if !ok {
		log.Printf("malformed callback data %q from user %d", cbq.Data, userID)
		return
	}

	switch {
	case sess.State == session.StateLanguageSelect && prefix == cbLang:
		b.setLanguage(sess, chatID, value)
	case sess.State == session.StateCompanionSelect && prefix == cbCompanion:
		b.setCompanions(sess, chatID, value)
	case sess.State == session.StateGenreSelect && prefix == cbGenre:
		b.setGenre(sess, chatID, value)
	case sess.State == session.StateTimeSelect && prefix == cbTime:
		b.setTime(sess, chatID, value)
	case sess.State == session.StateRatingSelect && prefix == cbRating:
		b.setRating(ctx, sess, chatID, userID, value)
	case sess.State == session.StateResultLoop && prefix == cbAction:
		b.handleAction(ctx, sess, chatID, userID, value)
	default:
		// Button from an earlier step, or an unknown one: re-prompt the
		// current step instead of advancing.
		b.repromptCurrent(sess, chatID)
	}
}

func (b *Bot) startConversation(userID, chatID int64) {
	b.sessions.Reset(userID)
	sess := b.sessions.Get(userID, b.entryState())
	if sess.State == session.StateLanguageSelect {
		b.sendWithKeyboard(chatID, i18n.T(i18n.DefaultLang, i18n.KeyChooseLanguage), languageKeyboard(b.langs))
		return
	}
	sess.Lang = b.langs[0]
	b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyGreeting), companionKeyboard(sess.Lang))
}

func (b *Bot) cancelConversation(userID, chatID int64) {
	lang := langOf(b.sessions.Peek(userID))
	b.sessions.Reset(userID)
	b.sendMessage(chatID, i18n.T(lang, i18n.KeyCancelled))
}

func (b *Bot) setLanguage(sess *session.Session, chatID int64, lang string) {
	if !b.offersLanguage(lang) {
		b.sendWithKeyboard(chatID, i18n.T(i18n.DefaultLang, i18n.KeyChooseLanguage), languageKeyboard(b.langs))
		return
	}
	sess.Lang = lang
	sess.State = session.StateCompanionSelect
	b.sendWithKeyboard(chatID, i18n.T(lang, i18n.KeyGreeting), companionKeyboard(lang))
}

func (b *Bot) offersLanguage(lang string) bool {
	for _, l := range b.langs {
		if l == lang {
			return true
		}
	}
	return false
}

func (b *Bot) setCompanions(sess *session.Session, chatID int64, companions string) {
	sess.Companions = companions
	sess.State = session.StateGenreSelect
	b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseGenre), genreKeyboard())
}

func (b *Bot) setGenre(sess *session.Session, chatID int64, genre string) {
	if !catalog.IsValidGenre(genre) {
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidOption), genreKeyboard())
		return
	}
	sess.Genre = catalog.Genre(genre)
	sess.State = session.StateTimeSelect
	b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseTime), timeKeyboard())
}

func (b *Bot) setTime(sess *session.Session, chatID int64, slot string) {
	if !isValidTimeSlot(slot) {
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidOption), timeKeyboard())
		return
	}
	sess.TimeOfDay = slot
	sess.State = session.StateRatingSelect
	b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseRating), ratingKeyboard())
}

func (b *Bot) setRating(ctx context.Context, sess *session.Session, chatID, userID int64, value string) {
	face, err := strconv.Atoi(value)
	if err != nil || !isValidRatingFace(face) {
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidRating), ratingKeyboard())
		return
	}
	sess.MinRating = effectiveMinRating(face)
	// Stay in RatingSelect on failure so the user can retry; move on
	// only once a movie was shown.
	if b.recommend(ctx, sess, chatID, userID) {
		sess.State = session.StateResultLoop
	}
}

func (b *Bot) handleAction(ctx context.Context, sess *session.Session, chatID, userID int64, action string) {
	switch action {
	case actionAnother:
		b.recommend(ctx, sess, chatID, userID)
	case actionRestart:
		fresh := b.sessions.Restart(userID)
		b.sendWithKeyboard(chatID, i18n.T(fresh.Lang, i18n.KeyGreeting), companionKeyboard(fresh.Lang))
	case actionAsk:
		if b.ai == nil || sess.LastMovie == nil {
			b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidOption), b.actionsKeyboard(sess.Lang))
			return
		}
		sess.State = session.StateAwaitingQuestion
		b.sendMessage(chatID, i18n.T(sess.Lang, i18n.KeyAskPrompt))
	default:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidOption), b.actionsKeyboard(sess.Lang))
	}
}

// recommend runs the terminal pipeline: fetch candidates, pick one,
// record it, present it. Reports whether a movie was shown.
func (b *Bot) recommend(ctx context.Context, sess *session.Session, chatID, userID int64) bool {
	candidates := b.catalog.FetchByGenre(ctx, sess.Genre)
	movie, ok := b.picker.Pick(candidates, sess.MinRating)
	if !ok {
		b.sendMessage(chatID, i18n.T(sess.Lang, i18n.KeyNotFound))
		return false
	}
	sess.LastMovie = &movie

	if b.history != nil {
		err := b.history.Append(userID, history.Entry{
			Timestamp:  time.Now().UTC(),
			Title:      movie.Title,
			Year:       movie.Year,
			URL:        movie.URL,
			Companions: sess.Companions,
			Genre:      string(sess.Genre),
			Time:       sess.TimeOfDay,
			MinRating:  sess.MinRating,
		})
		if err != nil {
			log.Printf("failed to append history for user %d: %v", userID, err)
		}
	}

	b.sendMarkdown(chatID, formatMovie(sess.Lang, movie), b.actionsKeyboard(sess.Lang))
	return true
}

func (b *Bot) answerQuestion(ctx context.Context, sess *session.Session, chatID int64, question string) {
	// Whatever happens, the conversation lands back in the result loop.
	sess.State = session.StateResultLoop

	if b.ai == nil || sess.LastMovie == nil {
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyAIError), b.actionsKeyboard(sess.Lang))
		return
	}

	aiCtx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	resp, err := b.ai.Generate(aiCtx, []llm.Message{
		{Role: "system", Content: "You are a concise movie expert. Answer the user's question about the given movie."},
		{Role: "user", Content: fmt.Sprintf("Movie: %s (%d)\nQuestion: %s", sess.LastMovie.Title, sess.LastMovie.Year, question)},
	})
	if err != nil {
		log.Printf("movie question failed: %v", err)
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyAIError), b.actionsKeyboard(sess.Lang))
		return
	}
	b.sendWithKeyboard(chatID, resp.Content, b.actionsKeyboard(sess.Lang))
}

func (b *Bot) repromptCurrent(sess *session.Session, chatID int64) {
	switch sess.State {
	case session.StateLanguageSelect:
		b.sendWithKeyboard(chatID, i18n.T(i18n.DefaultLang, i18n.KeyChooseLanguage), languageKeyboard(b.langs))
	case session.StateCompanionSelect:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyGreeting), companionKeyboard(sess.Lang))
	case session.StateGenreSelect:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseGenre), genreKeyboard())
	case session.StateTimeSelect:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseTime), timeKeyboard())
	case session.StateRatingSelect:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyChooseRating), ratingKeyboard())
	case session.StateResultLoop, session.StateAwaitingQuestion:
		b.sendWithKeyboard(chatID, i18n.T(sess.Lang, i18n.KeyInvalidOption), b.actionsKeyboard(sess.Lang))
	}
}

func langOf(sess *session.Session) string {
	if sess == nil || sess.Lang == "" {
		return i18n.DefaultLang
	}
	return sess.Lang
}
