package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meowvie/internal/catalog"
	"meowvie/internal/i18n"
)

// Callback data prefixes. Option identity always travels in callback
// data; button labels are display-only and language-dependent.
const (
	cbLang      = "lang"
	cbCompanion = "comp"
	cbGenre     = "genre"
	cbTime      = "time"
	cbRating    = "rating"
	cbAction    = "act"
)

const (
	companionAlone    = "alone"
	companionTogether = "together"

	actionAsk     = "ask"
	actionAnother = "another"
	actionRestart = "restart"
)

var timeSlots = []struct {
	ID    string
	Emoji string
}{
	{"morning", "🌅"},
	{"evening", "🌇"},
	{"night", "🌃"},
}

func isValidTimeSlot(id string) bool {
	for _, s := range timeSlots {
		if s.ID == id {
			return true
		}
	}
	return false
}

var genreEmojis = map[catalog.Genre]string{
	catalog.GenreDrama:   "🎭",
	catalog.GenreComedy:  "😂",
	catalog.GenreHorror:  "😱",
	catalog.GenreSciFi:   "🚀",
	catalog.GenreAction:  "🔫",
	catalog.GenreRomance: "💖",
}

// ratingFaces are the thresholds offered to the user; 0 means no minimum.
var ratingFaces = []int{0, 5, 6, 7, 8, 9}

func isValidRatingFace(face int) bool {
	for _, f := range ratingFaces {
		if f == face {
			return true
		}
	}
	return false
}

// effectiveMinRating maps a button face value to the threshold actually
// applied. "9+" would filter out nearly the whole catalog at face value,
// so it applies as 8.5.
func effectiveMinRating(face int) float64 {
	if face == 9 {
		return 8.5
	}
	return float64(face)
}

func cb(prefix, value string) string { return prefix + ":" + value }

func languageKeyboard(langs []string) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, l := range langs {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(i18n.LangName(l), cb(cbLang, l)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}

func companionKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnAlone), cb(cbCompanion, companionAlone)),
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnTogether), cb(cbCompanion, companionTogether)),
		),
	)
}

func genreKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, g := range catalog.AllGenres {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(genreEmojis[g], cb(cbGenre, string(g))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}

func timeKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, s := range timeSlots {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(s.Emoji, cb(cbTime, s.ID)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}

func ratingKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, f := range ratingFaces {
		label := "✨"
		if f > 0 {
			label = fmt.Sprintf("%d+", f)
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, cb(cbRating, fmt.Sprintf("%d", f))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(row...))
}

func (b *Bot) actionsKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{}
	if b.ai != nil {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnAsk), cb(cbAction, actionAsk)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnAnother), cb(cbAction, actionAnother)),
		tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnRestart), cb(cbAction, actionRestart)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// formatMovie renders one movie record as a Markdown message.
func formatMovie(lang string, m catalog.Movie) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎬 *[%s](%s)* (%d)\n", m.Title, m.URL, m.Year)
	if len(m.Genres) > 0 {
		fmt.Fprintf(&sb, "%s: %s\n", i18n.T(lang, i18n.KeyGenresLabel), strings.Join(m.Genres, ", "))
	}
	if m.Rating > 0 {
		fmt.Fprintf(&sb, "%s: %.1f⭐\n", i18n.T(lang, i18n.KeyRatingLabel), m.Rating)
	}
	if m.Overview != "" {
		fmt.Fprintf(&sb, "\n%s\n", m.Overview)
	}
	if m.Trailer != "" {
		fmt.Fprintf(&sb, "\n▶️ [%s](%s)", i18n.T(lang, i18n.KeyTrailerLabel), m.Trailer)
	}
	return sb.String()
}
