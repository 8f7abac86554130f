package telegram

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meowvie/internal/catalog"
	"meowvie/internal/history"
	"meowvie/internal/llm"
	"meowvie/internal/picker"
	"meowvie/internal/session"
)

type sentMessage struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

type fakeSender struct{ sent []sentMessage }

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	mc := c.(tgbotapi.MessageConfig)
	sm := sentMessage{text: mc.Text}
	if kb, ok := mc.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); ok {
		sm.keyboard = &kb
	}
	f.sent = append(f.sent, sm)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) last(t *testing.T) sentMessage {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatalf("no messages sent")
	}
	return f.sent[len(f.sent)-1]
}

type fakeCatalog struct {
	movies []catalog.Movie
	calls  int
}

func (f *fakeCatalog) FetchByGenre(ctx context.Context, genre catalog.Genre) []catalog.Movie {
	f.calls++
	return f.movies
}

type memHistory struct{ entries map[int64][]history.Entry }

func newMemHistory() *memHistory {
	return &memHistory{entries: make(map[int64][]history.Entry)}
}

func (m *memHistory) Append(userID int64, e history.Entry) error {
	m.entries[userID] = append(m.entries[userID], e)
	return nil
}

func (m *memHistory) Recent(userID int64, n int) []history.Entry {
	es := m.entries[userID]
	if len(es) > n {
		es = es[len(es)-n:]
	}
	return es
}

type fakeLLM struct {
	resp llm.Response
	err  error
}

func (f fakeLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	return f.resp, f.err
}

func newTestBot(cat catalog.Client, ai llm.Client, langs ...string) (*Bot, *fakeSender, *memHistory) {
	if len(langs) == 0 {
		langs = []string{"lv"}
	}
	fs := &fakeSender{}
	hist := newMemHistory()
	b := &Bot{
		s:        fs,
		sessions: session.NewStore(),
		catalog:  cat,
		picker:   picker.NewWithSource(rand.NewSource(1)),
		history:  hist,
		ai:       ai,
		langs:    langs,
	}
	return b, fs, hist
}

func textMsg(userID, chatID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	}
}

func commandMsg(userID, chatID int64, cmd string) *tgbotapi.Message {
	m := textMsg(userID, chatID, "/"+cmd)
	m.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(cmd) + 1},
	}
	return m
}

func callback(userID, chatID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
		Data:    data,
	}
}

func TestStart_SingleLanguageSkipsLanguageSelect(t *testing.T) {
	b, fs, _ := newTestBot(&fakeCatalog{}, nil)
	b.handleIncomingMessage(context.Background(), commandMsg(1, 10, "start"))

	sess := b.sessions.Peek(1)
	if sess == nil || sess.State != session.StateCompanionSelect {
		t.Fatalf("expected companion select entry, got %+v", sess)
	}
	if sess.Lang != "lv" {
		t.Fatalf("single configured language should be preselected, got %q", sess.Lang)
	}
	if fs.last(t).keyboard == nil {
		t.Fatalf("greeting must carry the companion keyboard")
	}
}

func TestStart_MultiLanguageEntersLanguageSelect(t *testing.T) {
	b, fs, _ := newTestBot(&fakeCatalog{}, nil, "lv", "en", "ru")
	b.handleIncomingMessage(context.Background(), commandMsg(1, 10, "start"))

	sess := b.sessions.Peek(1)
	if sess == nil || sess.State != session.StateLanguageSelect {
		t.Fatalf("expected language select entry, got %+v", sess)
	}
	kb := fs.last(t).keyboard
	if kb == nil || len(kb.InlineKeyboard[0]) != 3 {
		t.Fatalf("language keyboard should offer 3 languages: %+v", kb)
	}

	b.handleCallback(context.Background(), callback(1, 10, "lang:en"))
	if sess.Lang != "en" || sess.State != session.StateCompanionSelect {
		t.Fatalf("language pick did not advance: %+v", sess)
	}
	if got := fs.last(t).text; !strings.HasPrefix(got, "Hi") {
		t.Fatalf("greeting not in selected language: %q", got)
	}
}

func TestLanguageSelect_UnknownLanguageReprompts(t *testing.T) {
	b, fs, _ := newTestBot(&fakeCatalog{}, nil, "lv", "en")
	b.handleIncomingMessage(context.Background(), commandMsg(1, 10, "start"))
	before := len(fs.sent)

	b.handleCallback(context.Background(), callback(1, 10, "lang:de"))
	sess := b.sessions.Peek(1)
	if sess.State != session.StateLanguageSelect {
		t.Fatalf("invalid language advanced the state: %v", sess.State)
	}
	if len(fs.sent) != before+1 || fs.last(t).keyboard == nil {
		t.Fatalf("expected re-prompt with language keyboard")
	}
}

func TestSendText(t *testing.T) {
	b, fs, _ := newTestBot(&fakeCatalog{}, nil)
	if err := b.SendText(99, "digest"); err != nil {
		t.Fatalf("send text: %v", err)
	}
	if fs.last(t).text != "digest" {
		t.Fatalf("unexpected sent text: %q", fs.last(t).text)
	}
}
