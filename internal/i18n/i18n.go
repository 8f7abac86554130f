// Package i18n holds the static message catalog. Text is addressed by
// message key and language code; a missing translation falls back to the
// default language.
package i18n

// DefaultLang is the language of the original bot and the fallback for
// every missing translation.
const DefaultLang = "lv"

var Supported = []string{"lv", "en", "ru"}

func IsSupported(lang string) bool {
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// LangName is the self-describing label shown on language buttons.
func LangName(lang string) string {
	switch lang {
	case "lv":
		return "Latviešu"
	case "en":
		return "English"
	case "ru":
		return "Русский"
	}
	return lang
}

type Key string

const (
	KeyChooseLanguage Key = "choose_language"
	KeyGreeting       Key = "greeting"
	KeyChooseGenre    Key = "choose_genre"
	KeyChooseTime     Key = "choose_time"
	KeyChooseRating   Key = "choose_rating"
	KeyInvalidOption  Key = "invalid_option"
	KeyInvalidRating  Key = "invalid_rating"
	KeyNotFound       Key = "not_found"
	KeyCancelled      Key = "cancelled"
	KeyAskPrompt      Key = "ask_prompt"
	KeyAIError        Key = "ai_error"
	KeyGenresLabel    Key = "genres_label"
	KeyRatingLabel    Key = "rating_label"
	KeyTrailerLabel   Key = "trailer_label"
	KeyBtnAlone       Key = "btn_alone"
	KeyBtnTogether    Key = "btn_together"
	KeyBtnAsk         Key = "btn_ask"
	KeyBtnAnother     Key = "btn_another"
	KeyBtnRestart     Key = "btn_restart"
)

var table = map[Key]map[string]string{
	KeyChooseLanguage: {
		"lv": "Izvēlies valodu:",
		"en": "Choose a language:",
		"ru": "Выбери язык:",
	},
	KeyGreeting: {
		"lv": "Čau, esmu Meowvie!🎬\nEs palīdzēšu atrast filmu vakaram.\nNorādi, vai Tu skaties vienatnē vai divatā.\nIzvēlies žanru un laiku, kad plāno skatīties 🐾\n\nVai skatīsies viens vai kopā?",
		"en": "Hi, I'm Meowvie!🎬\nI'll help you find a movie for tonight.\nTell me whether you're watching alone or together.\nThen pick a genre and a time 🐾\n\nWatching alone or together?",
		"ru": "Привет, я Meowvie!🎬\nПомогу выбрать фильм на вечер.\nСкажи, смотришь один или вдвоём.\nПотом выбери жанр и время 🐾\n\nСмотришь один или вместе?",
	},
	KeyChooseGenre: {
		"lv": "Kādu žanru vēlies? Izvēlies:",
		"en": "Which genre? Pick one:",
		"ru": "Какой жанр? Выбери:",
	},
	KeyChooseTime: {
		"lv": "Cikos skatīsieties filmu?",
		"en": "What time will you watch?",
		"ru": "Во сколько будете смотреть?",
	},
	KeyChooseRating: {
		"lv": "Vai filmai jābūt ar noteiktu reitingu?",
		"en": "Should the movie have a minimum rating?",
		"ru": "Нужен минимальный рейтинг?",
	},
	KeyInvalidOption: {
		"lv": "Lūdzu, izvēlies no piedāvātajām opcijām.",
		"en": "Please choose one of the listed options.",
		"ru": "Пожалуйста, выбери один из предложенных вариантов.",
	},
	KeyInvalidRating: {
		"lv": "Nederīgs reitings. Izvēlies no pogām.",
		"en": "Invalid rating. Pick one of the buttons.",
		"ru": "Неверный рейтинг. Выбери кнопкой.",
	},
	KeyNotFound: {
		"lv": "Neizdevās atrast filmu. Pamēģini vēlāk.",
		"en": "Couldn't find a movie. Try again later.",
		"ru": "Не удалось найти фильм. Попробуй позже.",
	},
	KeyCancelled: {
		"lv": "Filmas meklēšana atcelta.",
		"en": "Movie search cancelled.",
		"ru": "Поиск фильма отменён.",
	},
	KeyAskPrompt: {
		"lv": "Ko vēlies uzzināt par šo filmu?",
		"en": "What would you like to know about this movie?",
		"ru": "Что хочешь узнать об этом фильме?",
	},
	KeyAIError: {
		"lv": "Neizdevās saņemt atbildi. Pamēģini vēlāk.",
		"en": "Couldn't get an answer. Try again later.",
		"ru": "Не удалось получить ответ. Попробуй позже.",
	},
	KeyGenresLabel: {
		"lv": "Žanri",
		"en": "Genres",
		"ru": "Жанры",
	},
	KeyRatingLabel: {
		"lv": "Reitings",
		"en": "Rating",
		"ru": "Рейтинг",
	},
	KeyTrailerLabel: {
		"lv": "Treileris",
		"en": "Trailer",
		"ru": "Трейлер",
	},
	KeyBtnAlone: {
		"lv": "Viens",
		"en": "Alone",
		"ru": "Один",
	},
	KeyBtnTogether: {
		"lv": "Kopā",
		"en": "Together",
		"ru": "Вместе",
	},
	KeyBtnAsk: {
		"lv": "❓ Pajautāt par filmu",
		"en": "❓ Ask about the movie",
		"ru": "❓ Спросить о фильме",
	},
	KeyBtnAnother: {
		"lv": "🔄 Vēl filmu",
		"en": "🔄 Another movie",
		"ru": "🔄 Ещё фильм",
	},
	KeyBtnRestart: {
		"lv": "🏁 Sākt no sākuma",
		"en": "🏁 Start over",
		"ru": "🏁 Начать заново",
	},
}

// T resolves a message for a language, falling back to the default
// language when the translation (or the whole language) is missing.
func T(lang string, k Key) string {
	msgs, ok := table[k]
	if !ok {
		return string(k)
	}
	if s, ok := msgs[lang]; ok {
		return s
	}
	return msgs[DefaultLang]
}
