// Package i18n provides internationalization support for azor diagnostics and CLI text.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language represents a supported language
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	currentLang Language
	once        sync.Once
	mu          sync.RWMutex
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
func Init() {
	once.Do(func() {
		currentLang = detectLanguage()
	})
}

// SetLanguage sets the current language manually.
func SetLanguage(lang Language) {
	Init()
	mu.Lock()
	currentLang = lang
	mu.Unlock()
}

// ParseLanguage converts a user supplied language code ("en", "zh_CN.UTF-8")
// into a Language. ok is false for unsupported codes.
func ParseLanguage(code string) (lang Language, ok bool) {
	lang = parseLanguageCode(code)
	return lang, lang != ""
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T translates a message key to the current language.
// If the key is not found, returns the key itself.
// Supports format arguments like fmt.Sprintf.
func T(key string, args ...any) string {
	var messages map[string]string
	switch GetLanguage() {
	case LangChinese:
		messages = zhMessages
	default:
		messages = enMessages
	}

	template, ok := messages[key]
	if !ok {
		// Fallback to English
		template, ok = enMessages[key]
		if !ok {
			// Return key if not found
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// detectLanguage picks the language from the environment, AZOR_LANG first.
func detectLanguage() Language {
	for _, envVar := range []string{"AZOR_LANG", "LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		if detected := parseLanguageCode(os.Getenv(envVar)); detected != "" {
			return detected
		}
	}
	return LangEnglish
}

// parseLanguageCode handles "zh_CN.UTF-8", "zh-CN", "zh", "en_US" and similar.
func parseLanguageCode(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	switch {
	case strings.HasPrefix(code, "zh"):
		return LangChinese
	case strings.HasPrefix(code, "en"):
		return LangEnglish
	}
	return ""
}
