package i18n

import "testing"

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range enMessages {
		if _, ok := zhMessages[key]; !ok {
			t.Errorf("key %q missing from zh catalog", key)
		}
	}
	for key := range zhMessages {
		if _, ok := enMessages[key]; !ok {
			t.Errorf("key %q missing from en catalog", key)
		}
	}
}

func TestT(t *testing.T) {
	prev := GetLanguage()
	defer SetLanguage(prev)

	SetLanguage(LangEnglish)
	if got := T(ErrExpectedToken, "'else'", "end of input"); got != "expected 'else', got end of input" {
		t.Errorf("T(en) = %q", got)
	}
	if got := T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should be returned as is, got %q", got)
	}

	SetLanguage(LangChinese)
	if got := T(ErrExpectedToken, "'else'", "输入结束"); got != "期望 'else', 实际是 输入结束" {
		t.Errorf("T(zh) = %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code string
		want Language
		ok   bool
	}{
		{"en", LangEnglish, true},
		{"en_US.UTF-8", LangEnglish, true},
		{"zh-CN", LangChinese, true},
		{"ZH_TW", LangChinese, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLanguage(%q) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}
