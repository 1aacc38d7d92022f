package domain

// Theme 는 타입이다.
type Theme string

// Theme 상수 목록.
const (
	// ThemeLight 는 상수다.
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid 는 동작을 수행한다.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// DefaultTheme: 저장된 설정이 없거나 깨졌을 때 사용하는 기본 테마
const DefaultTheme = ThemeDark

// Language 는 타입이다.
type Language string

// Language 상수 목록.
const (
	// LanguageZH 는 상수다.
	LanguageZH Language = "zh"
	LanguageEN Language = "en"
)

// IsValid 는 동작을 수행한다.
func (l Language) IsValid() bool {
	switch l {
	case LanguageZH, LanguageEN:
		return true
	default:
		return false
	}
}

// DefaultLanguage: 저장된 설정이 없거나 깨졌을 때 사용하는 기본 언어
const DefaultLanguage = LanguageZH
