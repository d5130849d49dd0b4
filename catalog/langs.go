package catalog

// langNames maps language codes to their native names.
var langNames = map[string]string{
	"ar":    "العربية",
	"cs":    "Čeština",
	"da":    "Dansk",
	"de":    "Deutsch",
	"el":    "Ελληνικά",
	"en":    "English",
	"es":    "Español",
	"fi":    "Suomi",
	"fr":    "Français",
	"he":    "עברית",
	"hi":    "हिन्दी",
	"hu":    "Magyar",
	"id":    "Bahasa Indonesia",
	"it":    "Italiano",
	"ja":    "日本語",
	"ko":    "한국어",
	"nl":    "Nederlands",
	"no":    "Norsk",
	"pl":    "Polski",
	"pt":    "Português",
	"pt_BR": "Português (Brasil)",
	"ro":    "Română",
	"ru":    "Русский",
	"sv":    "Svenska",
	"th":    "ไทย",
	"tr":    "Türkçe",
	"uk":    "Українська",
	"vi":    "Tiếng Việt",
	"zh":    "中文",
}

// LangNameNative returns the native name of a language, or the code
// itself when unknown.
func LangNameNative(lang string) string {
	if name, ok := langNames[lang]; ok {
		return name
	}
	return lang
}
