package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleZH = "zh-CN"
	LocaleTW = "zh-TW"
	LocaleEN = "en-US"

	// DefaultLocale 无法识别语言时使用
	DefaultLocale = LocaleZH

	localeQueryKey = "lang"
)

var matcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.AmericanEnglish,
})

// ResolveLocale 依次读取 ?lang= 与 Accept-Language 解析语言
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if raw := strings.TrimSpace(c.Query(localeQueryKey)); raw != "" {
		return MatchLocale(raw)
	}
	return MatchLocale(c.GetHeader("Accept-Language"))
}

// MatchLocale 将任意语言标识匹配到支持的语言
func MatchLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	// 按权重顺序取第一个可直接识别的语言
	for _, tag := range tags {
		if locale, ok := localeForTag(tag); ok {
			return locale
		}
	}
	matched, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	if locale, ok := localeForTag(matched); ok {
		return locale
	}
	return DefaultLocale
}

// localeForTag 按语言与文字区分简繁中文，zh-TW / zh-HK 推断为繁体
func localeForTag(tag language.Tag) (string, bool) {
	base, _ := tag.Base()
	switch base.String() {
	case "zh":
		if script, _ := tag.Script(); script.String() == "Hant" {
			return LocaleTW, true
		}
		return LocaleZH, true
	case "en":
		return LocaleEN, true
	}
	return "", false
}

// T 翻译消息，缺失时回退到默认语言，仍缺失则返回 key
func T(locale, key string) string {
	if messages, ok := catalogs[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化消息
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
