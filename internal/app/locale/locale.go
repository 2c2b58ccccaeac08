package locale

import (
	"embed"
	"encoding/json"
	"io/fs"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed translation/*.json
var translationFS embed.FS

const (
	// Язык по умолчанию для сообщений и проекций каталога
	DefaultLang = "en"

	ctxLocalizerKey = "localizer"
	ctxLangKey      = "lang"
)

// Bundle — загруженный один раз набор переводов сообщений.
// После создания только читается, безопасен для конкурентного доступа.
type Bundle struct {
	bundle *i18n.Bundle
}

// NewBundle загружает встроенные файлы переводов (en.json, ru.json)
func NewBundle() (*Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	err := fs.WalkDir(translationFS, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(translationFS, path)
		if err != nil {
			return err
		}
		_, err = bundle.ParseMessageFileBytes(data, path)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Bundle{bundle: bundle}, nil
}

// Localizer возвращает локализатор для цепочки предпочитаемых языков
func (b *Bundle) Localizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(b.bundle, append(langs, DefaultLang)...)
}

// Middleware определяет язык запроса (?lang=, затем Accept-Language)
// и кладёт локализатор в контекст
func (b *Bundle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}
		if lang == "" {
			lang = DefaultLang
		}

		c.Set(ctxLangKey, lang)
		c.Set(ctxLocalizerKey, b.Localizer(lang))
		c.Next()
	}
}

// Lang возвращает язык текущего запроса
func Lang(c *gin.Context) string {
	if lang := c.GetString(ctxLangKey); lang != "" {
		return lang
	}
	return DefaultLang
}

// Localize переводит сообщение по идентификатору, подставляя данные шаблона.
// Если локализатор недоступен или сообщение не найдено, возвращает сам идентификатор.
func Localize(c *gin.Context, messageID string, data map[string]any) string {
	v, exists := c.Get(ctxLocalizerKey)
	if !exists {
		return messageID
	}
	localizer, ok := v.(*i18n.Localizer)
	if !ok || localizer == nil {
		return messageID
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.Warnf("failed to localize message %s: %v", messageID, err)
		return messageID
	}
	return msg
}
