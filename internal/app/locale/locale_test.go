package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localizeVia(t *testing.T, bundle *Bundle, url, acceptLanguage, messageID string, data map[string]any) (string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var message, lang string
	r := gin.New()
	r.Use(bundle.Middleware())
	r.GET("/", func(c *gin.Context) {
		message = Localize(c, messageID, data)
		lang = Lang(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, url, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return message, lang
}

func TestLocalize(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	t.Run("russian from query", func(t *testing.T) {
		msg, lang := localizeVia(t, bundle, "/?lang=ru", "", "auth.user_exists", nil)
		assert.Equal(t, "ru", lang)
		assert.Equal(t, "Пользователь с таким именем уже существует", msg)
	})

	t.Run("language from header", func(t *testing.T) {
		msg, _ := localizeVia(t, bundle, "/", "ru", "category.none_found", nil)
		assert.Equal(t, "Категории не найдены", msg)
	})

	t.Run("query wins over header", func(t *testing.T) {
		msg, _ := localizeVia(t, bundle, "/?lang=en", "ru", "auth.user_exists", nil)
		assert.Equal(t, "A user with this username already exists", msg)
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		msg, _ := localizeVia(t, bundle, "/?lang=uz", "", "auth.user_exists", nil)
		assert.Equal(t, "A user with this username already exists", msg)
	})

	t.Run("unknown message id returns the id", func(t *testing.T) {
		msg, _ := localizeVia(t, bundle, "/?lang=en", "", "no.such.key", nil)
		assert.Equal(t, "no.such.key", msg)
	})

	t.Run("template data is substituted", func(t *testing.T) {
		msg, _ := localizeVia(t, bundle, "/?lang=en", "", "part.exists", map[string]any{"TrtCode": "TRT-42"})
		assert.Equal(t, "Part with TRT code TRT-42 already exists", msg)
	})

	t.Run("contact mail body", func(t *testing.T) {
		msg, _ := localizeVia(t, bundle, "/?lang=en", "", "contact.body", map[string]any{
			"Name":    "John",
			"Phone":   "+998901234567",
			"Comment": "Need brake pads",
		})
		assert.Equal(t, "Name: John\nPhone: +998901234567\nComment: Need brake pads", msg)
	})
}

func TestLocalizeWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// без локализатора в контексте возвращается сам идентификатор
	assert.Equal(t, "auth.forbidden", Localize(c, "auth.forbidden", nil))
	assert.Equal(t, DefaultLang, Lang(c))
}
