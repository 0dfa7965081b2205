package echoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/studyline/studyline/core"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func Test_appHTTPErrorHandler_shutdown(t *testing.T) {
	ctx, rec := newTestContext()

	var signaled bool
	handler := newAppHTTPErrorHandler(nopLogger{}, testTranslator(), func() { signaled = true })

	handler(core.NewShutdownError("session store integrity lost"), ctx)

	assert.True(t, signaled, "shutdown error must signal the server to stop")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), http.StatusText(http.StatusInternalServerError))
}

func Test_appHTTPErrorHandler_plainErrorDoesNotShutdown(t *testing.T) {
	ctx, rec := newTestContext()

	var signaled bool
	handler := newAppHTTPErrorHandler(nopLogger{}, testTranslator(), func() { signaled = true })

	handler(errors.New("boom"), ctx)

	assert.False(t, signaled)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
