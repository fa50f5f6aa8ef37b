//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"equiplend/internal/handler/httperr"
	"equiplend/internal/handler/middleware"
	"equiplend/internal/pkg/errs"
	testhttp "equiplend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	return router
}

func TestErrorHandlerRendersAbortedError(t *testing.T) {
	router := newErrorRouter()
	router.GET("/missing", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("draft not found"), "Draft not found", nil)
	})

	rec := testhttp.PerformRequest(t, router, http.MethodGet, "/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp httperr.Response
	testhttp.DecodeResponseBody(t, rec.Body, &resp)
	assert.Equal(t, "Draft not found", resp.Error.Message)
}

func TestErrorHandlerRendersPublicErrorFromStack(t *testing.T) {
	router := newErrorRouter()
	router.GET("/deferred", func(c *gin.Context) {
		// Attach a public error without writing; the middleware renders it.
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Set unavailable for the selected range"
		c.Error(&gin.Error{
			Err:  errs.New("set already selected elsewhere"),
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	})

	rec := testhttp.PerformRequest(t, router, http.MethodGet, "/deferred", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp httperr.Response
	testhttp.DecodeResponseBody(t, rec.Body, &resp)
	assert.Equal(t, "Set unavailable for the selected range", resp.Error.Message)
}

func TestErrorHandlerFallsBackToInternalError(t *testing.T) {
	router := newErrorRouter()
	router.GET("/private", func(c *gin.Context) {
		c.Error(errs.New("connection reset"))
	})

	rec := testhttp.PerformRequest(t, router, http.MethodGet, "/private", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestCustomRecoveryTurnsPanicIntoResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("unexpected state")
	})

	rec := testhttp.PerformRequest(t, router, http.MethodGet, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
