package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appcontext "github.com/SeakMengs/name2ecert/internal/app_context"
	"github.com/SeakMengs/name2ecert/internal/config"
	"github.com/SeakMengs/name2ecert/internal/constant"
	ratelimiter "github.com/SeakMengs/name2ecert/internal/rate_limiter"
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID)
	r.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, GetRequestID(ctx)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(constant.HEADER_REQUEST_ID)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	existing := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.HEADER_REQUEST_ID, existing)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, existing, w.Header().Get(constant.HEADER_REQUEST_ID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.HEADER_REQUEST_ID, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(constant.HEADER_REQUEST_ID))
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(10))
	r.POST("/", func(ctx *gin.Context) {
		if _, err := ctx.GetRawData(); err != nil {
			ctx.Status(http.StatusRequestEntityTooLarge)
			return
		}
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body is far too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRateLimiterMiddleware(t *testing.T) {
	cfg := config.RateLimiterConfig{RequestsPerTimeFrame: 2, TimeFrame: time.Hour, Enabled: true}
	app := &appcontext.Application{Logger: util.NewLogger("test")}
	m := NewMiddleware(app, ratelimiter.NewRateLimiter(cfg, app.Logger))

	r := gin.New()
	r.Use(m.RateLimiterMiddleware)
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	disabled := NewMiddleware(app, ratelimiter.NewRateLimiter(config.RateLimiterConfig{RequestsPerTimeFrame: 1}, app.Logger))
	r = gin.New()
	r.Use(disabled.RateLimiterMiddleware)
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
