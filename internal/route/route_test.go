package route

import (
	"net/http"
	"testing"

	appcontext "github.com/SeakMengs/name2ecert/internal/app_context"
	"github.com/SeakMengs/name2ecert/internal/controller"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := controller.NewController(&appcontext.Application{})
	r := gin.New()
	api := r.Group("/api")
	V1_Fonts(api, c.Font)
	V1_Templates(api, c.Template)
	V1_Certificates(api, c.Certificate)

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		http.MethodGet + " /api/v1/fonts",
		http.MethodPost + " /api/v1/templates/validate",
		http.MethodPost + " /api/v1/certificates/preview",
		http.MethodPost + " /api/v1/certificates/generate",
	} {
		assert.True(t, registered[want], want)
	}
}
