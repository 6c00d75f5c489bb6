package route

import (
	"github.com/SeakMengs/name2ecert/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Templates(r *gin.RouterGroup, tc *controller.TemplateController) {
	v1 := r.Group("/v1/templates")
	{
		v1.POST("/validate", tc.ValidateTemplate)
	}
}
