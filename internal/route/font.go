package route

import (
	"github.com/SeakMengs/name2ecert/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Fonts(r *gin.RouterGroup, fc *controller.FontController) {
	v1 := r.Group("/v1/fonts")
	{
		v1.GET("", fc.GetFonts)
	}
}
