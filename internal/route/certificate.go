package route

import (
	"github.com/SeakMengs/name2ecert/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Certificates(r *gin.RouterGroup, cc *controller.CertificateController) {
	v1 := r.Group("/v1/certificates")
	{
		v1.POST("/preview", cc.Preview)
		v1.POST("/generate", cc.Generate)
	}
}
