package controller

import (
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"name":          util.GetAppName(),
		"version":       util.GetAppVersion(),
		"exportEnabled": ic.app.Exporter != nil,
	})
}
