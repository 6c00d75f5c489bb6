package controller

import (
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/gin-gonic/gin"
)

type FontController struct {
	*baseController
}

func (fc FontController) GetFonts(ctx *gin.Context) {
	style := ecert.DefaultStyle()

	util.ResponseSuccess(ctx, gin.H{
		"fonts": ecert.FontNames(),
		"default": gin.H{
			"fontName":  style.Font.String(),
			"fontSize":  style.Size,
			"fontColor": style.Color.Hex(),
		},
		"fontSizeRange": gin.H{
			"min": ecert.MinFontSize,
			"max": ecert.MaxFontSize,
		},
	})
}
