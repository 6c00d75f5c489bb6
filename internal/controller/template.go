package controller

import (
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	*baseController
}

func (tc TemplateController) ValidateTemplate(ctx *gin.Context) {
	type Response struct {
		Width       float64           `json:"width"`
		Height      float64           `json:"height"`
		Orientation ecert.Orientation `json:"orientation"`
		PageCount   int               `json:"pageCount"`
		MaxWidth    float64           `json:"maxWidth"`
	}

	tpl, ok := tc.readTemplate(ctx)
	if !ok {
		return
	}

	util.ResponseSuccess(ctx, Response{
		Width:       tpl.Width(),
		Height:      tpl.Height(),
		Orientation: tpl.Orientation(),
		PageCount:   tpl.PageCount(),
		MaxWidth:    ecert.ResolveMaxWidth(tpl.Width(), tpl.Orientation()),
	})
}
