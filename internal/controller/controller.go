package controller

import (
	"errors"
	"net/http"
	"strings"

	appcontext "github.com/SeakMengs/name2ecert/internal/app_context"
	"github.com/SeakMengs/name2ecert/internal/constant"
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Font        *FontController
	Template    *TemplateController
	Certificate *CertificateController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Font:        &FontController{baseController: bc},
		Template:    &TemplateController{baseController: bc},
		Certificate: &CertificateController{baseController: bc},
	}
}

const (
	ErrTemplateFileRequired = "template file is required"
	ErrCSVFileRequired      = "csv file is required"
	ErrExportNotEnabled     = "export is not enabled on this server"
)

// statusForEngineError maps engine errors onto HTTP status codes.
func statusForEngineError(err error) int {
	switch {
	case errors.Is(err, ecert.ErrMeasurement),
		errors.Is(err, ecert.ErrPlaceholder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ecert.ErrDecode),
		errors.Is(err, ecert.ErrMultiPage),
		errors.Is(err, ecert.ErrDimensionMismatch),
		errors.Is(err, ecert.ErrHeaderMismatch),
		errors.Is(err, ecert.ErrEmptyRecipientList),
		errors.Is(err, ecert.ErrEmptySelection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// readTemplate loads the uploaded template. On failure the response has been written.
func (b *baseController) readTemplate(ctx *gin.Context) (*ecert.Template, bool) {
	file, err := ctx.FormFile(constant.FORM_TEMPLATE_FILE)
	if err != nil {
		b.app.Logger.Debug(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "No template file uploaded", util.GenerateErrorMessages(errors.New(ErrTemplateFileRequired), constant.FORM_TEMPLATE_FILE), nil)
		return nil, false
	}

	data, err := util.ReadFormFile(file)
	if err != nil {
		b.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read template file", util.GenerateErrorMessages(err), nil)
		return nil, false
	}

	tpl, err := ecert.LoadTemplate(data, b.app.EngineConfig.PDFConfiguration())
	if err != nil {
		b.app.Logger.Debugw("Template rejected", "file", file.Filename, "error", err)
		util.ResponseFailed(ctx, statusForEngineError(err), "Invalid template file", util.GenerateErrorMessages(err), nil)
		return nil, false
	}

	return tpl, true
}

type renderRequest struct {
	FontName      string  `json:"fontName" form:"fontName" binding:"omitempty,fontName"`
	FontSize      *int    `json:"fontSize" form:"fontSize" binding:"omitempty,gte=0,lte=99"`
	FontColor     string  `json:"fontColor" form:"fontColor" binding:"omitempty,rgbHex"`
	AnchorY       float64 `json:"anchorY" form:"anchorY" binding:"gte=0"`
	PreviewHeight float64 `json:"previewHeight" form:"previewHeight" binding:"omitempty,gt=0"`
	Orientation   string  `json:"orientation" form:"orientation" binding:"omitempty,oneof=landscape portrait"`
	Scale         float64 `json:"scale" form:"scale" binding:"omitempty,gt=0"`
}

func (r renderRequest) style() ecert.Style {
	style := ecert.DefaultStyle()

	if r.FontName != "" {
		// validated by the fontName binding
		style.Font, _ = ecert.ParseFontID(r.FontName)
	}
	if r.FontSize != nil {
		style.Size = *r.FontSize
	}
	if r.FontColor != "" {
		style.Color, _ = ecert.ParseHexColor(r.FontColor)
	}

	return style
}

func (r renderRequest) anchor() ecert.Anchor {
	return ecert.Anchor{
		Y:             r.AnchorY,
		PreviewHeight: r.PreviewHeight,
		Orientation:   ecert.Orientation(strings.ToLower(r.Orientation)),
		Scale:         r.Scale,
	}
}

// readLayout loads the template and combines it with the already bound style and anchor
// fields. On failure the response has been written.
func (b *baseController) readLayout(ctx *gin.Context, req renderRequest) (*ecert.Layout, bool) {
	tpl, ok := b.readTemplate(ctx)
	if !ok {
		return nil, false
	}

	layout, err := ecert.NewLayout(tpl, req.style(), req.anchor())
	if err != nil {
		b.app.Logger.Debug(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid layout", util.GenerateErrorMessages(err, "anchor"), nil)
		return nil, false
	}

	return layout, true
}
