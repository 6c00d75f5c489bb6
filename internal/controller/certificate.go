package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/SeakMengs/name2ecert/internal/constant"
	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	*baseController
}

func (cc CertificateController) observeBatch(mode string, recipients int, err error) {
	if cc.app.Metrics != nil {
		cc.app.Metrics.ObserveBatch(mode, recipients, err)
	}
}

// Preview renders the sample names, or only the given name, against the uploaded template.
func (cc CertificateController) Preview(ctx *gin.Context) {
	type Request struct {
		renderRequest
		Name string `json:"name" form:"name" binding:"omitempty,strNotEmpty,cmax=200"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Debug(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	layout, ok := cc.readLayout(ctx, body.renderRequest)
	if !ok {
		return
	}

	var (
		doc []byte
		err error
	)
	if body.Name != "" {
		doc, err = cc.app.Generator.PreviewName(layout, strings.TrimSpace(body.Name))
		cc.observeBatch("preview", 1, err)
	} else {
		doc, err = cc.app.Generator.Preview(layout)
		cc.observeBatch("preview", len(ecert.PreviewNames), err)
	}
	if err != nil {
		cc.app.Logger.Errorw("Preview failed", "error", err)
		util.ResponseFailed(ctx, statusForEngineError(err), "Failed to render preview", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseFile(ctx, "application/pdf", ecert.PreviewFileName, doc)
}

// Generate renders a certificate for every name in the uploaded recipient list and returns
// them as a zip archive, or a download link when export is requested.
func (cc CertificateController) Generate(ctx *gin.Context) {
	type Request struct {
		renderRequest
		Export bool `json:"export" form:"export"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Debug(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	layout, ok := cc.readLayout(ctx, body.renderRequest)
	if !ok {
		return
	}

	if body.Export && cc.app.Exporter == nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Export is not available", util.GenerateErrorMessages(errors.New(ErrExportNotEnabled), "export"), nil)
		return
	}

	csvFile, err := ctx.FormFile(constant.FORM_CSV_FILE)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No csv file uploaded", util.GenerateErrorMessages(errors.New(ErrCSVFileRequired), constant.FORM_CSV_FILE), nil)
		return
	}

	src, err := csvFile.Open()
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read csv file", util.GenerateErrorMessages(err), nil)
		return
	}
	defer src.Close()

	recipients, err := ecert.ReadRecipients(src)
	if err != nil {
		cc.app.Logger.Debugw("Recipient list rejected", "file", csvFile.Filename, "error", err)
		util.ResponseFailed(ctx, statusForEngineError(err), "Invalid csv file", util.GenerateErrorMessages(err, constant.FORM_CSV_FILE), nil)
		return
	}

	archive, err := cc.app.Generator.Generate(layout, recipients)
	cc.observeBatch("generate", recipients.Len(), err)
	if err != nil {
		cc.app.Logger.Errorw("Generation failed", "recipients", recipients.Len(), "error", err)
		util.ResponseFailed(ctx, statusForEngineError(err), "Failed to generate certificates", util.GenerateErrorMessages(err), nil)
		return
	}

	data, err := archive.Bytes()
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create archive", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Export {
		file, err := cc.app.Exporter.Export(ctx, ecert.ArchiveFileName, "application/zip", data)
		if err != nil {
			cc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to export certificates", util.GenerateErrorMessages(err), nil)
			return
		}

		util.ResponseSuccess(ctx, gin.H{
			"file":             file,
			"certificates":     len(archive.Entries),
			"failedRecipients": archive.FailedRecipients(),
		})
		return
	}

	if len(archive.Failures) > 0 {
		ctx.Header(constant.HEADER_FAILED_RECIPIENTS, encodeRecipients(archive.FailedRecipients()))
	}

	util.ResponseFile(ctx, "application/zip", ecert.ArchiveFileName, data)
}

// encodeRecipients joins names into a header value. Names are query escaped so commas and
// non-ASCII characters survive.
func encodeRecipients(names []string) string {
	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = url.QueryEscape(name)
	}
	return strings.Join(escaped, ",")
}
