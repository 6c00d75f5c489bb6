package middleware

import (
	"fmt"
	"net/http"

	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/gin-gonic/gin"
)

// BodyLimit rejects requests larger than maxBytes. Bodies without a declared length are
// cut off while they are read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if maxBytes <= 0 {
			ctx.Next()
			return
		}

		if ctx.Request.ContentLength > maxBytes {
			util.ResponseFailed(ctx, http.StatusRequestEntityTooLarge, "Request body too large", util.GenerateErrorMessages(fmt.Errorf("request body exceeds %d bytes", maxBytes), "body"), nil)
			return
		}

		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}
