package middleware

import (
	"github.com/SeakMengs/name2ecert/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestId"

// RequestID reuses a valid incoming X-Request-ID or assigns a new one, and echoes it back.
func RequestID(ctx *gin.Context) {
	id := ctx.GetHeader(constant.HEADER_REQUEST_ID)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	ctx.Set(requestIDKey, id)
	ctx.Header(constant.HEADER_REQUEST_ID, id)
	ctx.Next()
}

func GetRequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
