package middleware

import (
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"myra/internal/shared/logger"
	"myra/internal/shared/utils"
)

// Recovery converts panics into a 500 response. A client that disconnected
// mid-request gets no response body; writing one would just panic again.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if isClientDisconnect(recovered) {
			logger.Error("client disconnected during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		dump, _ := httputil.DumpRequest(c.Request, false)
		logger.Error("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", redactAuthorization(string(dump)),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
	})
}

// redactAuthorization masks the Authorization header before a request dump
// reaches the log.
func redactAuthorization(dump string) []string {
	headers := strings.Split(dump, "\r\n")
	for i, header := range headers {
		name, _, found := strings.Cut(header, ":")
		if found && name == "Authorization" {
			headers[i] = name + ": *"
		}
	}
	return headers
}

func isClientDisconnect(recovered interface{}) bool {
	ne, ok := recovered.(*net.OpError)
	if !ok {
		return false
	}
	se, ok := ne.Err.(*os.SyscallError)
	if !ok {
		return false
	}

	msg := strings.ToLower(se.Error())
	for _, s := range []string{"connection reset by peer", "broken pipe", "connection refused"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// ErrorHandler replies to any error a handler attached to the context but
// did not answer itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		logger.Error("handler error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err)

		if !c.Writer.Written() {
			utils.ErrorResponseWithError(c, err)
		}
	}
}
