// Package ginjsonmend wires JSON remediation into Gin: a middleware that
// transparently repairs malformed JSON request bodies before the handler
// binds them. A client sending a manifest with a trailing comma or an
// unquoted key still reaches the handler with strictly valid JSON, and the
// applied fixes are available from the request context.
package ginjsonmend

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsonmend/jsonmend/pkg/jsonmend"
)

// ContextKey is the gin context key under which the middleware stores the
// jsonmend.Outcome for the request body.
const ContextKey = "ginjsonmend.outcome"

// RepairedHeader is set on the response when the body was modified; its
// value is the number of applied fixes.
const RepairedHeader = "X-JSON-Repaired"

// RepairBody returns middleware that repairs malformed JSON request bodies.
// Valid bodies and non-JSON content types pass through untouched. When the
// body cannot be repaired the request is rejected with 400 unless
// WithPassThroughUnfixable is set, in which case the original body is
// restored and the handler decides.
func RepairBody(opts ...Option) gin.HandlerFunc {
	cfg := newConfig(opts...)

	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody || !jsonContentType(c.ContentType()) {
			c.Next()
			return
		}
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, cfg.maxBodyBytes))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}
		if json.Valid(body) {
			replaceBody(c, body)
			c.Next()
			return
		}

		out := jsonmend.Remediate(string(body), cfg.remediateOpts...)
		c.Set(ContextKey, out)
		if !out.Succeeded {
			if cfg.passThroughUnfixable {
				replaceBody(c, body)
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "malformed JSON body",
				"reasons": out.UnfixableReasons,
			})
			return
		}

		c.Header(RepairedHeader, strconv.Itoa(len(out.Diagnostics)))
		replaceBody(c, []byte(out.RepairedText))
		c.Next()
	}
}

// Outcome returns the remediation outcome recorded for this request, if the
// middleware ran and the body needed repair.
func Outcome(c *gin.Context) (jsonmend.Outcome, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return jsonmend.Outcome{}, false
	}
	out, ok := v.(jsonmend.Outcome)
	return out, ok
}

func replaceBody(c *gin.Context, body []byte) {
	c.Request.Body = io.NopCloser(strings.NewReader(string(body)))
	c.Request.ContentLength = int64(len(body))
}

func jsonContentType(ct string) bool {
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}
