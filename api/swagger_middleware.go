package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CustomSwaggerHandler wraps the swagger handler and rewrites the host in
// doc.json responses to the one from the environment, so the UI works when
// the backend is reached through a tunnel or reverse proxy
func CustomSwaggerHandler(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasSuffix(c.Request.URL.Path, "/doc.json") {
			handler(c)
			return
		}

		host := os.Getenv("HOST_URL")
		if host == "" {
			host = "localhost"
		}
		if !strings.Contains(host, ":") {
			host += ":8080"
		}

		w := &responseRewriter{
			ResponseWriter: c.Writer,
			body:           []byte{},
			host:           host,
		}

		c.Writer = w
		handler(c)

		if len(w.body) > 0 {
			content := string(w.body)
			content = strings.ReplaceAll(content, "localhost:8080", w.host)

			for k := range w.Header() {
				w.Header().Del(k)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Content-Length", fmt.Sprint(len(content)))

			w.ResponseWriter.WriteHeader(http.StatusOK)
			w.ResponseWriter.Write([]byte(content))
		}
	}
}

type responseRewriter struct {
	gin.ResponseWriter
	body []byte
	host string
}

func (w *responseRewriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return len(b), nil
}

func (w *responseRewriter) WriteHeader(statusCode int) {
	// Deferred until the rewritten body is ready
}

func (w *responseRewriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *responseRewriter) WriteHeaderNow() {
	// Deferred until the rewritten body is ready
}

func (w *responseRewriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
