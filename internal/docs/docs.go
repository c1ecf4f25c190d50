// Package docs serves the API description and the liveness check.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/ferdiebergado/gatekeep/internal/pkg/web"
)

const MsgHealthy = "OK"

var (
	//go:embed openapi.json
	openAPI []byte

	//go:embed page.html
	page []byte
)

// OpenAPI writes the OpenAPI document.
func OpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(web.HeaderContentType, web.MimeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPI)
}

// Page writes an HTML page that links to the OpenAPI document.
func Page(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(web.HeaderContentType, "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	msg := MsgHealthy
	web.RespondOK[struct{}](w, &msg, nil)
}
