package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/dataelementhub/dehub-registry/cmd/deh-registry-api/docs"
)

var (
	// openAPIJSON and openAPIYAML hold the rendered document; both stay
	// empty when it does not parse
	openAPIJSON []byte
	openAPIYAML []byte
)

func init() {
	doc := []byte(docs.SwaggerInfo.ReadDoc())

	var spec map[string]any
	if err := json.Unmarshal(doc, &spec); err != nil {
		slog.Error("Failed to parse OpenAPI specification", "error", err)
		return
	}

	yamlData, err := yaml.Marshal(spec)
	if err != nil {
		slog.Error("Failed to convert OpenAPI specification to YAML", "error", err)
		return
	}

	openAPIJSON = doc
	openAPIYAML = yamlData
}

// serveOpenAPIJSON handles GET /openapi.json
//
// @Summary		Get OpenAPI specification
// @Tags		system
// @Produce		json
// @Success		200	{object}	map[string]any	"OpenAPI 3.1 document"
// @Router		/openapi.json [get]
func serveOpenAPIJSON(w http.ResponseWriter, _ *http.Request) {
	serveOpenAPI(w, "application/json", openAPIJSON)
}

// serveOpenAPIYAML handles GET /openapi.yaml
//
// @Summary		Get OpenAPI specification as YAML
// @Tags		system
// @Produce		application/x-yaml
// @Success		200	{string}	string	"OpenAPI 3.1 document"
// @Router		/openapi.yaml [get]
func serveOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	serveOpenAPI(w, "application/x-yaml", openAPIYAML)
}

func serveOpenAPI(w http.ResponseWriter, contentType string, body []byte) {
	if len(body) == 0 {
		http.Error(w, "OpenAPI specification not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
