// Package greeting deploys the greeting endpoint as an HTTP Cloud Function.
package greeting

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

func init() {
	functions.HTTP("Greeting", greetingHandler)
}

// Response mirrors the server's greeting body.
type Response struct {
	Message string `json:"message"`
}

// greetingHandler serves /{name} (or ?name=) with the same message as
// GET /greeting/{name} on the server.
func greetingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/")
	name = strings.TrimPrefix(name, "greeting/")
	if name == "" {
		name = r.URL.Query().Get("name")
	}
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{Message: "Hello " + name + "!"})
}
