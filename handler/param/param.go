package param

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
}

// Binding binds request params to v: a json body when the request
// carries one, query/form values otherwise.
func Binding(r *http.Request, v interface{}) error {
	if typ := r.Header.Get("Content-Type"); strings.HasPrefix(typ, "application/json") {
		return json.NewDecoder(r.Body).Decode(v)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}

	return decoder.Decode(v, r.Form)
}
