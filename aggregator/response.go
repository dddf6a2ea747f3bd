package aggregator

import (
	"slices"

	"github.com/erraggy/oasexplorer/document"
	"github.com/erraggy/oasexplorer/internal/httputil"
	"github.com/erraggy/oasexplorer/schema"
)

// SelectStatus picks the response status whose schema represents an
// operation: the first of 200, 201, 202 and 204 that is declared, else the
// first 2xx in declaration order, else "default", else the first status.
// Keys that are not status codes, such as x- extensions, are ignored.
func SelectStatus(statuses []string) string {
	statuses = slices.DeleteFunc(slices.Clone(statuses), func(code string) bool {
		return !httputil.ValidateStatusCode(code)
	})
	for _, code := range httputil.PreferredSuccessCodes {
		if slices.Contains(statuses, code) {
			return code
		}
	}
	for _, code := range statuses {
		if httputil.IsSuccessStatus(code) {
			return code
		}
	}
	if slices.Contains(statuses, httputil.StatusDefault) {
		return httputil.StatusDefault
	}
	if len(statuses) > 0 {
		return statuses[0]
	}
	return ""
}

func (a *aggregator) response(responses *document.Object) (string, *schema.Node, string) {
	status := SelectStatus(document.Keys(responses))
	if status == "" {
		return "", nil, ""
	}
	raw, _ := responses.Get(status)
	resp := a.component(raw)
	if resp == nil {
		return status, nil, ""
	}
	rawSchema, mediaType := mediaSchema(document.GetObject(resp, "content"))
	return status, schema.FromValue(rawSchema), mediaType
}
