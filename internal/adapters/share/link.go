package share

import (
	"strings"

	"github.com/atotto/clipboard"
)

// DeepLink builds the shareable link for an annotation id: the base URL with
// the id as its fragment. Any fragment already on the base is replaced.
func DeepLink(baseURL, id string) string {
	if i := strings.IndexByte(baseURL, '#'); i >= 0 {
		baseURL = baseURL[:i]
	}
	if id == "" {
		return baseURL
	}
	return baseURL + "#" + id
}

// CopyDeepLink puts the shareable link on the system clipboard.
func CopyDeepLink(baseURL, id string) error {
	return clipboard.WriteAll(DeepLink(baseURL, id))
}
