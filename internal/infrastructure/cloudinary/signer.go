package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign computes the provider signature over a parameter set: pairs are
// canonicalized as sorted key=value joined by "&", the API secret is
// appended, and the whole string is SHA-1 hashed to hex. The provider
// recomputes the same digest on its side, so any tampered parameter
// invalidates the grant. SHA-1 is the provider's contract, not ours to pick.
func Sign(params map[string]string, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(apiSecret)

	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
