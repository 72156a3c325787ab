package theme

import (
	"fmt"
	"sort"

	"github.com/mitchellh/hashstructure/v2"
)

// Fingerprint returns a stable hex hash of the theme. It is printed in
// CSS exports so stale stylesheets can be spotted.
func Fingerprint(t ResolvedTheme) (string, error) {
	h, err := hashstructure.Hash(t, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("fingerprint theme: %w", err)
	}
	return fmt.Sprintf("%016x", h), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
