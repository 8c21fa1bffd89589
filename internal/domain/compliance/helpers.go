package compliance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

const excerptLen = 80

func newViolation(sev domain.Severity, v domain.Violation) domain.Violation {
	v.Severity = sev
	v.Priority = sev.Priority()
	return v
}

func elementLocation(el domain.Element, index int) string {
	return fmt.Sprintf("%s element #%d", el.Type, index+1)
}

func excerpt(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= excerptLen {
		return text
	}
	return string(r[:excerptLen-3]) + "..."
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
