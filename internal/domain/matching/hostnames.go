package matching

import (
	"sort"
	"strings"
)

// defaultHostnames maps well-known hostnames to the brand name carried by
// their guideline.
var defaultHostnames = map[string]string{
	"github.com":         "GitHub",
	"www.github.com":     "GitHub",
	"gitlab.com":         "GitLab",
	"about.gitlab.com":   "GitLab",
	"stripe.com":         "Stripe",
	"www.stripe.com":     "Stripe",
	"slack.com":          "Slack",
	"www.slack.com":      "Slack",
	"spotify.com":        "Spotify",
	"www.spotify.com":    "Spotify",
	"open.spotify.com":   "Spotify",
	"airbnb.com":         "Airbnb",
	"www.airbnb.com":     "Airbnb",
	"shopify.com":        "Shopify",
	"www.shopify.com":    "Shopify",
	"atlassian.com":      "Atlassian",
	"www.atlassian.com":  "Atlassian",
	"mailchimp.com":      "Mailchimp",
	"www.mailchimp.com":  "Mailchimp",
	"figma.com":          "Figma",
	"www.figma.com":      "Figma",
	"notion.so":          "Notion",
	"www.notion.so":      "Notion",
	"uber.com":           "Uber",
	"www.uber.com":       "Uber",
	"microsoft.com":      "Microsoft",
	"www.microsoft.com":  "Microsoft",
	"apple.com":          "Apple",
	"www.apple.com":      "Apple",
	"google.com":         "Google",
	"www.google.com":     "Google",
	"salesforce.com":     "Salesforce",
	"www.salesforce.com": "Salesforce",
}

// HostnameTable is an immutable hostname to brand name lookup. It is built
// once at startup and safe for concurrent use.
type HostnameTable struct {
	entries map[string]string
}

// NewHostnameTable returns the built-in table with overrides applied on top.
// Override keys are normalized the same way lookups are.
func NewHostnameTable(overrides map[string]string) *HostnameTable {
	entries := make(map[string]string, len(defaultHostnames)+len(overrides))
	for host, brand := range defaultHostnames {
		entries[host] = brand
	}
	for host, brand := range overrides {
		host = normalizeHost(host)
		brand = strings.TrimSpace(brand)
		if host == "" || brand == "" {
			continue
		}
		entries[host] = brand
	}
	return &HostnameTable{entries: entries}
}

// Lookup returns the brand name mapped to host.
func (t *HostnameTable) Lookup(host string) (string, bool) {
	if t == nil {
		return "", false
	}
	brand, ok := t.entries[normalizeHost(host)]
	return brand, ok
}

func (t *HostnameTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Hosts returns every mapped hostname in sorted order.
func (t *HostnameTable) Hosts() []string {
	if t == nil {
		return nil
	}
	hosts := make([]string, 0, len(t.entries))
	for h := range t.entries {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

func normalizeHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
}
