package matching

import (
	"net"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/publicsuffix"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

// ParseURL splits a URL into hostname, domain label and subdomain. A URL
// without a scheme is read as https. When no hostname can be extracted the
// result is degraded: Hostname and Domain both hold the trimmed, lower-cased
// input and matching carries on with that. Hosts that are neither an IP
// address nor made of letters, digits, dots, hyphens and underscores are
// degraded too.
func ParseURL(raw string) domain.URLInfo {
	info := domain.URLInfo{Raw: raw}
	trimmed := strings.TrimSpace(raw)

	candidate := trimmed
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil || !validHost(u.Hostname()) {
		info.Hostname = strings.ToLower(trimmed)
		info.Domain = info.Hostname
		info.Registrable = info.Hostname
		info.Degraded = true
		return info
	}

	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	info.Hostname = host

	// domain is the second-from-last label: "www.github.com" -> "github"
	labels := strings.Split(host, ".")
	if len(labels) >= 2 {
		info.Domain = labels[len(labels)-2]
		info.Subdomain = strings.Join(labels[:len(labels)-2], ".")
	} else {
		info.Domain = host
	}

	info.Registrable = host
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		info.Registrable = etld1
	}
	return info
}

func validHost(host string) bool {
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	alnum := false
	for _, r := range host {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum = true
		case r == '.' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return alnum
}
