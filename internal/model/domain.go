package model

import "strings"

const DefaultRedirectIP = "127.0.0.1"

// Domain is a user supplied host name such as "facebook.com". It is only
// trimmed; no further syntax checks are applied.
type Domain string

func ParseDomain(raw string) (Domain, error) {
	d := strings.TrimSpace(raw)
	if d == "" {
		return "", validationError("model.parse_domain", "domain is required")
	}
	return Domain(d), nil
}

func (d Domain) String() string { return string(d) }

// Hosts returns the bare name followed by its www. variant.
func (d Domain) Hosts() []string {
	return []string{string(d), "www." + string(d)}
}

// Entries returns the redirect lines (without line terminators) that block d.
func (d Domain) Entries(redirectIP string) []string {
	if redirectIP == "" {
		redirectIP = DefaultRedirectIP
	}
	hosts := d.Hosts()
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		out = append(out, redirectIP+" "+h)
	}
	return out
}
