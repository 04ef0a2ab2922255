// Package origin derives the canonical origin key used to bucket saved
// credentials: the URL scheme plus the registrable domain of its host.
package origin

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrInvalidURL is returned when a URL cannot be split into scheme and host.
var ErrInvalidURL = errors.New("invalid url")

// Normalize returns "<scheme>://<registrable-domain>" for rawURL. Path, query,
// fragment, port and any subdomains below the registrable domain are dropped,
// so every page of a site maps to the same key.
//
// Internationalized hosts are keyed by their ASCII (punycode) form, so a
// Unicode host and its xn-- spelling share a key.
//
// Hosts without a registrable domain (IP literals, single-label hosts such as
// "localhost", bare public suffixes) keep their full host.
func Normalize(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidURL, rawURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if scheme == "" || host == "" {
		return "", fmt.Errorf("%w %q: missing scheme or host", ErrInvalidURL, rawURL)
	}

	return scheme + "://" + registrableDomain(asciiHost(host)), nil
}

// asciiHost converts a Unicode host to its lookup form. Hosts that IDNA
// rejects (underscores, IP literals) are kept as given.
func asciiHost(host string) string {
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil || ascii == "" {
		return host
	}
	return ascii
}

func registrableDomain(host string) string {
	if ip := net.ParseIP(host); ip != nil {
		if strings.Contains(host, ":") {
			return "[" + host + "]"
		}
		return host
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
