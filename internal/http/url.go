package http

import (
	"net/url"
	"strings"

	"github.com/foundriesio/polis-client/internal/constants"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// ParseAddress validates an API base address. Only absolute http and https
// URLs with a host are accepted; the query and fragment are dropped.
func ParseAddress(address string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(address))
	if err != nil {
		return nil, &polis.InvalidURLError{URL: address, Err: err}
	}

	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, &polis.InvalidURLError{URL: address, Err: constants.ErrAddressNotAbsolute}
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return nil, &polis.InvalidURLError{URL: address, Err: constants.ErrUnsupportedScheme}
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.RawQuery = ""
	parsed.ForceQuery = false
	parsed.Fragment = ""
	parsed.RawFragment = ""

	return parsed, nil
}

// BuildURL joins the base address path, basePath and path with single
// slashes and appends the encoded query. The base address path is kept as a
// prefix. An empty path resolves to basePath alone. With trailingSlash the
// final path always ends in "/"; an existing trailing slash is never removed.
func BuildURL(base *url.URL, basePath, path string, query *polis.Query, trailingSlash bool) (string, error) {
	if base == nil || !base.IsAbs() || base.Host == "" {
		target := ""
		if base != nil {
			target = base.String()
		}

		return "", &polis.InvalidURLError{URL: target, Err: constants.ErrAddressNotAbsolute}
	}

	joined := JoinPath(base.Path, basePath, path)
	if trailingSlash && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}

	target := url.URL{
		Scheme:   base.Scheme,
		User:     base.User,
		Host:     base.Host,
		Path:     joined,
		RawQuery: query.Encode(),
	}

	return target.String(), nil
}

// JoinPath joins the non-empty segments with "/" and collapses every run of
// slashes to one. The result always starts with "/".
func JoinPath(segments ...string) string {
	parts := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	return collapseSlashes("/" + strings.Join(parts, "/"))
}

func collapseSlashes(path string) string {
	var builder strings.Builder

	builder.Grow(len(path))

	previous := byte(0)

	for i := range len(path) {
		if path[i] == '/' && previous == '/' {
			continue
		}

		previous = path[i]
		builder.WriteByte(path[i])
	}

	return builder.String()
}
