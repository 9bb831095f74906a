package constants

import "errors"

// Address errors.
var (
	ErrAddressNotAbsolute = errors.New("address must be an absolute URL with scheme and host")
	ErrUnsupportedScheme  = errors.New("unsupported URL scheme")
)

// Request body errors.
var (
	ErrNoCodecForContentType = errors.New("no body codec for content type")
	ErrUnsupportedFormBody   = errors.New("form body must be url.Values, map[string]string or map[string][]string")
)
