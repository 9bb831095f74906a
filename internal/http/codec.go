package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"gopkg.in/yaml.v3"

	"github.com/foundriesio/polis-client/internal/constants"
	"github.com/foundriesio/polis-client/internal/mediatype"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// encodeBody returns the wire representation of body. Strings, byte slices
// and readers are sent as they are; any other value is encoded for
// contentType. The boolean reports whether a body is present: an empty raw
// payload counts as no body.
func encodeBody(body any, contentType string) ([]byte, bool, error) {
	switch value := body.(type) {
	case nil:
		return nil, false, nil
	case json.RawMessage:
		return value, len(value) > 0, nil
	case []byte:
		return value, len(value) > 0, nil
	case string:
		return []byte(value), value != "", nil
	case io.Reader:
		payload, err := io.ReadAll(value)
		if err != nil {
			return nil, false, &polis.EncodeError{ContentType: contentType, Err: err}
		}

		return payload, len(payload) > 0, nil
	}

	payload, err := marshalBody(body, mediatype.Parse(contentType))
	if err != nil {
		return nil, false, &polis.EncodeError{ContentType: contentType, Err: err}
	}

	return payload, true, nil
}

func marshalBody(body any, mediaType string) ([]byte, error) {
	switch {
	case mediaType == "" || mediatype.IsJSON(mediaType):
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}

		return payload, nil
	case mediatype.IsYAML(mediaType):
		payload, err := yaml.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}

		return payload, nil
	case mediatype.IsForm(mediaType):
		return encodeForm(body)
	default:
		return nil, constants.ErrNoCodecForContentType
	}
}

func encodeForm(body any) ([]byte, error) {
	switch value := body.(type) {
	case url.Values:
		return []byte(value.Encode()), nil
	case map[string][]string:
		return []byte(url.Values(value).Encode()), nil
	case map[string]string:
		values := make(url.Values, len(value))
		for key, item := range value {
			values.Set(key, item)
		}

		return []byte(values.Encode()), nil
	default:
		return nil, fmt.Errorf("%w: got %T", constants.ErrUnsupportedFormBody, body)
	}
}
