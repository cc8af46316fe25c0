package transport

import (
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Response is a decoded reply.
type Response struct {
	Status    int
	Format    string
	Raw       []byte
	Value     any // JSON value, *XMLNode, or nil
	RequestID string
	Header    http.Header
}

// Decode copies the decoded value into out, matching fields by their json
// tags. XML values are flattened with XMLNode.Map first.
func (r *Response) Decode(out any) error {
	input := r.Value
	if node, ok := input.(*XMLNode); ok {
		input = node.Map()
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "response: building decoder")
	}
	return errors.Wrap(dec.Decode(input), "response: decoding value")
}
