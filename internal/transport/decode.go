package transport

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/wordnik/wordnik-go/internal/request"
)

// XMLNode is a generic XML element tree.
type XMLNode struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*XMLNode
}

// Find returns the first element named name, searching depth-first and
// starting with n itself.
func (n *XMLNode) Find(name string) *XMLNode {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Map converts the children of n into nested maps. Leaf elements map to
// their text; repeated element names collect into a slice. Attributes are
// stored under "@name".
func (n *XMLNode) Map() map[string]any {
	out := make(map[string]any, len(n.Children)+len(n.Attrs))
	for k, v := range n.Attrs {
		out["@"+k] = v
	}
	for _, c := range n.Children {
		var v any = c.Text
		if len(c.Children) > 0 || len(c.Attrs) > 0 {
			v = c.Map()
		}
		switch prev := out[c.Name].(type) {
		case nil:
			out[c.Name] = v
		case []any:
			out[c.Name] = append(prev, v)
		default:
			out[c.Name] = []any{prev, v}
		}
	}
	return out
}

// DecodeXML parses data into an element tree rooted at the document element.
func DecodeXML(data []byte) (*XMLNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var stack []*XMLNode
	var root *XMLNode

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode xml")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &XMLNode{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				node.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					node.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else if root == nil {
				root = node
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("decode xml: unbalanced end element")
			}
			top := stack[len(stack)-1]
			top.Text = strings.TrimSpace(top.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("decode xml: no root element")
	}
	if len(stack) > 0 {
		return nil, errors.New("decode xml: unexpected end of document")
	}
	return root, nil
}

// Decode decodes a body in the given format. Unknown formats and empty
// bodies decode to nil.
func Decode(format string, data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	switch format {
	case request.FormatJSON:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
		return v, nil
	case request.FormatXML:
		return DecodeXML(data)
	default:
		return nil, nil
	}
}

// errorMessage pulls a human-readable error out of an error response body.
func errorMessage(format string, data []byte) string {
	v, err := Decode(format, data)
	if err != nil || v == nil {
		return ""
	}
	switch body := v.(type) {
	case map[string]any:
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := body[key].(string); ok && s != "" {
				return s
			}
		}
	case *XMLNode:
		for _, key := range []string{"message", "error", "detail"} {
			if n := body.Find(key); n != nil && n.Text != "" {
				return n.Text
			}
		}
	}
	return ""
}
