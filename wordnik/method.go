package wordnik

import (
	"context"

	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/nameutil"
)

// Operation describes one remote operation.
type Operation = endpoint.Operation

// Method is a named, callable operation.
type Method struct {
	Name      string
	Operation Operation
}

// Doc renders the method's help text.
func (m Method) Doc() string {
	return m.Name + "\n" + m.Operation.Doc()
}

// MethodFunc is a method bound to a client.
type MethodFunc func(ctx context.Context, args []string, params map[string]any) (*Response, error)

// Synthesize names every operation and returns the lookup table. Two
// operations that normalize to the same name are an error.
func Synthesize(ops []Operation) (map[string]Method, error) {
	methods := make(map[string]Method, len(ops))
	for _, op := range ops {
		name := nameutil.Normalize(op.Path, string(op.Verb))
		if prev, dup := methods[name]; dup {
			return nil, &DuplicateMethodError{
				Name:   name,
				First:  string(prev.Operation.Verb) + " " + prev.Operation.Path,
				Second: string(op.Verb) + " " + op.Path,
			}
		}
		methods[name] = Method{Name: name, Operation: op}
	}
	return methods, nil
}
