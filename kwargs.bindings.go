package kwargs

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadBindings reads keyword arguments from a YAML mapping. The record
// keeps the document's key order:
//
//	name: Alice
//	count: 3
//
// yields (name=Alice, count=3). An empty document yields the empty record.
func LoadBindings(data []byte) (*Args, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewConfigError(ErrMsgBindingsInvalid, err)
	}
	if len(doc.Content) == 0 {
		return newArgs(nil, nil, DefaultMaxSuggestions), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, NewConfigError(ErrMsgBindingsInvalid, nil).
			WithMetadata(MetaKeyLine, strconv.Itoa(root.Line))
	}

	names := make([]string, 0, len(root.Content)/2)
	values := make([]any, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, valueNode := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, NewConfigError(ErrMsgEmptyName, nil).
				WithMetadata(MetaKeyLine, strconv.Itoa(key.Line))
		}

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, NewConfigError(ErrMsgBindingsInvalid, err).
				WithMetadata(MetaKeyName, key.Value)
		}
		names = append(names, key.Value)
		values = append(values, value)
	}
	return newArgs(names, values, DefaultMaxSuggestions), nil
}

// LoadEnv reads an expression environment from a YAML mapping for use
// with Eval.
func LoadEnv(data []byte) (map[string]any, error) {
	args, err := LoadBindings(data)
	if err != nil {
		return nil, err
	}
	env := make(map[string]any, args.Len())
	for _, p := range args.Pairs() {
		if _, exists := env[p.Name]; !exists {
			env[p.Name] = p.Value
		}
	}
	return env, nil
}
