package render

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opmodel/autoload/internal/output"
	"github.com/opmodel/autoload/pkg/autoload"
)

// DiffModules resolves the leaves at fromKey and toKey (dotted key paths)
// and returns a structural diff of their values. An empty string means the
// values are equal.
func DiffModules(result *autoload.Result, fromKey, toKey string, useColor bool) (string, error) {
	from, err := moduleYAML(result, fromKey)
	if err != nil {
		return "", err
	}

	to, err := moduleYAML(result, toKey)
	if err != nil {
		return "", err
	}

	return output.DiffYAML(from, to, output.DiffOptions{
		FromName: fromKey,
		ToName:   toKey,
		UseColor: useColor,
	})
}

func moduleYAML(result *autoload.Result, key string) ([]byte, error) {
	matches := findModules(result, key)
	if len(matches) > 1 {
		return nil, fmt.Errorf("key %q is ambiguous: %s", key, strings.Join(matches.paths(), ", "))
	}
	if len(matches) == 0 {
		// Reports a missing key or a branch with the right error.
		if _, err := result.Load(strings.Split(key, ".")...); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("key %q: %w", key, autoload.ErrNotFound)
	}

	v, err := matches[0].Get()
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(Plain(v))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}
	return data, nil
}

type moduleList []*autoload.Module

func (l moduleList) paths() []string {
	out := make([]string, len(l))
	for i, m := range l {
		out[i] = m.Path()
	}
	return out
}

// findModules returns the distinct leaves whose dotted key path equals key.
// Stems and component names may contain dots, so ["x", "a.b"] and
// ["x.a", "b"] both match "x.a.b".
func findModules(result *autoload.Result, key string) moduleList {
	var found moduleList
	_ = result.Each(func(keys []string, m *autoload.Module) error {
		if strings.Join(keys, ".") == key && !slices.Contains(found, m) {
			found = append(found, m)
		}
		return nil
	})
	return found
}
