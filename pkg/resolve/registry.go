package resolve

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

// Decoder evaluates the contents of a module file.
// path is passed through for error positions; data is the full file body.
type Decoder func(path string, data []byte) (any, error)

// Registry resolves modules by reading the file and dispatching on its
// extension. Files with no registered decoder resolve to their raw bytes.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
	fallback Decoder

	// cue.Context is not safe for concurrent evaluation.
	cueMu  sync.Mutex
	cueCtx *cue.Context
}

// NewRegistry returns a Registry with the built-in decoders registered:
//
//	.cue         cue.Value
//	.yaml .yml   YAML document as generic Go values
//	.json        JSON document as generic Go values
//	.toml        map[string]any
//
// Anything else resolves to []byte.
func NewRegistry() *Registry {
	r := &Registry{
		decoders: make(map[string]Decoder),
		fallback: decodeRaw,
		cueCtx:   cuecontext.New(),
	}
	r.Register(".cue", r.decodeCUE)
	r.Register(".yaml", decodeYAML)
	r.Register(".yml", decodeYAML)
	r.Register(".json", decodeJSON)
	r.Register(".toml", decodeTOML)
	return r
}

// Register installs d for files with extension ext (".ext", case-insensitive),
// replacing any previous decoder.
func (r *Registry) Register(ext string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[normalizeExt(ext)] = d
}

// SetFallback replaces the decoder used for unregistered extensions.
func (r *Registry) SetFallback(d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = d
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.decoders))
}

// Resolve reads the file at path and decodes it.
func (r *Registry) Resolve(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newResolutionError(path, err)
	}

	r.mu.RLock()
	d, ok := r.decoders[normalizeExt(filepath.Ext(path))]
	if !ok {
		d = r.fallback
	}
	r.mu.RUnlock()

	val, err := d(path, data)
	if err != nil {
		return nil, newResolutionError(path, err)
	}
	return val, nil
}

func (r *Registry) decodeCUE(path string, data []byte) (any, error) {
	r.cueMu.Lock()
	defer r.cueMu.Unlock()

	v := r.cueCtx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeYAML(_ string, data []byte) (any, error) {
	var out any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSON(_ string, data []byte) (any, error) {
	var out any
	if err := k8syaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeTOML(_ string, data []byte) (any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeRaw(_ string, data []byte) (any, error) {
	return data, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
