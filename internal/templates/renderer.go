package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	atVarRegex     = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)@`)
	dollarVarRegex = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)
)

// Renderer resolves placeholders the way CMake's configure_file does.
// Payloads are C++ and CMake, so text/template delimiters would collide with them.
type Renderer struct {
	vars   map[string]string
	atOnly bool
	strict bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithDollarVars also replaces ${NAME} references whose NAME is defined.
// Undefined ${NAME} references stay for CMake to resolve.
func WithDollarVars() RendererOption {
	return func(r *Renderer) {
		r.atOnly = false
	}
}

// WithStrict makes any unresolved @NAME@ token an error.
func WithStrict() RendererOption {
	return func(r *Renderer) {
		r.strict = true
	}
}

// NewRenderer creates a renderer for the given variables.
func NewRenderer(vars map[string]string, opts ...RendererOption) *Renderer {
	r := &Renderer{
		vars:   make(map[string]string, len(vars)),
		atOnly: true,
	}
	for k, v := range vars {
		r.vars[k] = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// UnresolvedError lists @NAME@ tokens left without a value in strict mode.
type UnresolvedError struct {
	Path  string
	Names []string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("%s: unresolved variables: %s", e.Path, strings.Join(e.Names, ", "))
}

// RenderString substitutes placeholders in content.
func (r *Renderer) RenderString(content string) (string, []string) {
	var missing []string
	out := atVarRegex.ReplaceAllStringFunc(content, func(tok string) string {
		name := tok[1 : len(tok)-1]
		if v, ok := r.vars[name]; ok {
			return v
		}
		missing = append(missing, name)
		return tok
	})

	if !r.atOnly {
		out = dollarVarRegex.ReplaceAllStringFunc(out, func(tok string) string {
			if v, ok := r.vars[tok[2:len(tok)-1]]; ok {
				return v
			}
			return tok
		})
	}

	return out, dedupe(missing)
}

// RenderFile returns a copy of d with placeholders substituted.
func (r *Renderer) RenderFile(d FileDesc) (FileDesc, error) {
	content, missing := r.RenderString(d.Content)
	if r.strict && len(missing) > 0 {
		return FileDesc{}, &UnresolvedError{Path: d.Path(), Names: missing}
	}
	d.Content = content
	return d, nil
}

// Placeholders returns the distinct @NAME@ tokens in content, sorted.
func Placeholders(content string) []string {
	var names []string
	for _, m := range atVarRegex.FindAllStringSubmatch(content, -1) {
		names = append(names, m[1])
	}
	return dedupe(names)
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
