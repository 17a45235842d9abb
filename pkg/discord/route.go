package discord

import (
	"net/url"
	"strings"
)

const redacted = "[redacted]"

// Param is one addressing parameter of a route, such as channel_id=123.
type Param struct {
	Name   string `json:"name"   yaml:"name"`
	Value  string `json:"value"  yaml:"value"`
	Secret bool   `json:"secret" yaml:"secret"`
}

// Route describes the single HTTP operation a request is bound to.
//
// Template uses {name} placeholders; Params carries the values for them in
// path order. Params may also carry addressing values that travel in the body
// rather than the path (for example the recipient of a private channel).
type Route struct {
	Name     string  `json:"name"     yaml:"name"`
	Method   string  `json:"method"   yaml:"method"`
	Template string  `json:"template" yaml:"template"`
	Params   []Param `json:"params"   yaml:"params"`
}

// NewRoute creates a route.
func NewRoute(name, method, template string, params ...Param) Route {
	return Route{
		Name:     name,
		Method:   method,
		Template: template,
		Params:   params,
	}
}

// P is shorthand for building a Param from any identifier.
func P(name string, value interface{ String() string }) Param {
	return Param{Name: name, Value: value.String()}
}

// SecretP builds a Param whose value is hidden when the route is printed.
func SecretP(name, value string) Param {
	return Param{Name: name, Value: value, Secret: true}
}

// Param returns the value of the named parameter.
func (r Route) Param(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Name == name {
			return p.Value, true
		}
	}

	return "", false
}

// ParamNames returns the parameter names in order.
func (r Route) ParamNames() []string {
	names := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		names = append(names, p.Name)
	}

	return names
}

// Path renders the template, path-escaping every substituted value.
func (r Route) Path() string {
	return r.render(false)
}

// RedactedPath renders the template with secret values replaced.
func (r Route) RedactedPath() string {
	return r.render(true)
}

// String renders the route as "METHOD /path" with secrets redacted.
func (r Route) String() string {
	return r.Method + " " + r.RedactedPath()
}

func (r Route) render(redact bool) string {
	if len(r.Params) == 0 {
		return r.Template
	}

	pairs := make([]string, 0, len(r.Params)*2)
	for _, p := range r.Params {
		value := url.PathEscape(p.Value)
		if redact && p.Secret {
			value = redacted
		}

		pairs = append(pairs, "{"+p.Name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(r.Template)
}

// Redacted returns a copy of the route with secret parameter values replaced,
// suitable for printing.
func (r Route) Redacted() Route {
	params := make([]Param, len(r.Params))
	for i, p := range r.Params {
		if p.Secret {
			p.Value = redacted
		}

		params[i] = p
	}

	r.Params = params

	return r
}
