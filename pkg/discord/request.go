package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// HeaderAuditLogReason carries the audit log reason for mutating requests.
const HeaderAuditLogReason = "X-Audit-Log-Reason"

// Executor runs built requests. The internal HTTP transport implements it.
type Executor interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Request is a not-yet-executed Discord API operation.
//
// A Request is bound to exactly one Route when it is created. Callers may add
// body fields, query values, headers and an audit log reason before executing
// it; the route itself cannot change.
type Request struct {
	route    Route
	fields   map[string]interface{}
	body     interface{}
	query    url.Values
	headers  http.Header
	executor Executor
}

// NewRequest creates a request for route that will run on executor.
// A nil executor is allowed; such a request can be inspected but not executed.
func NewRequest(executor Executor, route Route) *Request {
	return &Request{
		route:    route,
		executor: executor,
	}
}

// Route returns the route this request is bound to.
func (r *Request) Route() Route {
	return r.route
}

// Method returns the HTTP method.
func (r *Request) Method() string {
	return r.route.Method
}

// Path returns the rendered request path.
func (r *Request) Path() string {
	return r.route.Path()
}

// Field sets a single JSON body field.
func (r *Request) Field(key string, value interface{}) *Request {
	if r.fields == nil {
		r.fields = make(map[string]interface{})
	}

	r.fields[key] = value

	return r
}

// Body replaces the JSON body with v. Fields set with Field are ignored once a
// body is set.
func (r *Request) Body(v interface{}) *Request {
	r.body = v

	return r
}

// Query adds a query string value.
func (r *Request) Query(key, value string) *Request {
	if r.query == nil {
		r.query = make(url.Values)
	}

	r.query.Add(key, value)

	return r
}

// Header sets a request header.
func (r *Request) Header(key, value string) *Request {
	if r.headers == nil {
		r.headers = make(http.Header)
	}

	r.headers.Set(key, value)

	return r
}

// Reason sets the audit log reason.
func (r *Request) Reason(reason string) *Request {
	return r.Header(HeaderAuditLogReason, url.PathEscape(reason))
}

// Fields returns the body fields set so far.
func (r *Request) Fields() map[string]interface{} {
	return r.fields
}

// Values returns the query values set so far.
func (r *Request) Values() url.Values {
	return r.query
}

// Headers returns the headers set so far.
func (r *Request) Headers() http.Header {
	return r.headers
}

// Payload returns what will be JSON-encoded as the request body, or nil.
func (r *Request) Payload() interface{} {
	if r.body != nil {
		return r.body
	}

	if len(r.fields) > 0 {
		return r.fields
	}

	return nil
}

// Exec runs the request.
func (r *Request) Exec(ctx context.Context) (*Response, error) {
	if r.executor == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoExecutor, r.route.Name)
	}

	resp, err := r.executor.Execute(ctx, r)
	if err != nil {
		return resp, fmt.Errorf("executing %s: %w", r.route.Name, err)
	}

	return resp, nil
}

// Into runs the request and decodes the JSON response into v.
func (r *Request) Into(ctx context.Context, v interface{}) error {
	resp, err := r.Exec(ctx)
	if err != nil {
		return err
	}

	return resp.Decode(v)
}

// Response is the raw result of an executed request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v interface{}) error {
	if len(r.Body) == 0 || r.StatusCode == http.StatusNoContent {
		return nil
	}

	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}
