package id

// Redacted is what a WebhookToken prints as.
const Redacted = "[redacted]"

// TemplateCode identifies a guild template.
type TemplateCode string

// InviteCode identifies an invite.
type InviteCode string

// WebhookToken is the secret half of a webhook's address.
type WebhookToken string

// NewTemplateCode creates a template code.
func NewTemplateCode(code string) TemplateCode { return TemplateCode(code) }

// NewInviteCode creates an invite code.
func NewInviteCode(code string) InviteCode { return InviteCode(code) }

// NewWebhookToken creates a webhook token.
func NewWebhookToken(token string) WebhookToken { return WebhookToken(token) }

// Value returns the raw code.
func (c TemplateCode) Value() string { return string(c) }

// String returns the raw code.
func (c TemplateCode) String() string { return string(c) }

// Value returns the raw code.
func (c InviteCode) Value() string { return string(c) }

// String returns the raw code.
func (c InviteCode) String() string { return string(c) }

// Value returns the raw token. Only the transport should need it.
func (t WebhookToken) Value() string { return string(t) }

// String hides the token so it never ends up in logs or error messages.
func (t WebhookToken) String() string { return Redacted }

// GoString hides the token from %#v as well.
func (t WebhookToken) GoString() string { return Redacted }
