package template

import (
	"github.com/geoirb/go-esign/internal/normalizer"
)

// Response of the e-signature service decoded to nested mappings.
type Response = map[string]interface{}

// Params of a request: query for GET, body for POST.
type Params = map[string]interface{}

// actions of template request.
const (
	actionSend    = "send"
	actionPrefill = "prefill"
)

// EmbeddedSignerEmail is set to every role sent as embedded signer, no email is dispatched to it.
const EmbeddedSignerEmail = "noemail@rightsignature.com"

// ListOptions of templates list.
type ListOptions struct {
	Search string
	Page   int
	Tags   normalizer.Tags
}

// SendOptions optional fields of prefill and send requests.
type SendOptions struct {
	Tags        normalizer.Tags
	MergeFields []normalizer.MergeField
	ExpiresIn   int
	Description string
	CallbackURL string
}

// BuildOptions of template builder.
type BuildOptions struct {
	AcceptableMergeFieldNames []string
	AcceptableRoleNames       []string
	Tags                      normalizer.Tags
	CallbackLocation          string
	RedirectLocation          string
}

// EmbeddedOptions of embedded signers sending.
type EmbeddedOptions struct {
	SendOptions
	// RedirectLocation where a signer lands after signing.
	RedirectLocation string
}

// SignerLink of embedded signer.
type SignerLink struct {
	Name string
	URL  string
}

// requestTemplate is the "template" object of prefill/send requests.
type requestTemplate struct {
	GUID    string
	Action  string
	Subject string
	Roles   []normalizer.Role
	SendOptions
}

type prepackagedRole struct {
	Name           string `mapstructure:"name"`
	DocumentRoleID string `mapstructure:"document_role_id"`
}

// prepackaged copy of a template.
type prepackaged struct {
	GUID    string
	Subject string
}

type signerLink struct {
	Name        string `mapstructure:"name"`
	Role        string `mapstructure:"role"`
	SignerToken string `mapstructure:"signer_token"`
}
