package mq

import (
	"github.com/geoirb/go-esign/internal/normalizer"
	"github.com/geoirb/go-esign/internal/template"
)

// operations.
const (
	OperationList                  = "list"
	OperationDetails               = "details"
	OperationPrepackage            = "prepackage"
	OperationPrefill               = "prefill"
	OperationSend                  = "send"
	OperationPrepackageAndSend     = "prepackage_and_send"
	OperationGenerateBuildURL      = "generate_build_url"
	OperationSendAsEmbeddedSigners = "send_as_embedded_signers"
)

var operations = []interface{}{
	OperationList,
	OperationDetails,
	OperationPrepackage,
	OperationPrefill,
	OperationSend,
	OperationPrepackageAndSend,
	OperationGenerateBuildURL,
	OperationSendAsEmbeddedSigners,
}

// Command to templates service.
type Command struct {
	UUID      string
	Operation string

	GUID    string
	Subject string
	Roles   []normalizer.Role

	List     template.ListOptions
	Send     template.SendOptions
	Build    template.BuildOptions
	Embedded template.EmbeddedOptions

	QRCodeSize int
}

// Result of command.
type Result struct {
	UUID      string
	Operation string

	Response    template.Response
	URL         string
	SignerLinks []template.SignerLink

	QRCodeSize int
}

type request struct {
	UUID      string `json:"uuid"`
	Operation string `json:"operation"`

	GUID        string      `json:"guid"`
	Subject     string      `json:"subject"`
	Roles       interface{} `json:"roles"`
	Tags        interface{} `json:"tags"`
	MergeFields interface{} `json:"merge_fields"`
	ExpiresIn   int         `json:"expires_in"`
	Description string      `json:"description"`
	CallbackURL string      `json:"callback_url"`

	Search string `json:"search"`
	Page   int    `json:"page"`

	AcceptableMergeFieldNames interface{} `json:"acceptable_merge_field_names"`
	AcceptableRoleNames       interface{} `json:"acceptable_role_names"`
	CallbackLocation          string      `json:"callback_location"`
	RedirectLocation          string      `json:"redirect_location"`

	QRCodeSize int `json:"qr_code_size"`
}

type response struct {
	UUID        string                 `json:"uuid"`
	Operation   string                 `json:"operation"`
	Result      map[string]interface{} `json:"result,omitempty"`
	URL         string                 `json:"url,omitempty"`
	QRCode      []byte                 `json:"qr_code,omitempty"`
	SignerLinks []signerLink           `json:"signer_links,omitempty"`
}

type signerLink struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	QRCode []byte `json:"qr_code,omitempty"`
}
