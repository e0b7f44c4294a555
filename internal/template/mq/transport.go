package mq

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	json "github.com/goccy/go-json"

	"github.com/geoirb/go-esign/internal/normalizer"
	"github.com/geoirb/go-esign/internal/template"
)

const maxQRCodeSize = 2048

type builder func(payload interface{}, err error) ([]byte, error)

type qrcode interface {
	Create(url string, size int) ([]byte, error)
}

// CommandTransport decodes commands and encodes results of templates service.
type CommandTransport struct {
	builder  builder
	qrcode   qrcode
	uuidFunc func() string
}

// NewCommandTransport ...
func NewCommandTransport(
	builder builder,
	qrcode qrcode,
	uuidFunc func() string,
) *CommandTransport {
	return &CommandTransport{
		builder:  builder,
		qrcode:   qrcode,
		uuidFunc: uuidFunc,
	}
}

// DecodeRequest returns command of message. Command lacking uuid gets a new one.
func (t *CommandTransport) DecodeRequest(message []byte) (cmd Command, err error) {
	var req request
	if err = json.Unmarshal(message, &req); err != nil {
		err = fmt.Errorf("decode request: %w", err)
		return
	}

	cmd = Command{
		UUID:       req.UUID,
		Operation:  req.Operation,
		GUID:       req.GUID,
		Subject:    req.Subject,
		QRCodeSize: req.QRCodeSize,
	}
	if cmd.UUID == "" {
		cmd.UUID = t.uuidFunc()
	}

	if err = validate(&req); err != nil {
		return
	}

	if cmd.Roles, err = normalizer.ParseRoles(req.Roles); err != nil {
		return
	}
	tags, err := normalizer.ParseTags(req.Tags)
	if err != nil {
		return
	}
	mergeFields, err := normalizer.ParseMergeFields(req.MergeFields)
	if err != nil {
		return
	}
	mergeFieldNames, err := normalizer.ParseNameList(req.AcceptableMergeFieldNames)
	if err != nil {
		err = fmt.Errorf("acceptable_merge_field_names: %w", err)
		return
	}
	roleNames, err := normalizer.ParseNameList(req.AcceptableRoleNames)
	if err != nil {
		err = fmt.Errorf("acceptable_role_names: %w", err)
		return
	}

	cmd.List = template.ListOptions{
		Search: req.Search,
		Page:   req.Page,
		Tags:   tags,
	}
	cmd.Send = template.SendOptions{
		Tags:        tags,
		MergeFields: mergeFields,
		ExpiresIn:   req.ExpiresIn,
		Description: req.Description,
		CallbackURL: req.CallbackURL,
	}
	cmd.Build = template.BuildOptions{
		AcceptableMergeFieldNames: mergeFieldNames,
		AcceptableRoleNames:       roleNames,
		Tags:                      tags,
		CallbackLocation:          req.CallbackLocation,
		RedirectLocation:          req.RedirectLocation,
	}
	cmd.Embedded = template.EmbeddedOptions{
		SendOptions:      cmd.Send,
		RedirectLocation: req.RedirectLocation,
	}
	return
}

func validate(req *request) error {
	needsGUID := req.Operation != OperationList && req.Operation != OperationGenerateBuildURL
	return validation.ValidateStruct(req,
		validation.Field(&req.Operation, validation.Required, validation.In(operations...)),
		validation.Field(&req.GUID, validation.When(needsGUID, validation.Required)),
		validation.Field(&req.Page, validation.Min(0)),
		validation.Field(&req.ExpiresIn, validation.Min(0)),
		validation.Field(&req.QRCodeSize, validation.Min(0), validation.Max(maxQRCodeSize)),
	)
}

// EncodeResponse returns message of result. QR codes of URLs are attached when requested.
func (t *CommandTransport) EncodeResponse(res Result, err error) (message []byte) {
	payload := response{
		UUID:      res.UUID,
		Operation: res.Operation,
		Result:    res.Response,
		URL:       res.URL,
	}

	if err == nil && res.URL != "" && res.QRCodeSize > 0 {
		payload.QRCode, err = t.qrcode.Create(res.URL, res.QRCodeSize)
	}
	for _, l := range res.SignerLinks {
		link := signerLink{
			Name: l.Name,
			URL:  l.URL,
		}
		if err == nil && res.QRCodeSize > 0 {
			link.QRCode, err = t.qrcode.Create(l.URL, res.QRCodeSize)
		}
		payload.SignerLinks = append(payload.SignerLinks, link)
	}

	message, _ = t.builder(payload, err)
	return
}
