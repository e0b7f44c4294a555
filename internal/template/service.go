package template

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/geoirb/go-esign/internal/normalizer"
)

type transport interface {
	Get(ctx context.Context, path string, params Params) (Response, error)
	Post(ctx context.Context, path string, params Params) (Response, error)
}

type path interface {
	Templates() string
	Template(guid string) string
	Prepackage(guid string) string
	BuildToken() string
	SignerLinks(guid string) string
	BuilderURL(token string) string
	EmbeddedSigningURL(token, redirectLocation string) string
}

type parser interface {
	GUID(guid string) error
}

type extractor interface {
	String(payload interface{}, path string) (string, error)
	Collection(payload interface{}, path, item string) ([]interface{}, error)
	Decode(input interface{}, out interface{}) error
}

type service struct {
	transport transport
	path      path
	parser    parser
	extractor extractor

	logger log.Logger
}

// NewService returns templates service issuing requests through transport.
func NewService(
	transport transport,
	path path,
	parser parser,
	extractor extractor,

	logger log.Logger,
) Service {
	return &service{
		transport: transport,
		path:      path,
		parser:    parser,
		extractor: extractor,
		logger:    logger,
	}
}

// List templates. List tags are sent as a "name,name:value" query string.
func (s *service) List(ctx context.Context, opts ListOptions) (res Response, err error) {
	logger := log.WithPrefix(s.logger, "method", "List")

	params := Params{}
	if opts.Search != "" {
		params["search"] = opts.Search
	}
	if opts.Page > 0 {
		params["page"] = opts.Page
	}
	if !opts.Tags.IsZero() {
		params["tags"] = normalizer.TagsQuery(opts.Tags)
	}

	if res, err = s.transport.Get(ctx, s.path.Templates(), params); err != nil {
		level.Error(logger).Log("msg", "get templates", "err", err)
	}
	return
}

// Details of template by guid.
func (s *service) Details(ctx context.Context, guid string) (res Response, err error) {
	logger := log.WithPrefix(s.logger, "method", "Details", "guid", guid)

	if err = s.parser.GUID(guid); err != nil {
		level.Error(logger).Log("msg", "guid", "err", err)
		return
	}
	if res, err = s.transport.Get(ctx, s.path.Template(guid), Params{}); err != nil {
		level.Error(logger).Log("msg", "get template", "err", err)
	}
	return
}

// Prepackage template by guid.
func (s *service) Prepackage(ctx context.Context, guid string) (res Response, err error) {
	logger := log.WithPrefix(s.logger, "method", "Prepackage", "guid", guid)

	if err = s.parser.GUID(guid); err != nil {
		level.Error(logger).Log("msg", "guid", "err", err)
		return
	}
	if res, err = s.transport.Post(ctx, s.path.Prepackage(guid), Params{}); err != nil {
		level.Error(logger).Log("msg", "prepackage", "err", err)
	}
	return
}

// Prefill template.
func (s *service) Prefill(ctx context.Context, guid, subject string, roles []normalizer.Role, opts SendOptions) (Response, error) {
	return s.post(ctx, "Prefill", requestTemplate{
		GUID:        guid,
		Action:      actionPrefill,
		Subject:     subject,
		Roles:       roles,
		SendOptions: opts,
	})
}

// Send template.
func (s *service) Send(ctx context.Context, guid, subject string, roles []normalizer.Role, opts SendOptions) (Response, error) {
	return s.post(ctx, "Send", requestTemplate{
		GUID:        guid,
		Action:      actionSend,
		Subject:     subject,
		Roles:       roles,
		SendOptions: opts,
	})
}

func (s *service) post(ctx context.Context, method string, t requestTemplate) (res Response, err error) {
	logger := log.WithPrefix(s.logger, "method", method, "guid", t.GUID)

	if err = s.parser.GUID(t.GUID); err != nil {
		level.Error(logger).Log("msg", "guid", "err", err)
		return
	}
	if res, err = s.sendStep(ctx, t); err != nil {
		level.Error(logger).Log("msg", "post template", "err", err)
	}
	return
}

// PrepackageAndSend prepackages template and sends the copy with subject and roles.
func (s *service) PrepackageAndSend(ctx context.Context, guid, subject string, roles []normalizer.Role) (res Response, err error) {
	logger := log.WithPrefix(s.logger, "method", "PrepackageAndSend", "guid", guid)

	if err = s.parser.GUID(guid); err != nil {
		level.Error(logger).Log("msg", "guid", "err", err)
		return
	}
	if _, err = normalizer.NormalizeRoles(roles); err != nil {
		level.Error(logger).Log("msg", "roles", "err", err)
		return
	}

	_, p, err := s.prepackageStep(ctx, guid)
	if err != nil {
		level.Error(logger).Log("msg", "prepackage", "err", err)
		return
	}
	level.Debug(logger).Log("msg", "prepackaged", "copy", p.GUID)

	res, err = s.sendStep(ctx, requestTemplate{
		GUID:    p.GUID,
		Action:  actionSend,
		Subject: subject,
		Roles:   roles,
	})
	if err != nil {
		level.Error(logger).Log("msg", "send", "copy", p.GUID, "err", err)
	}
	return
}

// GenerateBuildURL requests builder token and returns builder URL.
func (s *service) GenerateBuildURL(ctx context.Context, opts BuildOptions) (url string, err error) {
	logger := log.WithPrefix(s.logger, "method", "GenerateBuildURL")

	t := Params{}
	if names := normalizer.NormalizeNameList(opts.AcceptableMergeFieldNames); names != nil {
		t["acceptable_merge_field_names"] = names
	}
	if names := normalizer.NormalizeNameList(opts.AcceptableRoleNames); names != nil {
		t["acceptable_role_names"] = names
	}
	if tags := normalizer.NormalizeTags(opts.Tags); tags != nil {
		t["tags"] = tags
	}
	if opts.CallbackLocation != "" {
		t["callback_location"] = opts.CallbackLocation
	}
	if opts.RedirectLocation != "" {
		t["redirect_location"] = opts.RedirectLocation
	}

	res, err := s.transport.Post(ctx, s.path.BuildToken(), Params{"template": t})
	if err != nil {
		level.Error(logger).Log("msg", "build token", "err", err)
		return
	}
	token, err := s.extractor.String(res, "token:redirect_token")
	if err != nil {
		err = missing(err)
		level.Error(logger).Log("msg", "redirect token", "err", err)
		return
	}
	url = s.path.BuilderURL(token)
	return
}

// SendAsEmbeddedSigners prepackages template, sends it to roles with placeholder email
// and returns signing link of every role in roles order.
func (s *service) SendAsEmbeddedSigners(ctx context.Context, guid string, roles []normalizer.Role, opts EmbeddedOptions) (links []SignerLink, err error) {
	logger := log.WithPrefix(s.logger, "method", "SendAsEmbeddedSigners", "guid", guid)

	if err = s.parser.GUID(guid); err != nil {
		level.Error(logger).Log("msg", "guid", "err", err)
		return
	}
	signers := embeddedSigners(roles)
	if _, err = templateParams(requestTemplate{Roles: signers, SendOptions: opts.SendOptions}); err != nil {
		level.Error(logger).Log("msg", "template", "err", err)
		return
	}

	prepackageRes, p, err := s.prepackageStep(ctx, guid)
	if err != nil {
		level.Error(logger).Log("msg", "prepackage", "err", err)
		return
	}
	roleIDs, err := s.documentRoleIDs(prepackageRes, roles)
	if err != nil {
		level.Error(logger).Log("msg", "document roles", "copy", p.GUID, "err", err)
		return
	}

	sendRes, err := s.sendStep(ctx, requestTemplate{
		GUID:        p.GUID,
		Action:      actionSend,
		Subject:     p.Subject,
		Roles:       signers,
		SendOptions: opts.SendOptions,
	})
	if err != nil {
		level.Error(logger).Log("msg", "send", "copy", p.GUID, "err", err)
		return
	}
	documentGUID, err := s.documentGUID(sendRes)
	if err != nil {
		level.Error(logger).Log("msg", "document guid", "err", err)
		return
	}
	level.Debug(logger).Log("msg", "sent", "document", documentGUID)

	signerLinks, err := s.signerLinksStep(ctx, documentGUID, len(roles))
	if err != nil {
		level.Error(logger).Log("msg", "signer links", "document", documentGUID, "err", err)
		return
	}

	tokens := make(map[string]string, len(signerLinks))
	for _, l := range signerLinks {
		tokens[l.Role] = l.SignerToken
	}

	links = make([]SignerLink, 0, len(roles))
	for i, role := range roles {
		token, isExist := tokens[roleIDs[i]]
		if !isExist || token == "" {
			err = missing(fmt.Errorf("no signer link for role %s (%s)", role.Name, roleIDs[i]))
			level.Error(logger).Log("msg", "match signer link", "document", documentGUID, "err", err)
			return nil, err
		}
		links = append(links, SignerLink{
			Name: role.DisplayName(),
			URL:  s.path.EmbeddedSigningURL(token, opts.RedirectLocation),
		})
	}
	return
}

// embeddedSigners returns copies of roles with email replaced by EmbeddedSignerEmail.
func embeddedSigners(roles []normalizer.Role) []normalizer.Role {
	signers := make([]normalizer.Role, 0, len(roles))
	for _, role := range roles {
		fields := make(map[string]interface{}, len(role.Fields)+1)
		for k, v := range role.Fields {
			fields[k] = v
		}
		fields["email"] = EmbeddedSignerEmail
		signers = append(signers, normalizer.NewRole(role.Name, fields))
	}
	return signers
}
