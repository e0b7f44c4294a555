package template

import (
	"context"
	"fmt"

	"github.com/geoirb/go-esign/internal/normalizer"
)

// Steps of multi-step operations. Each step consumes values extracted from
// the previous response and produces the values the next request needs.

// prepackageStep posts prepackage of template guid.
// Produces: response, guid and subject of the prepackaged copy.
func (s *service) prepackageStep(ctx context.Context, guid string) (res Response, p prepackaged, err error) {
	if res, err = s.transport.Post(ctx, s.path.Prepackage(guid), Params{}); err != nil {
		return
	}
	if p.GUID, err = s.extractor.String(res, "template:guid"); err != nil {
		err = missing(err)
		return
	}
	if err = s.parser.GUID(p.GUID); err != nil {
		err = missing(err)
		return
	}
	if subject, e := s.extractor.String(res, "template:subject"); e == nil {
		p.Subject = subject
	}
	return
}

// documentRoleIDs consumes prepackage response and returns document_role_id of every role by role name.
func (s *service) documentRoleIDs(res Response, roles []normalizer.Role) (ids []string, err error) {
	if len(roles) == 0 {
		return []string{}, nil
	}
	items, err := s.extractor.Collection(res, "template:roles", "role")
	if err != nil {
		err = missing(err)
		return
	}
	var prepackagedRoles []prepackagedRole
	if err = s.extractor.Decode(items, &prepackagedRoles); err != nil {
		err = missing(err)
		return
	}

	ids = make([]string, 0, len(roles))
	for _, role := range roles {
		id := ""
		for _, r := range prepackagedRoles {
			if r.Name == role.Name {
				id = r.DocumentRoleID
				break
			}
		}
		if id == "" {
			err = missing(fmt.Errorf("no document role id for role %s", role.Name))
			return nil, err
		}
		ids = append(ids, id)
	}
	return
}

// sendStep posts template request t.
func (s *service) sendStep(ctx context.Context, t requestTemplate) (Response, error) {
	params, err := templateParams(t)
	if err != nil {
		return nil, err
	}
	return s.transport.Post(ctx, s.path.Templates(), params)
}

// documentGUID consumes send response and returns guid of the sent document.
func (s *service) documentGUID(res Response) (guid string, err error) {
	if guid, err = s.extractor.String(res, "document:guid"); err != nil {
		err = missing(err)
		return
	}
	if err = s.parser.GUID(guid); err != nil {
		err = missing(err)
	}
	return
}

// signerLinksStep gets signer links of document guid.
// Links are required only when expected is positive.
func (s *service) signerLinksStep(ctx context.Context, guid string, expected int) (links []signerLink, err error) {
	res, err := s.transport.Get(ctx, s.path.SignerLinks(guid), Params{})
	if err != nil || expected == 0 {
		return
	}
	items, err := s.extractor.Collection(res, "document:signer_links", "signer_link")
	if err != nil {
		err = missing(err)
		return
	}
	if err = s.extractor.Decode(items, &links); err != nil {
		err = missing(err)
	}
	return
}

// templateParams builds {template: {...}} request params.
// roles are always present, optional fields only when set.
func templateParams(t requestTemplate) (Params, error) {
	roles, err := normalizer.NormalizeRoles(t.Roles)
	if err != nil {
		return nil, err
	}
	template := Params{
		"guid":    t.GUID,
		"action":  t.Action,
		"subject": t.Subject,
		"roles":   roles,
	}

	if tags := normalizer.NormalizeTags(t.Tags); tags != nil {
		template["tags"] = tags
	}
	mergeFields, err := normalizer.NormalizeMergeFields(t.MergeFields)
	if err != nil {
		return nil, err
	}
	if mergeFields != nil {
		template["merge_fields"] = mergeFields
	}
	if t.ExpiresIn > 0 {
		template["expires_in"] = t.ExpiresIn
	}
	if t.Description != "" {
		template["description"] = t.Description
	}
	if t.CallbackURL != "" {
		template["callback_url"] = t.CallbackURL
	}
	return Params{"template": template}, nil
}

func missing(err error) error {
	return fmt.Errorf("%w: %v", ErrMissingExpectedField, err)
}
