package template

import (
	"context"

	"github.com/geoirb/go-esign/internal/normalizer"
)

// Service of templates.
type Service interface {
	// List templates.
	List(ctx context.Context, opts ListOptions) (Response, error)
	// Details of template by guid.
	Details(ctx context.Context, guid string) (Response, error)
	// Prepackage template into a ready-to-send document.
	Prepackage(ctx context.Context, guid string) (Response, error)
	// Prefill template without sending it.
	Prefill(ctx context.Context, guid, subject string, roles []normalizer.Role, opts SendOptions) (Response, error)
	// Send template to roles.
	Send(ctx context.Context, guid, subject string, roles []normalizer.Role, opts SendOptions) (Response, error)
	// PrepackageAndSend prepackages template and sends the prepackaged copy.
	PrepackageAndSend(ctx context.Context, guid, subject string, roles []normalizer.Role) (Response, error)
	// GenerateBuildURL returns URL of the template builder.
	GenerateBuildURL(ctx context.Context, opts BuildOptions) (string, error)
	// SendAsEmbeddedSigners sends template without emails and returns signing links of roles.
	SendAsEmbeddedSigners(ctx context.Context, guid string, roles []normalizer.Role, opts EmbeddedOptions) ([]SignerLink, error)
}
