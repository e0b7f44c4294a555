package mq

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/geoirb/go-esign/internal/kafka"
	"github.com/geoirb/go-esign/internal/template"
)

type commandServe struct {
	svc       template.Service
	transport *CommandTransport
	publish   kafka.Publish

	logger log.Logger
}

// Handle executes command of message and publishes its result.
func (s *commandServe) Handle(ctx context.Context, message []byte) {
	cmd, err := s.transport.DecodeRequest(message)
	logger := log.WithPrefix(s.logger, "uuid", cmd.UUID, "operation", cmd.Operation)

	res := Result{
		UUID:       cmd.UUID,
		Operation:  cmd.Operation,
		QRCodeSize: cmd.QRCodeSize,
	}
	if err != nil {
		level.Error(logger).Log("msg", "decode request", "err", err)
	} else if err = s.execute(ctx, cmd, &res); err != nil {
		level.Error(logger).Log("msg", "execute", "err", err)
	}

	if err = s.publish(s.transport.EncodeResponse(res, err)); err != nil {
		level.Error(logger).Log("msg", "publish", "err", err)
	}
}

func (s *commandServe) execute(ctx context.Context, cmd Command, res *Result) (err error) {
	switch cmd.Operation {
	case OperationList:
		res.Response, err = s.svc.List(ctx, cmd.List)
	case OperationDetails:
		res.Response, err = s.svc.Details(ctx, cmd.GUID)
	case OperationPrepackage:
		res.Response, err = s.svc.Prepackage(ctx, cmd.GUID)
	case OperationPrefill:
		res.Response, err = s.svc.Prefill(ctx, cmd.GUID, cmd.Subject, cmd.Roles, cmd.Send)
	case OperationSend:
		res.Response, err = s.svc.Send(ctx, cmd.GUID, cmd.Subject, cmd.Roles, cmd.Send)
	case OperationPrepackageAndSend:
		res.Response, err = s.svc.PrepackageAndSend(ctx, cmd.GUID, cmd.Subject, cmd.Roles)
	case OperationGenerateBuildURL:
		res.URL, err = s.svc.GenerateBuildURL(ctx, cmd.Build)
	case OperationSendAsEmbeddedSigners:
		res.SignerLinks, err = s.svc.SendAsEmbeddedSigners(ctx, cmd.GUID, cmd.Roles, cmd.Embedded)
	default:
		err = fmt.Errorf("unknown operation %q", cmd.Operation)
	}
	return
}

// NewCommandHandler returns handler of templates service commands.
func NewCommandHandler(
	svc template.Service,
	transport *CommandTransport,
	publish kafka.Publish,
	logger log.Logger,
) kafka.Handler {
	s := &commandServe{
		svc:       svc,
		transport: transport,
		publish:   publish,
		logger:    log.WithPrefix(logger, "component", "mq"),
	}

	return s.Handle
}
