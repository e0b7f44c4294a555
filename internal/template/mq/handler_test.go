package mq

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/kit/log"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/geoirb/go-esign/internal/normalizer"
	"github.com/geoirb/go-esign/internal/template"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) List(ctx context.Context, opts template.ListOptions) (template.Response, error) {
	args := m.Called(opts)
	res, _ := args.Get(0).(map[string]interface{})
	return res, args.Error(1)
}

func (m *serviceMock) Details(ctx context.Context, guid string) (template.Response, error) {
	args := m.Called(guid)
	res, _ := args.Get(0).(map[string]interface{})
	return res, args.Error(1)
}

func (m *serviceMock) Prepackage(ctx context.Context, guid string) (template.Response, error) {
	args := m.Called(guid)
	res, _ := args.Get(0).(map[string]interface{})
	return res, args.Error(1)
}

func (m *serviceMock) Prefill(ctx context.Context, guid, subject string, roles []normalizer.Role, opts template.SendOptions) (template.Response, error) {
	args := m.Called(guid, subject, roles, opts)
	res, _ := args.Get(0).(map[string]interface{})
	return res, args.Error(1)
}

func (m *serviceMock) Send(ctx context.Context, guid, subject string, roles []normalizer.Role, opts template.SendOptions) (template.Response, error) {
	args := m.Called(guid, subject, roles, opts)
	res, _ := args.Get(0).(map[string]interface{})
	return res, args.Error(1)
}

func (m *serviceMock) PrepackageAndSend(ctx context.Context, guid, subject string, roles []normalizer.Role) (template.Response, error) {
	args := m.Called(guid, subject, roles)
	res, _ := args.Get(0).(map[string]interface{})
	return res, args.Error(1)
}

func (m *serviceMock) GenerateBuildURL(ctx context.Context, opts template.BuildOptions) (string, error) {
	args := m.Called(opts)
	return args.String(0), args.Error(1)
}

func (m *serviceMock) SendAsEmbeddedSigners(ctx context.Context, guid string, roles []normalizer.Role, opts template.EmbeddedOptions) ([]template.SignerLink, error) {
	args := m.Called(guid, roles, opts)
	links, _ := args.Get(0).([]template.SignerLink)
	return links, args.Error(1)
}

type published struct {
	messages [][]byte
}

func (p *published) publish(message []byte) error {
	p.messages = append(p.messages, message)
	return nil
}

func (p *published) last(t *testing.T) map[string]interface{} {
	require.NotEmpty(t, p.messages)
	var actual map[string]interface{}
	require.NoError(t, json.Unmarshal(p.messages[len(p.messages)-1], &actual))
	return actual
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded signers", func(t *testing.T) {
		svc := &serviceMock{}
		p := &published{}
		h := NewCommandHandler(svc, newTestTransport(), p.publish, log.NewNopLogger())

		roles := []normalizer.Role{normalizer.NewRole("Leasee", map[string]interface{}{"name": "John Bellingham"})}
		svc.On("SendAsEmbeddedSigners", "TGUID", roles, template.EmbeddedOptions{}).Return([]template.SignerLink{
			{Name: "John Bellingham", URL: "https://rightsignature.com/signatures/embedded?rt=slkfj2"},
		}, nil).Once()

		h(ctx, []byte(`{"uuid": "7", "operation": "send_as_embedded_signers", "guid": "TGUID", "roles": [{"Leasee": {"name": "John Bellingham"}}]}`))

		svc.AssertExpectations(t)
		actual := p.last(t)
		assert.Equal(t, true, actual["is_ok"])
		payload := actual["payload"].(map[string]interface{})
		assert.Equal(t, "7", payload["uuid"])
		assert.Equal(t, []interface{}{
			map[string]interface{}{"name": "John Bellingham", "url": "https://rightsignature.com/signatures/embedded?rt=slkfj2"},
		}, payload["signer_links"])
	})

	t.Run("raw response", func(t *testing.T) {
		svc := &serviceMock{}
		p := &published{}
		h := NewCommandHandler(svc, newTestTransport(), p.publish, log.NewNopLogger())

		svc.On("Details", "MYGUID").Return(map[string]interface{}{"template": map[string]interface{}{"guid": "MYGUID"}}, nil).Once()

		h(ctx, []byte(`{"operation": "details", "guid": "MYGUID"}`))

		payload := p.last(t)["payload"].(map[string]interface{})
		assert.Equal(t, testUUID, payload["uuid"])
		assert.Equal(t, map[string]interface{}{"template": map[string]interface{}{"guid": "MYGUID"}}, payload["result"])
	})

	t.Run("service error", func(t *testing.T) {
		svc := &serviceMock{}
		p := &published{}
		h := NewCommandHandler(svc, newTestTransport(), p.publish, log.NewNopLogger())

		svc.On("GenerateBuildURL", template.BuildOptions{}).Return("", errors.New("status 401")).Once()

		h(ctx, []byte(`{"operation": "generate_build_url"}`))

		actual := p.last(t)
		assert.Equal(t, false, actual["is_ok"])
		assert.Equal(t, "status 401", actual["error"])
	})

	t.Run("invalid message is answered", func(t *testing.T) {
		svc := &serviceMock{}
		p := &published{}
		h := NewCommandHandler(svc, newTestTransport(), p.publish, log.NewNopLogger())

		h(ctx, []byte(`{"uuid": "9", "operation": "prefill"}`))

		actual := p.last(t)
		assert.Equal(t, false, actual["is_ok"])
		assert.Equal(t, "9", actual["payload"].(map[string]interface{})["uuid"])
		svc.AssertNotCalled(t, "Prefill", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
