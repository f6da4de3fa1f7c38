package internal

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"paybox/entity"
)

type stubRequests struct {
	lastOrder *entity.OrderRequest
	fail      bool
	formFail  bool
}

func (s *stubRequests) build(order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	s.lastOrder = order
	if s.fail {
		return nil, fmt.Errorf("build failed")
	}
	p := entity.NewParameters()
	p.Set(FieldReference, order.Reference)
	return &entity.BuiltRequest{
		Url:        "https://tpeweb.paybox.com" + paymentEndpoint,
		Reference:  order.Reference,
		Parameters: p,
	}, nil
}

func (s *stubRequests) Authorize(_ context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	return s.build(order)
}

func (s *stubRequests) AuthorizeWithCapture(_ context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	return s.build(order)
}

func (s *stubRequests) AuthorizeInstallments(_ context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	return s.build(order)
}

func (s *stubRequests) Subscribe(_ context.Context, order *entity.OrderRequest) (*entity.BuiltRequest, error) {
	return s.build(order)
}

func (s *stubRequests) RedirectForm(request *entity.BuiltRequest) (string, error) {
	if s.formFail {
		return "", fmt.Errorf("render failed")
	}
	return NewRenderer().RedirectForm(request)
}

func newTestServer(stub *stubRequests) *Server {
	server := NewServer(testConfig())
	server.SetLogger(NewLogger("server", false, nil))
	server.SetPaymentsService(stub)
	return server
}

func TestServerAuthorization(t *testing.T) {
	stub := &stubRequests{}
	server := newTestServer(stub)

	body := `{"reference":"order300","amount":1500,"customer":{"email":"test@mail.com"}}`
	r := httptest.NewRequest("POST", requestAuthorizationPath, strings.NewReader(body))
	w := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(w, r)

	require.Equal(t, 200, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), `value="order300"`)
	require.Equal(t, "order300", stub.lastOrder.Reference)
	require.Equal(t, float64(1500), stub.lastOrder.Amount)
}

func TestServerAllRoutes(t *testing.T) {
	stub := &stubRequests{}
	server := newTestServer(stub)

	paths := []string{
		requestAuthorizationPath,
		requestCapturePath,
		requestInstallmentsPath,
		requestSubscriptionPath,
	}
	for _, path := range paths {
		r := httptest.NewRequest("POST", path, strings.NewReader(`{"reference":"r1"}`))
		w := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(w, r)
		require.Equal(t, 200, w.Code, path)
	}
}

func TestServerBadJson(t *testing.T) {
	server := newTestServer(&stubRequests{})

	r := httptest.NewRequest("POST", requestAuthorizationPath, strings.NewReader("{broken"))
	w := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(w, r)
	require.Equal(t, 400, w.Code)
}

func TestServerBuildFailure(t *testing.T) {
	server := newTestServer(&stubRequests{fail: true})

	r := httptest.NewRequest("POST", requestAuthorizationPath, strings.NewReader("{}"))
	w := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(w, r)
	require.Equal(t, 400, w.Code)
}

func TestServerRenderFailure(t *testing.T) {
	server := newTestServer(&stubRequests{formFail: true})

	r := httptest.NewRequest("POST", requestAuthorizationPath, strings.NewReader("{}"))
	w := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(w, r)
	require.Equal(t, 500, w.Code)
}
