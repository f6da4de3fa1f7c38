package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func probeServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != probeEndpoint {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestServerSelectorPicksAvailableFront(t *testing.T) {
	available := probeServer(t, "<div>>OK<</div>")

	conf := testConfig()
	conf.Paybox.Servers = []string{available.URL}

	selector := NewServerSelector(conf)
	require.Equal(t, available.URL+paymentEndpoint, selector.Url(context.Background()))
}

func TestServerSelectorSkipsStoppedFront(t *testing.T) {
	stopped := probeServer(t, "<div>STOP</div>")
	available := probeServer(t, "<div>>OK<</div>")

	conf := testConfig()
	conf.Paybox.Servers = []string{stopped.URL, available.URL}

	selector := NewServerSelector(conf)
	selector.SetLogger(NewLogger("test", false, nil))
	require.Equal(t, available.URL+paymentEndpoint, selector.Url(context.Background()))
}

func TestServerSelectorFallsBackToPrimary(t *testing.T) {
	stopped := probeServer(t, "maintenance")

	conf := testConfig()
	conf.Paybox.Servers = []string{stopped.URL}

	selector := NewServerSelector(conf)
	selector.SetLogger(NewLogger("test", false, nil))
	require.Equal(t, stopped.URL+paymentEndpoint, selector.Url(context.Background()))
}

func TestServerSelectorNoFronts(t *testing.T) {
	conf := testConfig()
	conf.Paybox.Servers = nil
	selector := NewServerSelector(conf)
	require.Equal(t, "", selector.Url(context.Background()))
}
