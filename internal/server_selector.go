package internal

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"paybox/config"
	"paybox/services"
)

const (
	paymentEndpoint = "/cgi/MYchoix_pagepaiement.cgi"
	probeEndpoint   = "/load.html"
	// okMarker is what the gateway's probe page answers when the front is
	// taking traffic.
	okMarker = ">OK<"
)

// ServerSelector picks a reachable gateway front. Every front exposes a
// probe page; the first host answering with the OK marker wins, and the
// primary host is used when none respond.
type ServerSelector struct {
	conf       *config.Config
	logger     services.LogHandler
	httpClient *http.Client
}

func NewServerSelector(conf *config.Config) *ServerSelector {
	return &ServerSelector{
		conf: conf,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (s *ServerSelector) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

// Url returns the payment page URL on the first available front.
func (s *ServerSelector) Url(ctx context.Context) string {
	hosts := s.conf.Paybox.Servers
	if len(hosts) == 0 {
		return ""
	}
	for _, host := range hosts {
		if s.available(ctx, host) {
			return baseUrl(host) + paymentEndpoint
		}
		if s.logger != nil {
			s.logger.Warn("gateway front unavailable: " + host)
		}
	}
	return baseUrl(hosts[0]) + paymentEndpoint
}

func (s *ServerSelector) available(ctx context.Context, host string) bool {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, baseUrl(host)+probeEndpoint, nil)
	if err != nil {
		return false
	}
	response, err := s.httpClient.Do(request)
	if err != nil {
		return false
	}
	defer func() {
		_ = response.Body.Close()
	}()
	if response.StatusCode != http.StatusOK {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(response.Body, 4096))
	if err != nil {
		return false
	}
	return strings.Contains(string(body), okMarker)
}

// baseUrl keeps hosts that already carry a scheme untouched, so probe
// fronts can be stubbed in tests.
func baseUrl(host string) string {
	if strings.Contains(host, "://") {
		return strings.TrimSuffix(host, "/")
	}
	return "https://" + host
}
