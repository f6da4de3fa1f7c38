package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"paybox/config"
	"paybox/entity"
	"paybox/services"
)

const (
	requestAuthorizationPath = "/request/authorization"
	requestCapturePath       = "/request/capture"
	requestInstallmentsPath  = "/request/installments"
	requestSubscriptionPath  = "/request/subscription"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Requests
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(requestAuthorizationPath, s.requestAuthorization)
	router.POST(requestCapturePath, s.requestCapture)
	router.POST(requestInstallmentsPath, s.requestInstallments)
	router.POST(requestSubscriptionPath, s.requestSubscription)
}

func (s *Server) SetPaymentsService(payments services.Requests) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) requestAuthorization(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.handleRequest(w, r, s.payments.Authorize)
}

func (s *Server) requestCapture(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.handleRequest(w, r, s.payments.AuthorizeWithCapture)
}

func (s *Server) requestInstallments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.handleRequest(w, r, s.payments.AuthorizeInstallments)
}

func (s *Server) requestSubscription(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.handleRequest(w, r, s.payments.Subscribe)
}

// handleRequest decodes the order, runs the matching builder and answers
// with the auto-submitting redirect form.
func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request, build func(context.Context, *entity.OrderRequest) (*entity.BuiltRequest, error)) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] read request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var order entity.OrderRequest
	if err = json.Unmarshal(body, &order); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] decode request body", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	built, err := build(ctx, &order)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] build request", reqID), err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	form, err := s.payments.RedirectForm(built)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] render redirect form", reqID), err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(form)); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] write response", reqID), err)
	}
}
