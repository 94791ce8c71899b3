// Package listener runs a local webhook endpoint for development: it
// authenticates and decodes inbound WaSender notifications, streams them to
// WebSocket subscribers and keeps the latest QR code viewable as SVG.
package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/AroraShreshth/wasender/pkg/api"
	"github.com/AroraShreshth/wasender/pkg/dispatch"
	"github.com/AroraShreshth/wasender/pkg/events"
	"github.com/AroraShreshth/wasender/pkg/logger"
	"github.com/AroraShreshth/wasender/pkg/webhook"
)

// Config holds the listener's bind address and webhook path.
type Config struct {
	Host string
	Port int
	Path string
}

type Server struct {
	config     Config
	handler    *webhook.Handler
	dispatcher *dispatch.Dispatcher

	hub        *Hub
	httpServer *http.Server
	startTime  time.Time

	qrMu   sync.RWMutex
	lastQR string
}

// NewServer wires the webhook entry point into a local HTTP server. Decoded
// events are routed through dispatcher, which may be nil when the caller
// only wants the WebSocket stream. The handler blocks the inbound
// connection until dispatch returns.
func NewServer(cfg Config, handler *webhook.Handler, dispatcher *dispatch.Dispatcher) *Server {
	return &Server{
		config:     cfg,
		handler:    handler,
		dispatcher: dispatcher,
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.startTime = time.Now()

	s.hub = NewHub()
	go s.hub.Run(ctx)

	path := s.config.Path
	if path == "" {
		path = "/webhook"
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, s.handleWebhook)
	mux.HandleFunc("/ws", s.hub.handleWebSocket)
	mux.HandleFunc("/qr.svg", s.handleQRCode)
	mux.HandleFunc("/healthz", s.handleHealth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go func() {
		logger.InfoCF("listener", "Webhook listener started", map[string]interface{}{
			"address": addr,
			"path":    path,
		})
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.ErrorCF("listener", "Webhook listener error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	return nil
}

func (s *Server) Stop() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
		logger.InfoC("listener", "Webhook listener stopped")
	}
}

// handleWebhook runs the webhook entry point and acknowledges with the
// status its error classification maps to.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	evt, err := s.handler.HandleRequest(r)
	if err != nil {
		status := webhookErrorStatus(err)
		logger.WarnCF("listener", "Webhook rejected", map[string]interface{}{
			"status": status,
			"error":  err.Error(),
		})
		http.Error(w, `{"error":"`+err.Error()+`"}`, status)
		return
	}

	s.dispatch(evt)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"received"}`))
}

func (s *Server) dispatch(evt *events.Event) {
	fields := map[string]interface{}{
		"type": evt.Type.String(),
	}
	if evt.SessionID != "" {
		fields["session_id"] = evt.SessionID
	}
	if !evt.Type.Known() {
		logger.WarnCF("listener", "Unrecognized event type, ignoring", fields)
	} else {
		logger.InfoCF("listener", "Event received", fields)
	}

	if qr, ok := evt.Data.(*events.QRCodeUpdatedData); ok {
		s.qrMu.Lock()
		s.lastQR = qr.QR
		s.qrMu.Unlock()
	}

	if payload, err := json.Marshal(evt); err == nil {
		s.hub.Broadcast(payload)
	}

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(evt)
	}
}

// handleQRCode renders the most recent qrcode.updated payload as SVG.
func (s *Server) handleQRCode(w http.ResponseWriter, r *http.Request) {
	s.qrMu.RLock()
	data := s.lastQR
	s.qrMu.RUnlock()

	if data == "" {
		http.Error(w, `{"error":"no QR code received yet"}`, http.StatusNotFound)
		return
	}

	svg, err := generateQRSVG(data, 320)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

// webhookErrorStatus maps entry-point failures onto response codes: 401 for
// authentication, 400 for malformed input, 500 for configuration problems.
func webhookErrorStatus(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}
