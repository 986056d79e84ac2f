package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"time"

	"connectrpc.com/connect"
	grpchealth "connectrpc.com/grpchealth"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"mfuertes.net/portfolio/internal/config"
	"mfuertes.net/portfolio/internal/portfolio"
	"mfuertes.net/portfolio/internal/portfolio/grpc"
	"mfuertes.net/portfolio/pkgs/proto/portfolio/v1/portfoliov1connect"
)

// Version is reported by the info endpoint.
const Version = "1.0.0"

// Server holds handlers and dependencies for the portfolio HTTP server.
type Server struct {
	p   *portfolio.Portfolio
	mux *stdhttp.ServeMux
	srv *stdhttp.Server
}

// NewServer mounts the portfolio service, the gRPC health handler and the
// JSON info and health endpoints.
func NewServer(p *portfolio.Portfolio) *Server {
	mux := stdhttp.NewServeMux()
	path, handler := portfoliov1connect.NewPortfolioServiceHandler(grpc.NewPortfolioService(p))
	mux.Handle(path, handler)
	hpath, hhandler := grpchealth.NewHandler(HealthChecker{p: p})
	mux.Handle(hpath, hhandler)
	mux.HandleFunc("GET /{$}", handleInfo(path))
	mux.HandleFunc("GET /health", handleHealth(p))
	return &Server{p: p, mux: mux}
}

// NewServerForConfig loads portfolio data from cfg and returns a configured Server.
func NewServerForConfig(cfg *config.Config) (*Server, error) {
	p, err := portfolio.NewForConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewServer(p), nil
}

// Handler returns the instrumented root handler.
func (s *Server) Handler() stdhttp.Handler {
	return otelhttp.NewHandler(s.mux, "http.server")
}

// ListenAndServe starts the HTTP server on addr. It returns nil after Close.
func (s *Server) ListenAndServe(addr string) error {
	s.srv = &stdhttp.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("server starting", "addr", addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

type info struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Service     string   `json:"service"`
	RPCEndpoint string   `json:"rpc_endpoint"`
	Procedures  []string `json:"procedures"`
}

func handleInfo(path string) stdhttp.HandlerFunc {
	body := info{
		Name:        "Portfolio Query Server",
		Version:     Version,
		Service:     portfoliov1connect.PortfolioServiceName,
		RPCEndpoint: path,
		Procedures: []string{
			portfoliov1connect.PortfolioServiceGetProfileProcedure,
			portfoliov1connect.PortfolioServiceGetTechStackProcedure,
			portfoliov1connect.PortfolioServiceGetExperienceProcedure,
			portfoliov1connect.PortfolioServiceGetProjectsProcedure,
			portfoliov1connect.PortfolioServiceGetEducationProcedure,
			portfoliov1connect.PortfolioServiceGetContributionsProcedure,
		},
	}
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		writeJSON(r.Context(), w, stdhttp.StatusOK, body)
	}
}

func handleHealth(p *portfolio.Portfolio) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		if err := p.Ping(r.Context()); err != nil {
			writeJSON(r.Context(), w, stdhttp.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		writeJSON(r.Context(), w, stdhttp.StatusOK, map[string]string{"status": "healthy"})
	}
}

func writeJSON(ctx context.Context, w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.WarnContext(ctx, "Failed to write response", "error", err)
	}
}

// HealthChecker reports health based on whether portfolio data is loaded.
type HealthChecker struct{ p *portfolio.Portfolio }

// Check implements grpchealth.Checker. It returns StatusServing when the
// profile data is available.
func (c HealthChecker) Check(
	ctx context.Context,
	req *grpchealth.CheckRequest,
) (*grpchealth.CheckResponse, error) {
	tracer := otel.Tracer("portfolio/http")
	ctx, span := tracer.Start(ctx, "HealthChecker.Check")
	defer span.End()
	switch req.Service {
	case "", portfoliov1connect.PortfolioServiceName:
		if err := c.p.Ping(ctx); err != nil {
			return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
		}
		return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
	default:
		return nil, connect.NewError(
			connect.CodeNotFound,
			fmt.Errorf("unknown service: %s", req.Service),
		)
	}
}
