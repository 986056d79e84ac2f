package grpc

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"mfuertes.net/portfolio/internal/portfolio"
	"mfuertes.net/portfolio/internal/profile"
	portfoliov1 "mfuertes.net/portfolio/pkgs/proto/portfolio/v1"
	"mfuertes.net/portfolio/pkgs/proto/portfolio/v1/portfoliov1connect"
)

var _ portfoliov1connect.PortfolioServiceHandler = (*PortfolioService)(nil)

var errNoProfile = errors.New("profile data not loaded")

// PortfolioService implements the portfolio query RPC service.
type PortfolioService struct {
	p *portfolio.Portfolio
}

// NewPortfolioService constructs a PortfolioService over loaded portfolio data.
func NewPortfolioService(p *portfolio.Portfolio) *PortfolioService {
	return &PortfolioService{p: p}
}

func (s *PortfolioService) profile(ctx context.Context) (*profile.Data, error) {
	if err := s.p.Ping(ctx); err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errNoProfile)
	}
	return s.p.Profile(), nil
}

func text(t string) *connect.Response[portfoliov1.TextResponse] {
	return connect.NewResponse(&portfoliov1.TextResponse{Text: t})
}

// GetProfile returns the bio and contact block.
func (s *PortfolioService) GetProfile(
	ctx context.Context,
	_ *connect.Request[portfoliov1.GetProfileRequest],
) (
	*connect.Response[portfoliov1.TextResponse],
	error,
) {
	tracer := otel.Tracer("portfolio/grpc")
	ctx, span := tracer.Start(ctx, "PortfolioService.GetProfile")
	defer span.End()
	d, err := s.profile(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return text(d.ProfileText()), nil
}

// GetTechStack returns the skills block.
func (s *PortfolioService) GetTechStack(
	ctx context.Context,
	_ *connect.Request[portfoliov1.GetTechStackRequest],
) (
	*connect.Response[portfoliov1.TextResponse],
	error,
) {
	tracer := otel.Tracer("portfolio/grpc")
	ctx, span := tracer.Start(ctx, "PortfolioService.GetTechStack")
	defer span.End()
	d, err := s.profile(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return text(d.TechStackText()), nil
}

// GetExperience returns the experiences, optionally filtered by company.
func (s *PortfolioService) GetExperience(
	ctx context.Context,
	req *connect.Request[portfoliov1.GetExperienceRequest],
) (
	*connect.Response[portfoliov1.TextResponse],
	error,
) {
	tracer := otel.Tracer("portfolio/grpc")
	ctx, span := tracer.Start(ctx, "PortfolioService.GetExperience")
	span.SetAttributes(attribute.String("company", req.Msg.GetCompany()))
	defer span.End()
	d, err := s.profile(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return text(d.ExperienceText(req.Msg.GetCompany())), nil
}

// GetProjects returns the featured projects, optionally filtered by query.
func (s *PortfolioService) GetProjects(
	ctx context.Context,
	req *connect.Request[portfoliov1.GetProjectsRequest],
) (
	*connect.Response[portfoliov1.TextResponse],
	error,
) {
	tracer := otel.Tracer("portfolio/grpc")
	ctx, span := tracer.Start(ctx, "PortfolioService.GetProjects")
	span.SetAttributes(attribute.String("query", req.Msg.GetQuery()))
	defer span.End()
	d, err := s.profile(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	slog.DebugContext(ctx, "get projects request", "query", req.Msg.GetQuery())
	return text(d.ProjectsText(req.Msg.GetQuery())), nil
}

// GetEducation returns the education block.
func (s *PortfolioService) GetEducation(
	ctx context.Context,
	_ *connect.Request[portfoliov1.GetEducationRequest],
) (
	*connect.Response[portfoliov1.TextResponse],
	error,
) {
	tracer := otel.Tracer("portfolio/grpc")
	ctx, span := tracer.Start(ctx, "PortfolioService.GetEducation")
	defer span.End()
	d, err := s.profile(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return text(d.EducationText()), nil
}

// GetContributions returns the loaded pull-request contributions,
// optionally filtered by query.
func (s *PortfolioService) GetContributions(
	ctx context.Context,
	req *connect.Request[portfoliov1.GetContributionsRequest],
) (
	*connect.Response[portfoliov1.TextResponse],
	error,
) {
	tracer := otel.Tracer("portfolio/grpc")
	_, span := tracer.Start(ctx, "PortfolioService.GetContributions")
	span.SetAttributes(attribute.String("query", req.Msg.GetQuery()))
	defer span.End()
	records := s.p.Contributions()
	span.SetAttributes(attribute.Int("contributions_len", len(records)))
	return text(profile.ContributionsText(records, req.Msg.GetQuery())), nil
}
