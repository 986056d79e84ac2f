package grpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfuertes.net/portfolio/internal/portfolio"
	"mfuertes.net/portfolio/internal/portfolio/portfoliotest"
	"mfuertes.net/portfolio/internal/profile"
	portfoliov1 "mfuertes.net/portfolio/pkgs/proto/portfolio/v1"
	"mfuertes.net/portfolio/pkgs/proto/portfolio/v1/portfoliov1connect"
)

func newClient(t *testing.T, p *portfolio.Portfolio, opts ...connect.ClientOption) portfoliov1connect.PortfolioServiceClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(portfoliov1connect.NewPortfolioServiceHandler(NewPortfolioService(p)))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return portfoliov1connect.NewPortfolioServiceClient(srv.Client(), srv.URL, opts...)
}

func TestGetProjects(t *testing.T) {
	client := newClient(t, portfoliotest.New(t))
	ctx := context.Background()

	res, err := client.GetProjects(ctx, connect.NewRequest(&portfoliov1.GetProjectsRequest{Query: "cli"}))
	require.NoError(t, err)
	assert.Equal(t, "# Featured Projects\n\n"+
		"## ha-tools\n"+
		"Home Assistant CLI tool\n\n"+
		"- URL: https://github.com/hkfuertes/ha-tools\n\n", res.Msg.GetText())

	res, err = client.GetProjects(ctx, connect.NewRequest(&portfoliov1.GetProjectsRequest{Query: "nothing-matches"}))
	require.NoError(t, err)
	assert.Equal(t, profile.NoProjects, res.Msg.GetText())

	res, err = client.GetProjects(ctx, connect.NewRequest(&portfoliov1.GetProjectsRequest{}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "## site\nPersonal website\n")
}

func TestGetExperience(t *testing.T) {
	client := newClient(t, portfoliotest.New(t))
	res, err := client.GetExperience(context.Background(),
		connect.NewRequest(&portfoliov1.GetExperienceRequest{Company: "ACME"}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "## Acme Corp - Engineer")

	res, err = client.GetExperience(context.Background(),
		connect.NewRequest(&portfoliov1.GetExperienceRequest{Company: "globex"}))
	require.NoError(t, err)
	assert.Equal(t, profile.NoExperience, res.Msg.GetText())
}

func TestStaticBlocks(t *testing.T) {
	client := newClient(t, portfoliotest.New(t), connect.WithGRPCWeb())
	ctx := context.Background()

	res, err := client.GetProfile(ctx, connect.NewRequest(&portfoliov1.GetProfileRequest{}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "# Miguel Fuertes\n**Software Engineer**")

	res, err = client.GetTechStack(ctx, connect.NewRequest(&portfoliov1.GetTechStackRequest{}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "## Cloud & Infrastructure\n- Kubernetes\n")

	res, err = client.GetEducation(ctx, connect.NewRequest(&portfoliov1.GetEducationRequest{}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "## BSc Computer Science")
}

func TestGetContributions(t *testing.T) {
	client := newClient(t, portfoliotest.New(t))
	ctx := context.Background()

	res, err := client.GetContributions(ctx, connect.NewRequest(&portfoliov1.GetContributionsRequest{Query: "owner/repo"}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "**owner/repo#42** | merged")

	res, err = client.GetContributions(ctx, connect.NewRequest(&portfoliov1.GetContributionsRequest{Query: "zzz"}))
	require.NoError(t, err)
	assert.Equal(t, profile.NoContributions, res.Msg.GetText())
}

func TestMissingProfile(t *testing.T) {
	client := newClient(t, portfolio.New(nil, nil))
	_, err := client.GetProfile(context.Background(), connect.NewRequest(&portfoliov1.GetProfileRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	res, err := client.GetContributions(context.Background(), connect.NewRequest(&portfoliov1.GetContributionsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, profile.NoContributions, res.Msg.GetText())
}

func TestProtoJSONCodec(t *testing.T) {
	client := newClient(t, portfoliotest.New(t), connect.WithProtoJSON())
	res, err := client.GetExperience(context.Background(),
		connect.NewRequest(&portfoliov1.GetExperienceRequest{Company: "acme"}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "## Acme Corp - Engineer")
}

func TestServiceDescriptor(t *testing.T) {
	svc := portfoliov1.File_portfolio_v1_portfolio_proto.Services().ByName("PortfolioService")
	require.NotNil(t, svc)
	assert.Equal(t, portfoliov1connect.PortfolioServiceName, string(svc.FullName()))
	methods := svc.Methods()
	require.Equal(t, 6, methods.Len())
	for i := 0; i < methods.Len(); i++ {
		assert.Equal(t, "portfolio.v1.TextResponse", string(methods.Get(i).Output().FullName()))
	}
}
