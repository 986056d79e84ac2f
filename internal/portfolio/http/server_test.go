package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	grpchealth "connectrpc.com/grpchealth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfuertes.net/portfolio/internal/portfolio"
	"mfuertes.net/portfolio/internal/portfolio/portfoliotest"
	portfoliov1 "mfuertes.net/portfolio/pkgs/proto/portfolio/v1"
	"mfuertes.net/portfolio/pkgs/proto/portfolio/v1/portfoliov1connect"
)

func newTestServer(t *testing.T, p *portfolio.Portfolio) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(p).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	res, err := stdhttp.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(res.Body).Decode(v))
	return res.StatusCode
}

func TestInfo(t *testing.T) {
	srv := newTestServer(t, portfoliotest.New(t))
	var body info
	assert.Equal(t, stdhttp.StatusOK, getJSON(t, srv.URL+"/", &body))
	assert.Equal(t, portfoliov1connect.PortfolioServiceName, body.Service)
	assert.Equal(t, "/portfolio.v1.PortfolioService/", body.RPCEndpoint)
	assert.Len(t, body.Procedures, 6)
}

func TestHealth(t *testing.T) {
	var body map[string]string
	srv := newTestServer(t, portfoliotest.New(t))
	assert.Equal(t, stdhttp.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, "healthy", body["status"])

	empty := newTestServer(t, portfolio.New(nil, nil))
	assert.Equal(t, stdhttp.StatusServiceUnavailable, getJSON(t, empty.URL+"/health", &body))
	assert.Equal(t, "unhealthy", body["status"])
}

func TestUnknownPathIsNotFound(t *testing.T) {
	srv := newTestServer(t, portfoliotest.New(t))
	res, err := stdhttp.Get(srv.URL + "/nope")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, stdhttp.StatusNotFound, res.StatusCode)
}

func TestServiceIsMounted(t *testing.T) {
	srv := newTestServer(t, portfoliotest.New(t))
	client := portfoliov1connect.NewPortfolioServiceClient(srv.Client(), srv.URL)
	res, err := client.GetProjects(context.Background(),
		connect.NewRequest(&portfoliov1.GetProjectsRequest{Query: "cli"}))
	require.NoError(t, err)
	assert.Contains(t, res.Msg.GetText(), "## ha-tools")
}

func TestHealthChecker(t *testing.T) {
	ctx := context.Background()
	c := HealthChecker{p: portfoliotest.New(t)}

	res, err := c.Check(ctx, &grpchealth.CheckRequest{Service: portfoliov1connect.PortfolioServiceName})
	require.NoError(t, err)
	assert.Equal(t, grpchealth.StatusServing, res.Status)

	_, err = c.Check(ctx, &grpchealth.CheckRequest{Service: "other.Service"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	res, err = HealthChecker{p: portfolio.New(nil, nil)}.Check(ctx, &grpchealth.CheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpchealth.StatusNotServing, res.Status)
}
