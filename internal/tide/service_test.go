package tide

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiaspe/litoral/pkg/http/client"
)

func TestFetchTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		getFunc    func(ctx context.Context, path string) (*client.Response, error)
		wantStatus FetchStatus
	}{
		{
			name: "upstream ok",
			getFunc: func(_ context.Context, path string) (*client.Response, error) {
				assert.Contains(t, path, "port=Tamandar%C3%A9")
				assert.Contains(t, path, "date=2024-12-15")
				return &client.Response{StatusCode: http.StatusOK, Body: []byte(`{"tides":[]}`)}, nil
			},
			wantStatus: StatusOK,
		},
		{
			name: "upstream 500",
			getFunc: func(_ context.Context, _ string) (*client.Response, error) {
				return &client.Response{StatusCode: http.StatusInternalServerError}, nil
			},
			wantStatus: StatusUnavailable,
		},
		{
			name: "network error",
			getFunc: func(_ context.Context, _ string) (*client.Response, error) {
				return nil, errors.New("connection refused")
			},
			wantStatus: StatusUnavailable,
		},
		{
			name: "malformed body",
			getFunc: func(_ context.Context, _ string) (*client.Response, error) {
				return &client.Response{StatusCode: http.StatusOK, Body: []byte("<html>")}, nil
			},
			wantStatus: StatusUnavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := NewService(&client.Client{GetFunc: tt.getFunc})
			result := service.FetchTable(context.Background(), tamandare(), mustDate(t, "2024-12-15"))

			assert.Equal(t, tt.wantStatus, result.Status)
			if tt.wantStatus == StatusOK {
				assert.NotEmpty(t, result.Raw)
			} else {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}
}

func TestTideTableUpstreamAvailable(t *testing.T) {
	t.Parallel()

	payload := `{"port":"Tamandaré","events":[{"hour":"04:12","height":2.1}]}`
	service := NewService(&client.Client{
		GetFunc: func(_ context.Context, _ string) (*client.Response, error) {
			return &client.Response{StatusCode: http.StatusOK, Body: []byte(payload)}, nil
		},
	})

	beach := "carneiros"
	resp := service.TideTable(context.Background(), tamandare(), &beach, mustDate(t, "2024-12-15"))

	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "tabuamare", resp.Source)
	assert.Equal(t, "Tamandaré", resp.Port)
	assert.Equal(t, "2024-12-15", resp.Date)
	require.NotNil(t, resp.Beach)
	assert.Equal(t, "carneiros", *resp.Beach)
	assert.JSONEq(t, payload, string(resp.Data))
	assert.Empty(t, resp.Tides)
	assert.Empty(t, resp.Disclaimer)
}

func TestTideTableFallsBackToCalculated(t *testing.T) {
	t.Parallel()

	service := NewService(&client.Client{
		GetFunc: func(_ context.Context, _ string) (*client.Response, error) {
			return nil, errors.New("no route to host")
		},
	})

	resp := service.TideTable(context.Background(), tamandare(), nil, mustDate(t, "2024-12-15"))

	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "calculated", resp.Source)
	assert.Equal(t, "Tamandaré", resp.Port)
	assert.InDelta(t, -8.7594, resp.PortCoordinates.Lat, 1e-9)
	assert.InDelta(t, -35.1033, resp.PortCoordinates.Lon, 1e-9)
	assert.Nil(t, resp.Beach)
	assert.Nil(t, resp.Data)
	assert.Len(t, resp.Tides, 4)
	assert.NotEmpty(t, resp.Disclaimer)
}
