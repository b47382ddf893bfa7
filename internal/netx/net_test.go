package netx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "http://localhost:8000", want: "http://localhost:8000"},
		{name: "trailing slash stripped", raw: "http://localhost:8000/", want: "http://localhost:8000"},
		{name: "path kept without slash", raw: "https://api.example.com/v1/", want: "https://api.example.com/v1"},
		{name: "surrounding spaces", raw: "  http://localhost:8000 ", want: "http://localhost:8000"},
		{name: "query dropped", raw: "http://localhost:8000?x=1", want: "http://localhost:8000"},
		{name: "missing scheme", raw: "localhost:8000", wantErr: true},
		{name: "bad scheme", raw: "ftp://host", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildURL(t *testing.T) {
	base := "http://localhost:8000"

	assert.Equal(t, "http://localhost:8000/api/health", BuildURL(base, "/api/health", nil))

	q := url.Values{}
	q.Set("user_id", "u-1")
	q.Set("limit", "20")
	assert.Equal(t,
		"http://localhost:8000/api/conversations?limit=20&user_id=u-1",
		BuildURL(base, "/api/conversations", q))

	assert.Equal(t, "http://localhost:8000/api/x", BuildURL(base, "/api/x", url.Values{}))
}
