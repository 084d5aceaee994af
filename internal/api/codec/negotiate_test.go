package codec_test

import (
	"customer-catalog/internal/api/codec"
	"customer-catalog/internal/pkg/apperrors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Negotiate(t *testing.T) {
	registry, err := codec.NewRegistry()
	require.NoError(t, err)

	tests := []struct {
		name   string
		target string
		accept string
		want   codec.Format
	}{
		{name: "No Accept header defaults to JSON", target: "/customers"},
		{name: "Wildcard defaults to JSON", target: "/customers", accept: "*/*", want: codec.FormatJSON},
		{name: "JSON", target: "/customers", accept: "application/json", want: codec.FormatJSON},
		{name: "Protobuf", target: "/customers", accept: "application/x-protobuf", want: codec.FormatProtobuf},
		{name: "Protobuf alias", target: "/customers", accept: "application/protobuf", want: codec.FormatProtobuf},
		{name: "Protobuf with message parameter", target: "/customers", accept: "application/x-protobuf; messageType=catalog.v1.CustomerList", want: codec.FormatProtobuf},
		{name: "Quality weighting", target: "/customers", accept: "application/json;q=0.2, application/x-protobuf;q=0.9", want: codec.FormatProtobuf},
		{name: "Browser style header", target: "/customers", accept: "text/html,application/xhtml+xml,*/*;q=0.8", want: codec.FormatJSON},
		{name: "Wildcard skips refused JSON", target: "/customers", accept: "application/json;q=0, */*", want: codec.FormatProtobuf},
		{name: "Refusing the protobuf alias refuses protobuf", target: "/customers", accept: "application/protobuf;q=0, */*", want: codec.FormatJSON},
		{name: "Higher quality wildcard beats lower quality type", target: "/customers", accept: "application/x-protobuf;q=0.1, */*;q=0.8", want: codec.FormatJSON},
		{name: "Query parameter overrides Accept", target: "/customers?format=protobuf", accept: "application/json", want: codec.FormatProtobuf},
		{name: "Query parameter is case insensitive", target: "/customers?format=JSON", accept: "application/x-protobuf", want: codec.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			want := tt.want
			if want == "" {
				want = codec.FormatJSON
			}

			c, err := registry.Negotiate(req)
			require.NoError(t, err)
			assert.Equal(t, want, c.Format())
		})
	}
}

func TestRegistry_NegotiateNotAcceptable(t *testing.T) {
	registry, err := codec.NewRegistry()
	require.NoError(t, err)

	t.Run("Unsupported Accept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Accept", "text/csv")

		_, err := registry.Negotiate(req)
		assert.ErrorIs(t, err, apperrors.ErrNotAcceptable)
	})

	for _, accept := range []string{
		"application/json;q=0",
		"application/x-protobuf;q=0, text/csv",
		"application/json;q=0, application/x-protobuf;q=0, */*",
	} {
		t.Run("Refused with q=0: "+accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/customers", nil)
			req.Header.Set("Accept", accept)

			_, err := registry.Negotiate(req)
			assert.ErrorIs(t, err, apperrors.ErrNotAcceptable)
		})
	}

	t.Run("Unsupported format parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers?format=xml", nil)

		_, err := registry.Negotiate(req)
		assert.ErrorIs(t, err, apperrors.ErrNotAcceptable)
	})
}

func TestRegistry_Lookup(t *testing.T) {
	registry, err := codec.NewRegistry()
	require.NoError(t, err)

	c, ok := registry.ByFormat(codec.FormatProtobuf)
	require.True(t, ok)
	assert.Equal(t, codec.MediaTypeProtobuf, c.ContentType())

	_, ok = registry.ByFormat("yaml")
	assert.False(t, ok)

	assert.Equal(t, []string{"application/json", "application/x-protobuf", "application/protobuf"}, registry.MediaTypes())
}
