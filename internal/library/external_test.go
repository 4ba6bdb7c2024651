package library

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_provider "github.com/agdealers8/learn-and-conquer/internal/mocks/provider"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_SearchExternal(t *testing.T) {
	profile := provider.Profile{Language: "English", Grade: "High School"}

	t.Run("Resource with a title passes through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_provider.NewMockClient(ctrl)
		client.EXPECT().
			FindExternalResource(gomock.Any(), "Quantum Biology", profile).
			Return(provider.ExternalResource{
				Found: true,
				Title: "Quantum Biology Primer",
				Link:  "https://example.org/qb",
			}, nil).
			Times(1)

		resolver := NewResolver(client)
		resource, err := resolver.SearchExternal(context.Background(), "Quantum Biology", profile)
		require.NoError(t, err)
		assert.True(t, resource.Found)
		assert.Equal(t, "Quantum Biology Primer", resource.Title)
	})

	t.Run("Missing title is filled from the linked page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html><head><title>  Open Physics Textbook  </title></head><body></body></html>")
		}))
		defer server.Close()

		ctrl := gomock.NewController(t)
		client := mock_provider.NewMockClient(ctrl)
		client.EXPECT().
			FindExternalResource(gomock.Any(), "open physics", profile).
			Return(provider.ExternalResource{Found: true, Link: server.URL}, nil)

		resolver := NewResolver(client)
		resource, err := resolver.SearchExternal(context.Background(), "open physics", profile)
		require.NoError(t, err)
		assert.Equal(t, "Open Physics Textbook", resource.Title)
	})

	t.Run("Not found is a normal outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_provider.NewMockClient(ctrl)
		client.EXPECT().
			FindExternalResource(gomock.Any(), gomock.Any(), profile).
			Return(provider.ExternalResource{Found: false}, nil)

		resolver := NewResolver(client)
		resource, err := resolver.SearchExternal(context.Background(), "nowhere to be found", profile)
		require.NoError(t, err)
		assert.False(t, resource.Found)
	})

	t.Run("Provider failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_provider.NewMockClient(ctrl)
		client.EXPECT().
			FindExternalResource(gomock.Any(), gomock.Any(), profile).
			Return(provider.ExternalResource{}, provider.NewError(provider.KindTransient, "unreachable", nil))

		resolver := NewResolver(client)
		_, err := resolver.SearchExternal(context.Background(), "anything", profile)
		assert.Error(t, err)
		assert.True(t, provider.IsKind(err, provider.KindTransient))
	})

	t.Run("Unreachable title page leaves the title empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_provider.NewMockClient(ctrl)
		client.EXPECT().
			FindExternalResource(gomock.Any(), gomock.Any(), profile).
			Return(provider.ExternalResource{Found: true, Link: "http://127.0.0.1:1/nope"}, nil)

		resolver := NewResolver(client)
		resource, err := resolver.SearchExternal(context.Background(), "anything", profile)
		require.NoError(t, err)
		assert.Empty(t, resource.Title)
	})
}
