package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseEvent(text string) string {
	return fmt.Sprintf(`data: {"candidates":[{"content":{"role":"model","parts":[{"text":%q}]}}]}`+"\n\n", text)
}

func TestSSEReader(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTexts []string
	}{
		{
			name:      "Events in arrival order",
			input:     sseEvent("Hello") + sseEvent(" world"),
			wantTexts: []string{"Hello", " world"},
		},
		{
			name:      "Comments and unknown fields are skipped",
			input:     ": keep-alive\n\nevent: message\n" + sseEvent("text"),
			wantTexts: []string{"text"},
		},
		{
			name:      "Malformed events are skipped",
			input:     "data: {not json}\n\n" + sseEvent("recovered"),
			wantTexts: []string{"recovered"},
		},
		{
			name:      "DONE marker ends the stream",
			input:     sseEvent("only") + "data: [DONE]\n\n" + sseEvent("never seen"),
			wantTexts: []string{"only"},
		},
		{
			name:      "Event without text yields an empty fragment",
			input:     `data: {"candidates":[]}` + "\n\n",
			wantTexts: []string{""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := newSSEReader(strings.NewReader(tt.input))
			var texts []string
			for {
				text, err := reader.next()
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				texts = append(texts, text)
			}
			if tt.wantTexts == nil {
				assert.Empty(t, texts)
				return
			}
			assert.Equal(t, tt.wantTexts, texts)
		})
	}
}

func TestClient_StreamChat(t *testing.T) {
	t.Run("Fragments arrive in order and the channel closes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/test-model:streamGenerateContent", r.URL.Path)
			assert.Equal(t, "sse", r.URL.Query().Get("alt"))
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

			w.Header().Set("Content-Type", "text/event-stream")
			for _, chunk := range []string{"The mitochondria ", "is the powerhouse ", "of the cell."} {
				fmt.Fprint(w, sseEvent(chunk))
			}
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		ch, err := client.StreamChat(context.Background(), nil, "what is the mitochondria?", provider.Profile{})
		require.NoError(t, err)

		var sb strings.Builder
		for fragment := range ch {
			require.NoError(t, fragment.Err)
			sb.WriteString(fragment.Text)
		}
		assert.Equal(t, "The mitochondria is the powerhouse of the cell.", sb.String())
	})

	t.Run("History precedes the new message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			payload := string(body)
			assert.Less(t, strings.Index(payload, "earlier question"), strings.Index(payload, "follow-up"))
			fmt.Fprint(w, sseEvent("ok"))
		}))
		defer server.Close()

		history := []provider.Message{
			{Role: provider.RoleUser, Text: "earlier question"},
			{Role: provider.RoleModel, Text: "earlier answer"},
		}
		client := newTestClient(server.URL, 0)
		ch, err := client.StreamChat(context.Background(), history, "follow-up", provider.Profile{})
		require.NoError(t, err)
		for range ch {
		}
	})

	t.Run("Blank input fails before any request", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1", 0)
		_, err := client.StreamChat(context.Background(), nil, "   ", provider.Profile{})
		require.Error(t, err)
		assert.True(t, provider.IsKind(err, provider.KindInvalidResponse))
	})

	t.Run("HTTP failure status is classified before streaming", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		_, err := client.StreamChat(context.Background(), nil, "hello", provider.Profile{})
		require.Error(t, err)
		assert.True(t, provider.IsKind(err, provider.KindQuota))
	})
}
