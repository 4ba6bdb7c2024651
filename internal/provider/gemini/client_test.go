package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func newTestClient(serverURL string, retryAttempts uint) *Client {
	return &Client{
		httpClient:       resty.New().SetBaseURL(serverURL),
		streamClient:     &http.Client{},
		baseURL:          serverURL,
		apiKey:           "test-key",
		model:            "test-model",
		imageModel:       "test-image-model",
		maxRetryAttempts: retryAttempts,
	}
}

func textResponse(text string) generateContentResponse {
	return generateContentResponse{
		Candidates: []candidate{{Content: content{Role: "model", Parts: []part{{Text: text}}}}},
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind provider.ErrorKind
	}{
		{name: "Too many requests is a quota failure", status: http.StatusTooManyRequests, wantKind: provider.KindQuota},
		{name: "Server error is transient", status: http.StatusInternalServerError, wantKind: provider.KindTransient},
		{name: "Bad gateway is transient", status: http.StatusBadGateway, wantKind: provider.KindTransient},
		{name: "Bad request is invalid", status: http.StatusBadRequest, wantKind: provider.KindInvalidResponse},
		{name: "Unauthorized is invalid", status: http.StatusUnauthorized, wantKind: provider.KindInvalidResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.status, "body")
			assert.True(t, provider.IsKind(err, tt.wantKind))
		})
	}
}

func TestClient_GenerateFlashcards(t *testing.T) {
	tests := []struct {
		name            string
		topic           string
		payload         string
		wantCount       int
		wantError       bool
		wantErrorKind   provider.ErrorKind
		skipServerCheck bool
	}{
		{
			name:      "Success",
			topic:     "Photosynthesis",
			payload:   `[{"front":"Chlorophyll","back":"Green pigment that absorbs light","imageKeyword":"leaf"},{"front":"Stomata","back":"Pores for gas exchange"}]`,
			wantCount: 2,
		},
		{
			name:          "Card missing a back is rejected",
			topic:         "Photosynthesis",
			payload:       `[{"front":"Chlorophyll","back":""}]`,
			wantError:     true,
			wantErrorKind: provider.KindInvalidResponse,
		},
		{
			name:          "Empty payload is rejected",
			topic:         "Photosynthesis",
			payload:       `[]`,
			wantError:     true,
			wantErrorKind: provider.KindInvalidResponse,
		},
		{
			name:          "Non-JSON payload is rejected",
			topic:         "Photosynthesis",
			payload:       `chlorophyll is green`,
			wantError:     true,
			wantErrorKind: provider.KindInvalidResponse,
		},
		{
			name:            "Blank topic never reaches the server",
			topic:           "   ",
			wantError:       true,
			wantErrorKind:   provider.KindInvalidResponse,
			skipServerCheck: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)

				var request generateContentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
				require.NotEmpty(t, request.Contents)
				assert.NotNil(t, request.GenerationConfig.ResponseSchema)

				w.Header().Set("Content-Type", "application/json")

				_ = json.NewEncoder(w).Encode(textResponse(tt.payload))
			}))
			defer server.Close()

			client := newTestClient(server.URL, 0)
			cards, err := client.GenerateFlashcards(context.Background(), tt.topic, provider.Profile{})
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, provider.IsKind(err, tt.wantErrorKind))
				if tt.skipServerCheck {
					assert.False(t, called)
				}
				return
			}
			require.NoError(t, err)
			require.Len(t, cards, tt.wantCount)
			assert.Equal(t, "Chlorophyll", cards[0].Front)
			assert.Equal(t, "leaf", cards[0].ImageKeyword)
			assert.NotEmpty(t, cards[0].ID)
			assert.NotEqual(t, cards[0].ID, cards[1].ID)
		})
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "upstream hiccup", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(textResponse("A concise summary."))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	summary, err := client.Summarize(context.Background(), "long study text", provider.Profile{})
	require.NoError(t, err)
	assert.Equal(t, "A concise summary.", summary)
	assert.Equal(t, 2, attempts)
}

func TestClient_DoesNotRetryInvalidResponses(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	_, err := client.Summarize(context.Background(), "text", provider.Profile{})
	require.Error(t, err)
	assert.True(t, provider.IsKind(err, provider.KindInvalidResponse))
	assert.Equal(t, 1, attempts)
}

func TestClient_Summarize_EmptyReplyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(textResponse("   "))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	summary, err := client.Summarize(context.Background(), "text", provider.Profile{})
	require.NoError(t, err)
	assert.Equal(t, provider.SummaryFallback, summary)
}

func TestClient_GenerateQuiz(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantError bool
	}{
		{
			name:    "Valid quiz",
			payload: `[{"question":"2+2?","options":["3","4"],"correctAnswerIndex":1,"explanation":"basic addition"}]`,
		},
		{
			name:      "Correct index outside the options is rejected",
			payload:   `[{"question":"2+2?","options":["3","4"],"correctAnswerIndex":5}]`,
			wantError: true,
		},
		{
			name:      "Question without options is rejected",
			payload:   `[{"question":"2+2?","options":[],"correctAnswerIndex":0}]`,
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(textResponse(tt.payload))
			}))
			defer server.Close()

			client := newTestClient(server.URL, 0)
			questions, err := client.GenerateQuiz(context.Background(), "arithmetic", "easy", provider.Profile{})
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, provider.IsKind(err, provider.KindInvalidResponse))
				return
			}
			require.NoError(t, err)
			require.Len(t, questions, 1)
			assert.Equal(t, 1, questions[0].CorrectAnswerIndex)
		})
	}
}

func TestClient_FindExternalResource(t *testing.T) {
	t.Run("First grounded citation wins", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var request generateContentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			require.Len(t, request.Tools, 1)
			assert.NotNil(t, request.Tools[0].GoogleSearch)

			response := generateContentResponse{
				Candidates: []candidate{{
					Content: content{Parts: []part{{Text: "A solid introduction to the topic."}}},
					GroundingMetadata: &groundingMetadata{
						GroundingChunks: []groundingChunk{
							{Web: nil},
							{Web: &webSource{URI: "https://example.org/first", Title: "First Source"}},
							{Web: &webSource{URI: "https://example.org/second", Title: "Second Source"}},
						},
					},
				}},
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(response)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		resource, err := client.FindExternalResource(context.Background(), "quantum biology", provider.Profile{})
		require.NoError(t, err)
		assert.True(t, resource.Found)
		assert.Equal(t, "First Source", resource.Title)
		assert.Equal(t, "https://example.org/first", resource.Link)
		assert.Equal(t, "A solid introduction to the topic.", resource.Description)
	})

	t.Run("No grounding means not found, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(textResponse("I could not find anything."))
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		resource, err := client.FindExternalResource(context.Background(), "quantum biology", provider.Profile{})
		require.NoError(t, err)
		assert.False(t, resource.Found)
	})
}

func TestClient_GenerateIllustration(t *testing.T) {
	t.Run("Inline image is decoded", func(t *testing.T) {
		raw := []byte{0x89, 0x50, 0x4e, 0x47}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/test-image-model:generateContent", r.URL.Path)
			response := generateContentResponse{
				Candidates: []candidate{{Content: content{Parts: []part{
					{Text: "Here is your illustration."},
					{InlineData: &blob{MIMEType: "image/png", Data: base64.StdEncoding.EncodeToString(raw)}},
				}}}},
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(response)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		image, err := client.GenerateIllustration(context.Background(), "leaf")
		require.NoError(t, err)
		require.NotNil(t, image)
		assert.Equal(t, "image/png", image.MIMEType)
		assert.Equal(t, raw, image.Data)
	})

	t.Run("Refusal yields nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(textResponse("I cannot draw that."))
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		image, err := client.GenerateIllustration(context.Background(), "leaf")
		require.NoError(t, err)
		assert.Nil(t, image)
	})
}

func TestClient_AnalyzeImage(t *testing.T) {
	t.Run("Data URI payload is stripped before transmission", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var request generateContentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			require.NotEmpty(t, request.Contents)
			inline := request.Contents[0].Parts[0].InlineData
			require.NotNil(t, inline)
			assert.Equal(t, "AAAA", inline.Data)
			assert.Equal(t, "image/jpeg", inline.MIMEType)

			w.Header().Set("Content-Type", "application/json")

			_ = json.NewEncoder(w).Encode(textResponse("This shows a force diagram."))
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		analysis, err := client.AnalyzeImage(context.Background(), "data:image/jpeg;base64,AAAA", "", provider.Profile{})
		require.NoError(t, err)
		assert.Equal(t, "This shows a force diagram.", analysis)
	})

	t.Run("Empty reply falls back to the apology text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(textResponse(""))
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		analysis, err := client.AnalyzeImage(context.Background(), "AAAA", "image/png", provider.Profile{})
		require.NoError(t, err)
		assert.Equal(t, provider.AnalysisFallback, analysis)
	})
}
