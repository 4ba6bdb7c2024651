package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"resty.dev/v3"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements provider.Client against the Gemini REST API.
type Client struct {
	httpClient       *resty.Client
	streamClient     *http.Client
	baseURL          string
	apiKey           string
	model            string
	imageModel       string
	maxRetryAttempts uint
}

func NewClient(apiKey, model, imageModel string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("x-goog-api-key", apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		// No timeout on the stream client; streams are bounded by the
		// caller's context.
		streamClient:     &http.Client{},
		baseURL:          defaultBaseURL,
		apiKey:           apiKey,
		model:            model,
		imageModel:       imageModel,
		maxRetryAttempts: retryAttempts,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// GetModel returns the text model name configured for this client.
func (c *Client) GetModel() string {
	return c.model
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string `json:"text,omitempty"`
	InlineData *blob  `json:"inlineData,omitempty"`
}

type blob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature        float32 `json:"temperature,omitempty"`
	ResponseMIMEType   string  `json:"responseMimeType,omitempty"`
	ResponseSchema     *schema `json:"responseSchema,omitempty"`
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type tool struct {
	GoogleSearch *googleSearch `json:"googleSearch,omitempty"`
}

type googleSearch struct{}

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web *webSource `json:"web,omitempty"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// firstText concatenates the text parts of the first candidate.
func (r *generateContentResponse) firstText() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// firstInlineData returns the first inline image of the first candidate.
func (r *generateContentResponse) firstInlineData() *blob {
	if r == nil || len(r.Candidates) == 0 {
		return nil
	}
	for _, p := range r.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return p.InlineData
		}
	}
	return nil
}

// classifyStatus maps an HTTP failure status to a provider error kind.
func classifyStatus(status int, body string) *provider.Error {
	switch {
	case status == http.StatusTooManyRequests:
		return provider.NewError(provider.KindQuota, fmt.Sprintf("response error %d: %s", status, body), nil)
	case status >= http.StatusInternalServerError:
		return provider.NewError(provider.KindTransient, fmt.Sprintf("response error %d: %s", status, body), nil)
	default:
		return provider.NewError(provider.KindInvalidResponse, fmt.Sprintf("response error %d: %s", status, body), nil)
	}
}

// withRetry runs fn under the client's retry policy. Invalid responses are
// unrecoverable; transient and quota failures back off and retry.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			if err := fn(); err != nil {
				if !provider.IsRetryable(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(retry.BackOffDelay),
	)
}

func (c *Client) generate(ctx context.Context, model string, request generateContentRequest) (*generateContentResponse, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&generateContentResponse{}).
		Post("/models/" + model + ":generateContent")
	if err != nil {
		return nil, provider.NewError(provider.KindTransient, "httpClient.Post", err)
	}
	if response.IsError() {
		return nil, classifyStatus(response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*generateContentResponse)
	slog.Default().Debug("gemini response",
		"model", model,
		"candidates", len(responseBody.Candidates),
	)
	return responseBody, nil
}

// GenerateFlashcards implements the provider.Client interface.
func (c *Client) GenerateFlashcards(ctx context.Context, topic string, profile provider.Profile) ([]provider.Flashcard, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, provider.NewError(provider.KindInvalidResponse, "topic must not be empty", nil)
	}

	request := generateContentRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: flashcardPrompt(topic)}}}},
		SystemInstruction: systemInstruction(profile),
		GenerationConfig: &generationConfig{
			Temperature:      0.7,
			ResponseMIMEType: "application/json",
			ResponseSchema:   flashcardSchema(),
		},
	}

	var cards []provider.Flashcard
	if err := c.withRetry(ctx, func() error {
		response, err := c.generate(ctx, c.model, request)
		if err != nil {
			return fmt.Errorf("generate() > %w", err)
		}

		var decoded []struct {
			Front        string `json:"front"`
			Back         string `json:"back"`
			ImageKeyword string `json:"imageKeyword"`
		}
		text := response.firstText()
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			slog.Default().Error("failed to parse flashcard response", "error", err)
			return provider.NewError(provider.KindInvalidResponse, "malformed flashcard payload", err)
		}
		if len(decoded) == 0 {
			return provider.NewError(provider.KindInvalidResponse, "empty flashcard payload", nil)
		}

		cards = cards[:0]
		for i, d := range decoded {
			if d.Front == "" || d.Back == "" {
				return provider.NewError(provider.KindInvalidResponse,
					fmt.Sprintf("flashcard %d is missing front or back", i), nil)
			}
			cards = append(cards, provider.Flashcard{
				ID:           uuid.NewString(),
				Front:        d.Front,
				Back:         d.Back,
				ImageKeyword: d.ImageKeyword,
			})
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return cards, nil
}

// GenerateQuiz implements the provider.Client interface.
func (c *Client) GenerateQuiz(ctx context.Context, topic string, requirements string, profile provider.Profile) ([]provider.QuizQuestion, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, provider.NewError(provider.KindInvalidResponse, "topic must not be empty", nil)
	}

	request := generateContentRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: quizPrompt(topic, requirements)}}}},
		SystemInstruction: systemInstruction(profile),
		GenerationConfig: &generationConfig{
			Temperature:      0.7,
			ResponseMIMEType: "application/json",
			ResponseSchema:   quizSchema(),
		},
	}

	var questions []provider.QuizQuestion
	if err := c.withRetry(ctx, func() error {
		response, err := c.generate(ctx, c.model, request)
		if err != nil {
			return fmt.Errorf("generate() > %w", err)
		}

		var decoded []provider.QuizQuestion
		text := response.firstText()
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			slog.Default().Error("failed to parse quiz response", "error", err)
			return provider.NewError(provider.KindInvalidResponse, "malformed quiz payload", err)
		}
		if len(decoded) == 0 {
			return provider.NewError(provider.KindInvalidResponse, "empty quiz payload", nil)
		}
		for i, q := range decoded {
			if len(q.Options) == 0 {
				return provider.NewError(provider.KindInvalidResponse,
					fmt.Sprintf("question %d has no options", i), nil)
			}
			if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
				return provider.NewError(provider.KindInvalidResponse,
					fmt.Sprintf("question %d has correct answer index %d out of %d options", i, q.CorrectAnswerIndex, len(q.Options)), nil)
			}
		}
		questions = decoded
		return nil
	}); err != nil {
		return nil, err
	}
	return questions, nil
}

// Summarize implements the provider.Client interface. An empty reply is a
// normal outcome resolved to the fallback sentinel, not an error.
func (c *Client) Summarize(ctx context.Context, text string, profile provider.Profile) (string, error) {
	request := generateContentRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: summarizePrompt(text)}}}},
		SystemInstruction: systemInstruction(profile),
		GenerationConfig:  &generationConfig{Temperature: 0.3},
	}

	var summary string
	if err := c.withRetry(ctx, func() error {
		response, err := c.generate(ctx, c.model, request)
		if err != nil {
			return fmt.Errorf("generate() > %w", err)
		}
		summary = strings.TrimSpace(response.firstText())
		return nil
	}); err != nil {
		return "", err
	}

	if summary == "" {
		return provider.SummaryFallback, nil
	}
	return summary, nil
}

// GenerateSchedule implements the provider.Client interface.
func (c *Client) GenerateSchedule(ctx context.Context, freeform string, profile provider.Profile) ([]provider.StudySession, error) {
	if strings.TrimSpace(freeform) == "" {
		return nil, provider.NewError(provider.KindInvalidResponse, "schedule input must not be empty", nil)
	}

	request := generateContentRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: schedulePrompt(freeform)}}}},
		SystemInstruction: systemInstruction(profile),
		GenerationConfig: &generationConfig{
			Temperature:      0.5,
			ResponseMIMEType: "application/json",
			ResponseSchema:   scheduleSchema(),
		},
	}

	var sessions []provider.StudySession
	if err := c.withRetry(ctx, func() error {
		response, err := c.generate(ctx, c.model, request)
		if err != nil {
			return fmt.Errorf("generate() > %w", err)
		}

		var decoded []provider.StudySession
		text := response.firstText()
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			slog.Default().Error("failed to parse schedule response", "error", err)
			return provider.NewError(provider.KindInvalidResponse, "malformed schedule payload", err)
		}
		if len(decoded) == 0 {
			return provider.NewError(provider.KindInvalidResponse, "empty schedule payload", nil)
		}
		sessions = decoded
		return nil
	}); err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindExternalResource implements the provider.Client interface. The first
// grounding citation with a resolvable link wins; no citation at all is a
// Found=false result, not an error.
func (c *Client) FindExternalResource(ctx context.Context, query string, profile provider.Profile) (provider.ExternalResource, error) {
	request := generateContentRequest{
		Contents:          []content{{Role: "user", Parts: []part{{Text: resourcePrompt(query)}}}},
		SystemInstruction: systemInstruction(profile),
		Tools:             []tool{{GoogleSearch: &googleSearch{}}},
	}

	var resource provider.ExternalResource
	if err := c.withRetry(ctx, func() error {
		response, err := c.generate(ctx, c.model, request)
		if err != nil {
			return fmt.Errorf("generate() > %w", err)
		}

		resource = provider.ExternalResource{}
		if len(response.Candidates) == 0 {
			return nil
		}
		meta := response.Candidates[0].GroundingMetadata
		if meta == nil {
			return nil
		}
		for _, chunk := range meta.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			resource = provider.ExternalResource{
				Found:       true,
				Title:       chunk.Web.Title,
				Link:        chunk.Web.URI,
				Description: strings.TrimSpace(response.firstText()),
			}
			break
		}
		return nil
	}); err != nil {
		return provider.ExternalResource{}, err
	}
	return resource, nil
}

// GenerateIllustration implements the provider.Client interface. A refusal or
// an empty reply yields a nil image without an error.
func (c *Client) GenerateIllustration(ctx context.Context, keyword string) (*provider.InlineImage, error) {
	request := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: illustrationPrompt(keyword)}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	var image *provider.InlineImage
	if err := c.withRetry(ctx, func() error {
		response, err := c.generate(ctx, c.imageModel, request)
		if err != nil {
			return fmt.Errorf("generate() > %w", err)
		}

		image = nil
		data := response.firstInlineData()
		if data == nil {
			return nil
		}
		raw, err := base64.StdEncoding.DecodeString(data.Data)
		if err != nil {
			return provider.NewError(provider.KindInvalidResponse, "malformed inline image payload", err)
		}
		image = &provider.InlineImage{MIMEType: data.MIMEType, Data: raw}
		return nil
	}); err != nil {
		return nil, err
	}
	return image, nil
}

// AnalyzeImage implements the provider.Client interface. A data-URI prefix on
// imageData is stripped before transmission.
func (c *Client) AnalyzeImage(ctx context.Context, imageData string, mimeType string, profile provider.Profile) (string, error) {
	payload, embeddedMIME := stripDataURI(imageData)
	if embeddedMIME != "" {
		mimeType = embeddedMIME
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	request := generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &blob{MIMEType: mimeType, Data: payload}},
				{Text: analyzePrompt()},
			},
		}},
		SystemInstruction: systemInstruction(profile),
		GenerationConfig:  &generationConfig{Temperature: 0.4},
	}

	var analysis string
	if err := c.withRetry(ctx, func() error {
		response, err := c.generate(ctx, c.model, request)
		if err != nil {
			return fmt.Errorf("generate() > %w", err)
		}
		analysis = strings.TrimSpace(response.firstText())
		return nil
	}); err != nil {
		return "", err
	}

	if analysis == "" {
		return provider.AnalysisFallback, nil
	}
	return analysis, nil
}

// stripDataURI splits a "data:<mime>;base64,<payload>" string into its payload
// and embedded mime type. Plain base64 input passes through unchanged.
func stripDataURI(imageData string) (payload, mimeType string) {
	if !strings.HasPrefix(imageData, "data:") {
		return imageData, ""
	}
	rest := strings.TrimPrefix(imageData, "data:")
	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return imageData, ""
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	return data, mimeType
}
