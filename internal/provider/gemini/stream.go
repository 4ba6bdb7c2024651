package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
)

// StreamChat implements the provider.Client interface. The reply is consumed
// as server-sent events and forwarded as fragments in arrival order. The
// channel closes when the reply completes; a mid-stream failure is delivered
// as a final fragment with Err set.
func (c *Client) StreamChat(ctx context.Context, history []provider.Message, newText string, profile provider.Profile) (<-chan provider.Fragment, error) {
	if strings.TrimSpace(newText) == "" {
		return nil, provider.NewError(provider.KindInvalidResponse, "chat input must not be empty", nil)
	}

	contents := make([]content, 0, len(history)+1)
	for _, message := range history {
		contents = append(contents, content{
			Role:  string(message.Role),
			Parts: []part{{Text: message.Text}},
		})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: newText}}})

	request := generateContentRequest{
		Contents:          contents,
		SystemInstruction: systemInstruction(profile),
	}
	body, err := json.Marshal(request)
	if err != nil {
		return nil, provider.NewError(provider.KindInvalidResponse, "failed to marshal stream request", err)
	}

	url := c.baseURL + "/models/" + c.model + ":streamGenerateContent?alt=sse"
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, provider.NewError(provider.KindTransient, "failed to create stream request", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("x-goog-api-key", c.apiKey)

	response, err := c.streamClient.Do(httpRequest)
	if err != nil {
		return nil, provider.NewError(provider.KindTransient, "stream request failed", err)
	}
	if response.StatusCode != http.StatusOK {
		defer response.Body.Close()
		payload, _ := io.ReadAll(response.Body)
		return nil, classifyStatus(response.StatusCode, string(payload))
	}

	ch := make(chan provider.Fragment)
	go func() {
		defer close(ch)
		defer response.Body.Close()

		reader := newSSEReader(response.Body)
		for {
			text, err := reader.next()
			if err != nil {
				if err == io.EOF {
					return
				}
				select {
				case ch <- provider.Fragment{Err: provider.NewError(provider.KindTransient, "stream read failed", err)}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case ch <- provider.Fragment{Text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// sseReader parses "data: {json}" lines from a streamGenerateContent response.
type sseReader struct {
	reader *bufio.Reader
}

func newSSEReader(r io.Reader) *sseReader {
	return &sseReader{reader: bufio.NewReader(r)}
}

// next returns the text of the next event. Events without text yield an empty
// fragment; callers must tolerate those. io.EOF signals a completed stream.
func (s *sseReader) next() (string, error) {
	for {
		line, err := s.reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF && len(bytes.TrimSpace(line)) == 0 {
				return "", io.EOF
			}
			if len(bytes.TrimSpace(line)) == 0 {
				return "", err
			}
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		data, ok := bytes.CutPrefix(line, []byte("data: "))
		if !ok {
			// Comment or other SSE field; skip.
			continue
		}
		if bytes.Equal(data, []byte("[DONE]")) {
			return "", io.EOF
		}

		var event generateContentResponse
		if err := json.Unmarshal(data, &event); err != nil {
			slog.Default().Debug("skipping malformed stream event", "error", err)
			continue
		}
		return event.firstText(), nil
	}
}
