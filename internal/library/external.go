package library

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
	"golang.org/x/net/html"
)

// Resolver finds external resources for queries the local catalog cannot
// satisfy. When a grounding citation arrives without a title, the linked
// page's <title> element fills the gap.
type Resolver struct {
	client     provider.Client
	httpClient *http.Client
}

func NewResolver(client provider.Client) *Resolver {
	return &Resolver{
		client:     client,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchExternal runs the web-grounded provider search for a query.
func (r *Resolver) SearchExternal(ctx context.Context, query string, profile provider.Profile) (provider.ExternalResource, error) {
	resource, err := r.client.FindExternalResource(ctx, query, profile)
	if err != nil {
		return provider.ExternalResource{}, fmt.Errorf("FindExternalResource() > %w", err)
	}
	if resource.Found && resource.Title == "" {
		if title, err := r.fetchTitle(ctx, resource.Link); err == nil && title != "" {
			resource.Title = title
		}
	}
	return resource, nil
}

// fetchTitle loads the linked page and extracts its <title> text.
func (r *Resolver) fetchTitle(ctx context.Context, link string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext() > %w", err)
	}
	response, err := r.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("httpClient.Do() > %w", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", response.StatusCode, link)
	}

	root, err := html.Parse(response.Body)
	if err != nil {
		return "", fmt.Errorf("html.Parse() > %w", err)
	}
	return findTitle(root), nil
}

func findTitle(node *html.Node) string {
	if node.Type == html.ElementNode && node.Data == "title" {
		var sb strings.Builder
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				sb.WriteString(child.Data)
			}
		}
		return strings.TrimSpace(sb.String())
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if title := findTitle(child); title != "" {
			return title
		}
	}
	return ""
}
