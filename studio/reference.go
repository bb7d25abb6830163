package studio

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	pkgError "github.com/askdrjosh/postpilot/pkg/error"
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

// maxSeedLength keeps article excerpts small enough to fit a topic prompt.
const maxSeedLength = 1200

// FetchArticleSeed downloads an article and extracts its title plus the first
// few paragraphs as seed text for topic generation.
func FetchArticleSeed(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", pkgError.ValidationError(fmt.Sprintf("invalid source url: %v", err))
	}
	req.Header.Set("User-Agent", "postpilot/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", pkgError.UpstreamError(fmt.Sprintf("fetch source article: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pkgError.UpstreamError(fmt.Sprintf("fetch source article: status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", pkgError.UpstreamError(fmt.Sprintf("parse source article: %v", err))
	}

	var sb strings.Builder
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	doc.Find("article p, main p, p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) < 40 {
			return true
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		return sb.Len() < maxSeedLength
	})

	seed := strings.TrimSpace(sb.String())
	if seed == "" {
		return "", pkgError.ValidationError("source article contains no readable text")
	}
	if len(seed) > maxSeedLength {
		seed = seed[:maxSeedLength]
	}
	return seed, nil
}
