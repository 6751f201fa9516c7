package research

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://en.wikipedia.org/w/api.php"

// Wikipedia implements Client over the MediaWiki query/extracts API.
type Wikipedia struct {
	BaseURL string
	// Contact identifies the operator in the User-Agent, as required by the
	// Wikimedia API usage policy.
	Contact string
	client  *http.Client
}

// NewWikipedia creates a Wikipedia client. baseURL may be empty to use the
// English Wikipedia endpoint.
func NewWikipedia(baseURL, contact string, client *http.Client) (*Wikipedia, error) {
	if contact == "" {
		return nil, fmt.Errorf("wikipedia contact is required (api usage policy)")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Wikipedia{BaseURL: baseURL, Contact: contact, client: client}, nil
}

// Lookup fetches the plain-text extract for topic. A missing page or a page
// without an extract yields an empty Summary and no error; transport and API
// failures wrap ErrUnavailable.
func (w *Wikipedia) Lookup(ctx context.Context, topic string) (Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	q := req.URL.Query()
	q.Set("action", "query")
	q.Set("prop", "extracts|info")
	q.Set("exlimit", "1")
	q.Set("explaintext", "1")
	q.Set("inprop", "url")
	q.Set("titles", topic)
	q.Set("format", "json")
	q.Set("utf8", "1")
	q.Set("redirects", "1")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", fmt.Sprintf("wiki_article_writer/1.0 (%s)", w.Contact))

	resp, err := w.client.Do(req)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Summary{}, fmt.Errorf("%w: wikipedia returned status %d", ErrUnavailable, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !gjson.ValidBytes(body) {
		return Summary{}, fmt.Errorf("%w: wikipedia returned invalid JSON", ErrUnavailable)
	}
	if apiErr := gjson.GetBytes(body, "error.info"); apiErr.Exists() {
		return Summary{}, fmt.Errorf("%w: wikipedia api error: %s", ErrUnavailable, apiErr.String())
	}

	// query.pages is keyed by page id, which we don't know up front; with
	// exlimit=1 there is exactly one entry. Missing pages carry id "-1".
	var page gjson.Result
	gjson.GetBytes(body, "query.pages").ForEach(func(_, value gjson.Result) bool {
		page = value
		return false
	})
	if !page.Exists() || page.Get("missing").Exists() {
		return Summary{}, nil
	}

	extract := strings.TrimSpace(page.Get("extract").String())
	if extract == "" {
		return Summary{}, nil
	}
	title := page.Get("title").String()
	pageURL := page.Get("fullurl").String()
	if pageURL == "" {
		pageURL = w.articleURL(title)
	}
	return Summary{Extract: extract, PageTitle: title, PageURL: pageURL}, nil
}

func (w *Wikipedia) articleURL(title string) string {
	u, err := url.Parse(w.BaseURL)
	if err != nil || title == "" {
		return ""
	}
	u.Path = "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	u.RawQuery = ""
	return u.String()
}
