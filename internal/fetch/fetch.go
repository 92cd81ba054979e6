// Package fetch downloads public-domain source texts from Project Gutenberg
// into the local data directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/lexfeed/lexfeed/internal/logger"
)

const (
	// searchURL returns a randomly sorted result page; we only need the
	// book IDs from the listing.
	searchURL = "https://www.gutenberg.org/ebooks/search/?sort_order=random"
	// bookURLFormat is the plain-text mirror layout.
	bookURLFormat = "https://www.gutenberg.org/files/%d/%d-0.txt"
)

// Client fetches books from Project Gutenberg.
type Client struct {
	HTTP *http.Client
	Log  logger.Logger
}

func NewClient(log logger.Logger) *Client {
	return &Client{
		HTTP: &http.Client{Timeout: 5 * time.Minute},
		Log:  log,
	}
}

// RandomBookIDs scrapes up to limit numeric book IDs from the random-sort
// search page.
func (c *Client) RandomBookIDs(ctx context.Context, limit int) ([]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch book listing: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch book listing: unexpected status %s", resp.Status)
	}

	ids, err := ParseBookIDs(resp.Body, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no book ids found in listing")
	}
	return ids, nil
}

// ParseBookIDs extracts book IDs from a search results page. Results are
// anchors of the form /ebooks/<id> inside li.booklink elements.
func ParseBookIDs(r io.Reader, limit int) ([]int, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse book listing: %w", err)
	}

	var ids []int
	seen := make(map[int]struct{})
	var walk func(n *html.Node, inBooklink bool)
	walk = func(n *html.Node, inBooklink bool) {
		if limit > 0 && len(ids) >= limit {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "li":
				if hasClass(n, "booklink") {
					inBooklink = true
				}
			case "a":
				if inBooklink {
					if id, ok := bookIDFromHref(attr(n, "href")); ok {
						if _, dup := seen[id]; !dup {
							seen[id] = struct{}{}
							ids = append(ids, id)
						}
					}
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, inBooklink)
		}
	}
	walk(doc, false)
	return ids, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func bookIDFromHref(href string) (int, bool) {
	last := href[strings.LastIndex(href, "/")+1:]
	id, err := strconv.Atoi(last)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// DownloadBook streams the plain-text edition of a book to path. The
// destination is written atomically via a temp file so a failed download
// never leaves a truncated book behind.
func (c *Client) DownloadBook(ctx context.Context, bookID int, path string) error {
	url := fmt.Sprintf(bookURLFormat, bookID, bookID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("download book %d: %w", bookID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download book %d: unexpected status %s", bookID, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("download book %d: %w", bookID, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	c.Log.Info("downloaded book", "id", bookID, "path", path, "bytes", written)
	return nil
}

// DownloadN downloads count books into dir as book_<i>.txt, drawing
// replacement IDs from the pool when a download fails, with up to retries
// extra attempts per slot.
func (c *Client) DownloadN(ctx context.Context, dir string, count, retries int) (int, error) {
	ids, err := c.RandomBookIDs(ctx, count*2)
	if err != nil {
		return 0, err
	}

	downloaded := 0
	for downloaded < count && len(ids) > 0 {
		path := filepath.Join(dir, fmt.Sprintf("book_%d.txt", downloaded+1))
		ok := false
		for attempt := 0; attempt <= retries && len(ids) > 0; attempt++ {
			id := ids[0]
			ids = ids[1:]
			if err := c.DownloadBook(ctx, id, path); err != nil {
				if ctx.Err() != nil {
					return downloaded, ctx.Err()
				}
				c.Log.Warn("book download failed", "id", id, "error", err)
				continue
			}
			ok = true
			break
		}
		if !ok {
			break
		}
		downloaded++
	}

	if downloaded < count {
		c.Log.Warn("fewer books downloaded than requested", "want", count, "got", downloaded)
	}
	return downloaded, nil
}
