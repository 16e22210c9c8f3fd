// Package web talks to adventofcode.com: puzzle inputs, already-solved
// answers scraped from the day page, and answer submission. All requests
// carry the user's session cookie.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/logger"
)

// DefaultBaseURL is the live site.
const DefaultBaseURL = "https://adventofcode.com"

var answerRE = regexp.MustCompile(`Your puzzle answer was (.+?)\.`)

// Phrases on the submission response page that mean the answer is
// settled: either it was right, or that part is already solved.
var acceptedPhrases = []string{
	"That's the right answer",
	"You don't seem to be solving the right level",
}

// Client is an authenticated adventofcode.com client. It implements the
// answer sink's oracle.
type Client struct {
	http    *http.Client
	baseURL string
	session string
	log     logger.Logger
}

// Option adjusts a Client.
type Option func(*Client)

// WithBaseURL points the client at a different server. Tests use this
// with httptest.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client's logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client using the given session cookie.
func NewClient(session string, opts ...Option) (*Client, error) {
	if session == "" {
		return nil, errors.New(errors.ErrWeb,
			"No session cookie",
			"Export your adventofcode.com session cookie (see 'aoc init')")
	}
	c := &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: DefaultBaseURL,
		session: session,
		log:     logger.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Input fetches the puzzle input for a day.
func (c *Client) Input(ctx context.Context, year, day int) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day))
	if err != nil {
		return "", err
	}
	return body, nil
}

// KnownAnswers scrapes the day page for parts already solved. The site
// puts each in a paragraph reading "Your puzzle answer was X.".
func (c *Client) KnownAnswers(year, day int) (map[int]string, error) {
	body, err := c.get(context.Background(), fmt.Sprintf("%s/%d/day/%d", c.baseURL, year, day))
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrWeb,
			fmt.Sprintf("Cannot parse the %d day %d page", year, day), "")
	}

	answers := map[int]string{}
	part := 1
	for _, text := range paragraphs(doc) {
		if m := answerRE.FindStringSubmatch(text); m != nil {
			answers[part] = m[1]
			part++
		}
	}
	c.log.Debug("web: %d day %d has %d known answers", year, day, len(answers))
	return answers, nil
}

// Submit posts a candidate answer and reports whether the part is now
// (or already was) solved.
func (c *Client) Submit(year, day, part int, answer string) (bool, error) {
	form := url.Values{
		"level":  {strconv.Itoa(part)},
		"answer": {answer},
	}
	body, err := c.post(context.Background(),
		fmt.Sprintf("%s/%d/day/%d/answer", c.baseURL, year, day), form)
	if err != nil {
		return false, err
	}

	for _, phrase := range acceptedPhrases {
		if strings.Contains(body, phrase) {
			return true, nil
		}
	}
	c.log.Debug("web: %d day %d part %d: answer %q rejected", year, day, part, answer)
	return false, nil
}

func (c *Client) get(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrWeb, "Invalid request URL", "")
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, u string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrWeb, "Invalid request URL", "")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrWeb,
			"Request to adventofcode.com failed",
			"Check your network connection")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(errors.ErrWeb,
			fmt.Sprintf("adventofcode.com returned %d for %s", resp.StatusCode, req.URL),
			"A 400 or 500 usually means an expired session cookie")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrWeb,
			"Cannot read response from adventofcode.com", "")
	}
	return string(body), nil
}

// paragraphs returns the flattened text of every <p> element.
func paragraphs(doc *html.Node) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			out = append(out, nodeText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
