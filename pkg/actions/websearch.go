package actions

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"lyra/pkg/intent"
)

const (
	searchEndpoint  = "https://html.duckduckgo.com/html/"
	searchUserAgent = "Mozilla/5.0"
	maxResults      = 3
)

var searchClient = &http.Client{Timeout: 10 * time.Second}

type searchResult struct {
	Title   string
	Snippet string
}

// Search runs a web search for the utterance, stripping the leading trigger
// phrase, and summarizes up to three results as bullets. Any network or parse
// failure degrades to an apology string.
func (a *Adapter) Search(userText string) string {
	query := stripSearchTrigger(userText)
	if query == "" {
		query = strings.TrimSpace(userText)
	}

	results, err := a.fetchResults(query)
	if err != nil {
		log.Printf("ACTION: web search failed: %v", err)
		return "Search is having trouble right now."
	}
	if len(results) == 0 {
		return fmt.Sprintf("I couldn't find much on %q right now.", query)
	}

	var bullets []string
	for _, r := range results {
		if r.Snippet != "" {
			bullets = append(bullets, fmt.Sprintf("• %s: %s", r.Title, r.Snippet))
		} else {
			bullets = append(bullets, fmt.Sprintf("• %s", r.Title))
		}
	}
	return fmt.Sprintf("Here's what I found about %q:\n%s", query, strings.Join(bullets, "\n"))
}

func stripSearchTrigger(text string) string {
	t := strings.TrimSpace(strings.ToLower(text))
	// longest prefix first so "web search" beats "search"
	best := ""
	for _, prefix := range intent.SearchTriggerPrefixes {
		if strings.HasPrefix(t, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	return strings.TrimSpace(t[len(best):])
}

func (a *Adapter) fetchResults(query string) ([]searchResult, error) {
	form := url.Values{"q": {query}}
	req, err := http.NewRequest("POST", searchEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", searchUserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := searchClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, err
	}
	return parseSearchResults(string(body), maxResults), nil
}

// parseSearchResults walks the DuckDuckGo HTML page collecting result titles
// (a.result__a) and snippets (.result__snippet), paired in document order.
func parseSearchResults(page string, limit int) []searchResult {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var titles, snippets []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			class := attrValue(n, "class")
			if n.Data == "a" && strings.Contains(class, "result__a") {
				titles = append(titles, nodeText(n))
			} else if strings.Contains(class, "result__snippet") {
				snippets = append(snippets, nodeText(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var results []searchResult
	for i := 0; i < len(titles) && i < limit; i++ {
		r := searchResult{Title: titles[i]}
		if i < len(snippets) {
			r.Snippet = snippets[i]
		}
		if r.Title != "" {
			results = append(results, r)
		}
	}
	return results
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
