package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const DefaultBaseURL = "https://api.dictionaryapi.dev"

// ErrNotFound covers every lookup failure: missing word, non-200 status,
// transport error, unparsable payload. The tool layer renders it as a
// user-facing not-found message.
var ErrNotFound = errors.New("word not found")

// Entry is the first definition extracted from a dictionary response.
type Entry struct {
	Word       string
	Definition string
	Example    string
}

type Client struct {
	base string
	hc   *http.Client
}

func NewClient(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{base: base, hc: &http.Client{}}
}

// apiEntry mirrors the slice-of-entries shape of the Free Dictionary API.
type apiEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		Definitions []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Lookup fetches the first definition and example for a word. It fails fast:
// no retries, no backoff.
func (c *Client) Lookup(word string) (*Entry, error) {
	endpoint := fmt.Sprintf("%s/api/v2/entries/en/%s", c.base, url.PathEscape(word))
	resp, err := c.hc.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("dictionary request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	var entries []apiEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode dictionary response: %w", err)
	}
	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return nil, ErrNotFound
	}

	first := entries[0].Meanings[0].Definitions[0]
	example := first.Example
	if example == "" {
		example = "No example sentence available."
	}
	return &Entry{Word: word, Definition: first.Definition, Example: example}, nil
}
