package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client is a small JSON client for the learnhub backend. It keeps the
// session token issued at login and sends it as a bearer header afterwards.
type Client struct {
	BaseURL string
	Token   string
	hc      *http.Client
}

func NewClient() *Client {
	return &Client{hc: &http.Client{}}
}

type loginResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Level    string `json:"level"`
	Score    int    `json:"score"`
}

func (c *Client) Login(host string, port int, username, password string) (*loginResult, error) {
	c.BaseURL = fmt.Sprintf("http://%s:%d", host, port)
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := c.hc.Post(c.BaseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var result loginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("login failed: %s", result.Message)
	}
	c.Token = result.Token
	return &result, nil
}

func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&fail)
		return fmt.Errorf("%s: %s", resp.Status, fail.Message)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type WordRow struct {
	ID      uint   `json:"id"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Level   string `json:"level"`
	Example string `json:"example"`
}

func (c *Client) Words() ([]WordRow, error) {
	var resp struct {
		Success bool      `json:"success"`
		Words   []WordRow `json:"words"`
	}
	if err := c.get("/api/words", &resp); err != nil {
		return nil, err
	}
	return resp.Words, nil
}

type ScoreRow struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Level    string `json:"level"`
}

func (c *Client) Scoreboard() ([]ScoreRow, error) {
	var rows []ScoreRow
	if err := c.get("/api/scoreboard", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
