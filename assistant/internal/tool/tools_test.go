package tool

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learnhub/assistant/internal/dictionary"

	"github.com/stretchr/testify/require"
)

func dictStub(t *testing.T, status int, payload string) *dictionary.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return dictionary.NewClient(srv.URL)
}

func TestLookupWord_FormatsFirstDefinition(t *testing.T) {
	payload := `[{"word":"serene","meanings":[{"definitions":[{"definition":"Calm and peaceful.","example":"A serene lake."}]}]}]`
	lw := &LookupWord{Dict: dictStub(t, http.StatusOK, payload)}

	arg, err := lw.DecodeArg(json.RawMessage(`{"word":"serene"}`))
	require.NoError(t, err)
	result, err := lw.Call(arg)
	require.NoError(t, err)

	text := result.(string)
	require.Contains(t, text, "Word: serene")
	require.Contains(t, text, "Meaning: Calm and peaceful.")
	require.Contains(t, text, "Example: A serene lake.")
}

func TestLookupWord_MissingWordArg(t *testing.T) {
	lw := &LookupWord{}
	_, err := lw.DecodeArg(json.RawMessage(`{}`))
	require.Error(t, err)
}

// An unknown word and an unreachable dictionary service produce the same
// sentinel message: callers cannot distinguish "word absent" from "service
// down". Kept deliberately, matching the documented behavior.
func TestLookupWord_NotFoundAndTransportErrorCollapse(t *testing.T) {
	notFound := &LookupWord{Dict: dictStub(t, http.StatusNotFound, "")}
	arg, err := notFound.DecodeArg(json.RawMessage(`{"word":"zzzz"}`))
	require.NoError(t, err)
	missing, err := notFound.Call(arg)
	require.NoError(t, err)
	require.Equal(t, "'zzzz' was not found in the dictionary.", missing)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	down := &LookupWord{Dict: dictionary.NewClient(srv.URL)}
	arg, err = down.DecodeArg(json.RawMessage(`{"word":"zzzz"}`))
	require.NoError(t, err)
	unreachable, err := down.Call(arg)
	require.NoError(t, err)
	require.Equal(t, missing, unreachable)
}

func TestAddScore(t *testing.T) {
	as := &AddScore{}
	arg, err := as.DecodeArg(json.RawMessage(`{"current_score":40,"added_score":15}`))
	require.NoError(t, err)
	sum, err := as.Call(arg)
	require.NoError(t, err)
	require.Equal(t, 55, sum)
}

func TestHandler_CallAndErrors(t *testing.T) {
	payload := `[{"word":"lucid","meanings":[{"definitions":[{"definition":"Clear.","example":"A lucid essay."}]}]}]`
	Register("lookup_word", &LookupWord{Dict: dictStub(t, http.StatusOK, payload)})
	Register("add_score", &AddScore{})

	srv := httptest.NewServer(NewHandler())
	t.Cleanup(srv.Close)

	// list
	resp, err := http.Get(srv.URL + "/tools")
	require.NoError(t, err)
	var listing struct {
		Success bool     `json:"success"`
		Tools   []string `json:"tools"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	_ = resp.Body.Close()
	require.Contains(t, listing.Tools, "lookup_word")
	require.Contains(t, listing.Tools, "add_score")

	// successful call
	body := `{"tool":"lookup_word","argument":{"word":"lucid"}}`
	resp, err = http.Post(srv.URL+"/tools/call", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var call CallResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&call))
	_ = resp.Body.Close()
	require.True(t, call.Success)
	require.Contains(t, call.Result.(string), "Word: lucid")

	// unknown tool
	resp, err = http.Post(srv.URL+"/tools/call", "application/json", bytes.NewReader([]byte(`{"tool":"nope"}`)))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// bad argument
	resp, err = http.Post(srv.URL+"/tools/call", "application/json", bytes.NewReader([]byte(`{"tool":"lookup_word","argument":{}}`)))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}
