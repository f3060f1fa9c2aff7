package tool

import (
	"encoding/json"
	"fmt"

	"learnhub/assistant/internal/dictionary"
	"learnhub/assistant/internal/logger"
)

// LookupWord resolves an English word against the dictionary client and
// renders a compact text block with the first definition and example.
type LookupWord struct {
	Dict *dictionary.Client
}

type lookupArg struct {
	Word string `json:"word"`
}

func (t *LookupWord) DecodeArg(raw json.RawMessage) (any, error) {
	var arg lookupArg
	if err := json.Unmarshal(raw, &arg); err != nil {
		return nil, err
	}
	if arg.Word == "" {
		return nil, fmt.Errorf("word is required")
	}
	return arg, nil
}

func (t *LookupWord) Call(arg any) (any, error) {
	a := arg.(lookupArg)
	entry, err := t.Dict.Lookup(a.Word)
	if err != nil {
		// Transport failures collapse into the same not-found message as a
		// genuinely missing word; callers cannot tell the two apart.
		logger.Errorf("lookup %q failed: %v", a.Word, err)
		return fmt.Sprintf("'%s' was not found in the dictionary.", a.Word), nil
	}
	return fmt.Sprintf("Word: %s\nMeaning: %s\nExample: %s", entry.Word, entry.Definition, entry.Example), nil
}

// AddScore adds earned points to a student's current score.
type AddScore struct{}

type addScoreArg struct {
	CurrentScore int `json:"current_score"`
	AddedScore   int `json:"added_score"`
}

func (t *AddScore) DecodeArg(raw json.RawMessage) (any, error) {
	var arg addScoreArg
	if err := json.Unmarshal(raw, &arg); err != nil {
		return nil, err
	}
	return arg, nil
}

func (t *AddScore) Call(arg any) (any, error) {
	a := arg.(addScoreArg)
	return a.CurrentScore + a.AddedScore, nil
}
