package dto

type WordEntry struct {
	ID      uint   `json:"id"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Level   string `json:"level"`
	Example string `json:"example"`
}

type WordListResponse struct {
	Success bool        `json:"success"`
	Words   []WordEntry `json:"words"`
	Note    string      `json:"note,omitempty"`
}
