package testdata

import (
	"encoding/json"
	"math/rand"
)

type Batch struct {
	Tokens  []string `json:"tokens"`
	Display string   `json:"display"`
	Drawn   int      `json:"drawn"`
	Invalid []string `json:"invalid"`
}

const data = `[
	{"tokens": ["C", "C#", "Z"], "display": "C C#", "drawn": 2, "invalid": ["Z"]},
	{"tokens": [" a ", "b#", "e"], "display": "A B# E", "drawn": 3, "invalid": []},
	{"tokens": ["H", "", "#"], "display": "", "drawn": 0, "invalid": ["H", "", "#"]},
	{"tokens": ["g", "X", "d#", "c##"], "display": "G D#", "drawn": 2, "invalid": ["X", "c##"]},
	{"tokens": [], "display": "", "drawn": 0, "invalid": []}
]`

func GetBatches() ([]Batch, error) {
	var batches []Batch
	if err := json.Unmarshal([]byte(data), &batches); nil != err {
		return nil, err
	}
	return batches, nil
}

// Source returns a deterministic random source.
func Source(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
