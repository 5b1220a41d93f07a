package complaint

import (
	"encoding/json"
	"os"
)

// Dataset is a parsed complaints file.
type Dataset struct {
	Complaints []RawComplaint
	// KeywordsIndex is the optional precomputed keyword vocabulary shipped
	// alongside the records. Used for filter suggestions only; it is not
	// validated against per-record keywords.
	KeywordsIndex []string
}

// wrapped is the object form of the dataset file.
type wrapped struct {
	Complaints    []RawComplaint `json:"complaints"`
	KeywordsIndex []string       `json:"keywords_index"`
}

// ParseDataset decodes a complaints document. Two shapes are accepted: a
// bare top-level array of records, or an object wrapping the array under a
// "complaints" key plus an optional "keywords_index" list. Anything else
// yields an empty dataset rather than an error.
func ParseDataset(data []byte) Dataset {
	var arr []RawComplaint
	if err := json.Unmarshal(data, &arr); err == nil {
		return Dataset{Complaints: arr}
	}

	var w wrapped
	if err := json.Unmarshal(data, &w); err == nil {
		return Dataset{Complaints: w.Complaints, KeywordsIndex: w.KeywordsIndex}
	}

	return Dataset{}
}

// LoadDataset reads and parses a complaints file from disk.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	return ParseDataset(data), nil
}
