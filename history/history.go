/*
History Module - Comparison History Management
==================================================

Generalizes the teacher's calculation-history JSON log (one Entry per
evaluated expression) into a comparison-history log: one Entry per
CompareFormulas call, recording both formula texts and the signed
step-count verdict (or its absence) rather than a single float result.

The history system:
- Automatically saves each comparison on request from the cmd layer
- Persists data across program sessions
- Displays results in reverse chronological order (newest first)
- Uses structured JSON format for data integrity

File format: array of Entry objects in JSON format.
Location: history.json in the current working directory.
*/
package history

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry represents a single recorded comparison.
type Entry struct {
	A       string `json:"a"`
	B       string `json:"b"`
	Result  int    `json:"result"`
	Related bool   `json:"related"`
}

const historyFile = "history.json"

// AddHistory appends a new comparison result to the persistent history
// file, preserving whatever entries already exist.
func AddHistory(a, b string, result int, related bool) error {
	var history []Entry

	data, err := os.ReadFile(historyFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		data = []byte{}
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &history); err != nil {
			return err
		}
	}

	history = append(history, Entry{A: a, B: b, Result: result, Related: related})

	updated, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(historyFile, updated, 0644)
}

// ShowHistory prints the complete comparison history in reverse
// chronological order -- most recent comparisons first.
func ShowHistory() error {
	var history []Entry

	data, err := os.ReadFile(historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("no history data")
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, &history); err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("no history data")
		return nil
	}

	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		fmt.Printf("------------------------------------------------\n")
		fmt.Printf(" A          : %s\n", entry.A)
		fmt.Printf(" B          : %s\n", entry.B)
		if entry.Related {
			fmt.Printf(" Result     : %d\n", entry.Result)
		} else {
			fmt.Printf(" Result     : unrelated\n")
		}
		fmt.Printf("------------------------------------------------\n\n")
	}
	return nil
}
