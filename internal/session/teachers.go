package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/domain"
)

type teachersFile struct {
	Teachers []domain.Teacher `json:"teachers"`
}

// LoadTeachers reads teacher credentials from the JSON file at path.
// The file is read once at startup and never reloaded.
func LoadTeachers(path string) ([]domain.Teacher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read teachers file: %w", err)
	}

	var parsed teachersFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse teachers file %s: %w", path, err)
	}
	if len(parsed.Teachers) == 0 {
		return nil, fmt.Errorf("teachers file %s contains no teachers", path)
	}

	for i, t := range parsed.Teachers {
		if t.Username == "" || t.Password == "" {
			return nil, fmt.Errorf("teachers file %s: entry %d is missing username or password", path, i)
		}
	}

	return parsed.Teachers, nil
}
