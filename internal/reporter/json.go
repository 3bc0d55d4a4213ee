package reporter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Endor-Solutions-Architecture/search-dependencies/internal/models"
)

// WriteJSON saves the label-to-records mapping, pretty-printed, to path.
func WriteJSON(path string, set *models.SearchResultSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}
