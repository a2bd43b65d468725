package service

import (
	"encoding/json"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// The view cache stores the list views as serialized JSON so the cache port
// stays oblivious to domain types.

func encodeProjectList(list []*domain.Project) ([]byte, error) {
	return json.Marshal(list)
}

func decodeProjectList(payload []byte) ([]*domain.Project, error) {
	var list []*domain.Project
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, err
	}
	return list, nil
}
