package gamerpower

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// statusReply is what the API sends instead of an array when nothing matches the filter.
type statusReply struct {
	Status        int    `json:"status"`
	StatusMessage string `json:"status_message"`
}

// Decode turns a giveaways payload into records. Field names may carry a leading "_"
// which is stripped before mapping. A status reply decodes to an empty set.
func Decode(payload []byte) ([]models.GiveawayRecord, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}

	if trimmed[0] == '{' {
		var reply statusReply
		if err := json.Unmarshal(trimmed, &reply); err != nil || reply.StatusMessage == "" {
			return nil, fmt.Errorf("%w: expected an array of giveaways", ErrDecode)
		}
		return []models.GiveawayRecord{}, nil
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	records := make([]models.GiveawayRecord, 0, len(raw))
	for i, fields := range raw {
		normalised := make(map[string]json.RawMessage, len(fields))
		for k, v := range fields {
			normalised[strings.TrimPrefix(k, "_")] = v
		}
		b, err := json.Marshal(normalised)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrDecode, i, err)
		}
		var r models.GiveawayRecord
		if err := json.Unmarshal(b, &r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrDecode, i, err)
		}
		if strings.TrimSpace(r.Worth) == "" {
			r.Worth = models.WorthMissing
		}
		records = append(records, r)
	}
	return records, nil
}
