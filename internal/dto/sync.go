package dto

import "cryptofolio/internal/models"

// SyncResult reports the outcome of one provider sync
type SyncResult struct {
	Provider models.Provider `json:"provider"`
	Status   string          `json:"status"`
	Error    string          `json:"error,omitempty"`
}

// SyncResponse represents the response of a sync request
type SyncResponse struct {
	Results []SyncResult `json:"results"`
}

// NewSyncResponse orders per-provider outcomes by provider display order.
// Failed providers carry the given error message rather than the raw error.
func NewSyncResponse(results map[models.Provider]error, describe func(error) string) SyncResponse {
	out := make([]SyncResult, 0, len(results))
	for _, provider := range models.AllProviders() {
		err, ok := results[provider]
		if !ok {
			continue
		}
		if err != nil {
			out = append(out, SyncResult{Provider: provider, Status: "failed", Error: describe(err)})
			continue
		}
		out = append(out, SyncResult{Provider: provider, Status: "synced"})
	}
	return SyncResponse{Results: out}
}
