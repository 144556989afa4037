package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- Visualization (/display) ---

type DisplayReq struct {
	FrameID int         `json:"frame_id"`
	Classes []string    `json:"classes"`
	Display []float64   `json:"display"`
	History [][]float64 `json:"history,omitempty"`
}

type DisplayResp struct{ Status string }

// ShowDisplay hands one display vector to the renderer, along with the full
// history window for time-series lines.
func (h *HTTP) ShowDisplay(ctx context.Context, url string, req DisplayReq) (*DisplayResp, error) {
	b, _ := json.Marshal(req)
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/display", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("viz display %s: %s", resp.Status, string(body))
	}

	var out DisplayResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("viz display decode: %w", err)
	}
	return &out, nil
}
