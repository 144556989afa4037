package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- Inference (/session, /predict) ---
//
// The detector+model collaborator owns camera capture, face detection and
// model invocation. This side only hands over its file inputs once and then
// pulls one raw score vector per frame.

type SessionReq struct {
	Cascade string `json:"cascade"`
	Model   string `json:"model"`
}
type SessionResp struct {
	SessionID string   `json:"session_id"`
	Classes   []string `json:"classes"`
}

func (h *HTTP) StartSession(ctx context.Context, url, cascade, model string) (*SessionResp, error) {
	b, _ := json.Marshal(SessionReq{Cascade: cascade, Model: model})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/session", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("inference session %s: %s", resp.Status, string(body))
	}

	var out SessionResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("inference session decode: %w", err)
	}
	return &out, nil
}

type PredictReq struct {
	FrameID int `json:"frame_id"`
}
type PredictResp struct {
	Scores    []float64 `json:"scores"`
	FaceFound bool      `json:"face_found"`
	Done      bool      `json:"done"`
}

// Predict fetches the raw class scores for one frame. Scores need not be
// normalized; a frame without a detected face comes back with FaceFound
// false, and Done marks the end of the feed.
func (h *HTTP) Predict(ctx context.Context, url string, frameID int) (*PredictResp, error) {
	b, _ := json.Marshal(PredictReq{FrameID: frameID})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/predict", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("inference predict %s: %s", resp.Status, string(body))
	}

	var out PredictResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("inference predict decode: %w", err)
	}
	return &out, nil
}
