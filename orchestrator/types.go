package orchestrator

// FrameRecord is the per-frame trace persisted at session end.
type FrameRecord struct {
	FrameID int       `json:"frame_id"`
	Raw     []float64 `json:"raw"`
	Display []float64 `json:"display"`
}

// frame is the producer→consumer handoff unit.
type frame struct {
	id     int
	scores []float64
}
