package orchestrator

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/facelab/ferstab/clients"
	cfg "github.com/facelab/ferstab/config"
	"github.com/facelab/ferstab/stabilizer"
)

// Runner drives one stabilizer session: it pulls raw distributions from the
// inference collaborator, runs them through the pipeline and forwards the
// display vector to the visualization collaborator.
type Runner struct {
	cfg  *cfg.Root
	http *clients.HTTP
	stab *stabilizer.Pipeline
	log  *logrus.Logger
}

func NewRunner(c *cfg.Root, log *logrus.Logger) (*Runner, error) {
	stab, err := stabilizer.NewPipeline(stabilizer.Options{
		NeutralIndex: c.Stabilizer.NeutralIndex,
		BoostFactor:  c.Stabilizer.BoostFactor,
		Alpha:        c.Stabilizer.Alpha,
		HistorySize:  c.Stabilizer.History,
	})
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: c, http: clients.NewHTTP(), stab: stab, log: log}, nil
}

// Run processes frames until the feed reports done, maxFrames is reached
// (0 means unbounded) or ctx is cancelled, then persists the session trace.
// A single producer feeds the pipeline through a channel; the pipeline is
// never written from two goroutines.
func (r *Runner) Run(ctx context.Context, maxFrames int) error {
	infURL := r.cfg.Services.Inference.URL
	sess, err := r.http.StartSession(ctx, infURL, r.cfg.Detector.Cascade, r.cfg.Detector.Model)
	if err != nil {
		return err
	}
	classes := sess.Classes
	if len(classes) == 0 {
		classes = r.cfg.Classes
	}
	r.log.WithFields(logrus.Fields{
		"session": sess.SessionID,
		"classes": len(classes),
	}).Info("inference session started")

	frames := make(chan frame)
	var records []FrameRecord

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(frames)
		for id := 0; maxFrames <= 0 || id < maxFrames; id++ {
			resp, err := r.http.Predict(ctx, infURL, id)
			if err != nil {
				return err
			}
			if resp.Done {
				return nil
			}
			if !resp.FaceFound || len(resp.Scores) == 0 {
				continue
			}
			select {
			case frames <- frame{id: id, scores: resp.Scores}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	g.Go(func() error {
		for f := range frames {
			display := r.stab.Process(f.scores)
			records = append(records, FrameRecord{FrameID: f.id, Raw: f.scores, Display: display})
			if url := r.cfg.Services.Visualization.URL; url != "" {
				_, err := r.http.ShowDisplay(ctx, url, clients.DisplayReq{
					FrameID: f.id,
					Classes: classes,
					Display: display,
					History: r.stab.Window(),
				})
				if err != nil {
					// Rendering must not stall the loop.
					r.log.WithError(err).Warn("visualization update failed")
				}
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	dir, err := persist(r.cfg.Paths.Outputs, r.manifest(len(records), classes), records)
	if err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{"frames": len(records), "dir": dir}).Info("session complete")
	return nil
}

func (r *Runner) manifest(frames int, classes []string) SessionManifest {
	return SessionManifest{
		Classes:    classes,
		Frames:     frames,
		Stabilizer: r.cfg.Stabilizer,
		Detector:   r.cfg.Detector,
	}
}
