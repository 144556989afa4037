package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/facelab/ferstab/config"
	"github.com/facelab/ferstab/orchestrator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ferstab",
		Short:         "Temporal stabilizer for facial-expression classifier output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (defaults to config/$CONFIG_ENV/config.yaml)")

	var maxFrames int
	run := &cobra.Command{
		Use:   "run <cascade-file> <model-file>",
		Short: "Process a frame feed and stream stabilized distributions to the renderer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := cfg.Load(configPath)
			if err != nil {
				return err
			}
			conf.Detector.Cascade, conf.Detector.Model = args[0], args[1]

			log := newLogger(conf.Pipeline.LogLvl)
			log.WithFields(logrus.Fields{
				"name":    conf.Pipeline.Name,
				"version": conf.Pipeline.Version,
			}).Info("pipeline starting")

			r, err := orchestrator.NewRunner(conf, log)
			if err != nil {
				return err
			}
			return r.Run(cmd.Context(), maxFrames)
		},
	}
	run.Flags().IntVar(&maxFrames, "frames", 0, "stop after this many frames (0 = run until the feed ends)")
	root.AddCommand(run)
	return root
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
