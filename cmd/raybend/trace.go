package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradientoptics/raybend/internal/raybend"
)

var traceCmd = &cobra.Command{
	Use:   "trace <scenario.json>",
	Short: "Trace a ray through the media of a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := raybend.LoadScenario(args[0])
		if err != nil {
			return err
		}
		field, err := sc.BuildField()
		if err != nil {
			return err
		}
		path, err := sc.BuildPath()
		if err != nil {
			return err
		}

		pr := raybend.Propagator{Field: field, StepDistance: sc.StepDistance}
		pr.TracePath(path)

		for i, n := range path.Nodes {
			fmt.Printf("%5d  (%10.4f %10.4f %10.4f)  ior %.6f -> %.6f  %s\n",
				i, n.Location.X, n.Location.Y, n.Location.Z, n.IoRIn, n.IoROut, n.Change)
		}
		logger.Info("trace finished",
			"scenario", args[0],
			"nodes", path.Size(),
			"deviation_rad", path.TotalDeviation())
		if path.Size() > 0 {
			last := path.Nodes[path.Size()-1]
			logger.Debug("last node", "change", last.Change.String(), "ior", last.IoROut)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
