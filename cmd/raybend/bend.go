package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/gradientoptics/raybend/internal/atmosphere"
)

var bendCmd = &cobra.Command{
	Use:   "bend",
	Short: "Compute atmospheric refraction bending for a sightline",
	RunE: func(cmd *cobra.Command, args []string) error {
		soundingPath := envOrFlag(cmd, "sounding", "RAYBEND_SOUNDING")
		elevDeg, _ := cmd.Flags().GetFloat64("elevation")
		stationM, _ := cmd.Flags().GetFloat64("station")
		topM, _ := cmd.Flags().GetFloat64("top")
		steps, _ := cmd.Flags().GetInt("steps")

		var snd atmosphere.Sounding
		if soundingPath != "" {
			var err error
			snd, err = atmosphere.LoadSounding(soundingPath)
			if err != nil {
				return err
			}
			logger.Debug("loaded sounding", "path", soundingPath, "levels", len(snd.Levels))
		} else {
			snd = atmosphere.ISA(topM, 250)
			logger.Debug("using ISA standard atmosphere", "levels", len(snd.Levels))
		}
		prof, err := atmosphere.NewProfile(snd)
		if err != nil {
			return err
		}

		bend := atmosphere.BendingAngle(prof, stationM, elevDeg*math.Pi/180, topM, steps)
		arcsec := bend * (180 / math.Pi) * 3600
		logger.Info("bending computed",
			"station", snd.Station,
			"elevation_deg", elevDeg,
			"bending_arcsec", arcsec)
		fmt.Printf("refraction bending at %.2f deg elevation: %.3f arcsec\n", elevDeg, arcsec)
		return nil
	},
}

func init() {
	bendCmd.Flags().String("sounding", "", "YAML sounding file (default: ISA standard atmosphere)")
	bendCmd.Flags().Float64("elevation", 10, "Apparent elevation angle in degrees")
	bendCmd.Flags().Float64("station", 0, "Station height in meters")
	bendCmd.Flags().Float64("top", 30000, "Top of the integration in meters")
	bendCmd.Flags().Int("steps", 2000, "RK4 step count")
	rootCmd.AddCommand(bendCmd)
}
