package util

import (
	"fmt"
	"os"

	"micfinder/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotMicMap generates an HTML file rendering the mic catalog as a scatter
// map, with the current viewport rectangle overlaid when one is set.
func PlotMicMap(mics []models.MicEvent, bounds *models.BoundingBox, outPath string) error {
	points := make([]opts.GeoData, 0, len(mics))
	for _, mic := range mics {
		points = append(points, opts.GeoData{
			Name:  mic.Venue,
			Value: []float64{mic.Lon, mic.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Mic Finder Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Mics", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if bounds != nil {
		// Close the polygon back at the SW corner.
		box := []opts.GeoData{
			{Name: "SW", Value: []float64{bounds.LngMin, bounds.LatMin}},
			{Name: "NW", Value: []float64{bounds.LngMin, bounds.LatMax}},
			{Name: "NE", Value: []float64{bounds.LngMax, bounds.LatMax}},
			{Name: "SE", Value: []float64{bounds.LngMax, bounds.LatMin}},
			{Name: "SW", Value: []float64{bounds.LngMin, bounds.LatMin}},
		}
		geo.AddSeries("Viewport", types.ChartScatter, box,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Println("Mic map generated: " + outPath)
	return nil
}
