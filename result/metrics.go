package result

import "github.com/gridops/recovery-optimizer/recoverymetrics"

// ReportMetrics pushes the headline series of an assembled Output to reg:
// planned switch operations, each zone's final safety region, and total
// interruptible load shed summed over the dispatch horizon. Kept separate
// from Assemble so that function stays a pure reducer over its arguments.
func ReportMetrics(reg *recoverymetrics.Registry, out *Output) {
	reg.SwitchOperationsPlanned.Observe(float64(out.Summary.TotalOperationsCount))

	for zone, status := range out.Results.FinalZoneStatus {
		if len(status.SafetyRegionPercent) == 0 {
			continue
		}
		last := status.SafetyRegionPercent[len(status.SafetyRegionPercent)-1]
		reg.ZoneSafetyRegionPercent.WithLabelValues(zone).Set(last)
	}

	var totalShed float64
	for _, period := range out.Results.DispatchPlan {
		for _, kw := range period.Shedding {
			totalShed += kw
		}
	}
	reg.LoadShedTotalKW.Set(totalShed)
}
