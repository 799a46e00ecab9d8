package model

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() { validate = validator.New() })
	return validate
}

// Validate runs struct-tag validation (required fields, numeric ranges,
// enum membership) followed by referential and cross-field checks a tag
// cannot express: node/zone existence, series-length-against-horizon
// consistency, and ordering between paired bounds. It returns every issue
// found, wrapped as a *ValidationError, rather than stopping at the
// first.
func (in Input) Validate() error {
	ve := &ValidationError{}

	if err := structValidator().Struct(in); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				ve.add(fe.Namespace(), fmt.Errorf("%s", fe.Tag()))
			}
		} else {
			ve.add("Input", err)
		}
	}

	nodes := make(map[string]struct{}, len(in.SubstationNodes))
	for _, n := range in.SubstationNodes {
		nodes[n] = struct{}{}
	}
	requireNode := func(field, node string) {
		if _, ok := nodes[node]; !ok {
			ve.add(field, fmt.Errorf("%w: %q", ErrUnknownNode, node))
		}
	}
	requireZone := func(field, zone string) {
		if _, ok := in.Zones[zone]; !ok {
			ve.add(field, fmt.Errorf("%w: %q", ErrUnknownZone, zone))
		}
	}
	requireSeries := func(field string, n int) {
		if n != in.Horizon {
			ve.add(field, fmt.Errorf("%w: have %d, want %d", ErrSeriesLength, n, in.Horizon))
		}
	}

	for name, z := range in.Zones {
		requireSeries(fmt.Sprintf("Zones[%s].FixedLoad", name), len(z.FixedLoad))
	}

	for name, t := range in.Transformers {
		requireNode(fmt.Sprintf("Transformers[%s].ConnNode", name), t.ConnNode)
		requireSeries(fmt.Sprintf("Transformers[%s].Load", name), len(t.Load))
		for zone := range t.Sensitivity {
			requireZone(fmt.Sprintf("Transformers[%s].Sensitivity", name), zone)
		}
		for zone := range t.Cost {
			requireZone(fmt.Sprintf("Transformers[%s].Cost", name), zone)
		}
		if t.Allocate != nil {
			requireZone(fmt.Sprintf("Transformers[%s].Allocate", name), *t.Allocate)
		}
	}

	for name, zl := range in.ZoneLines {
		requireZone(fmt.Sprintf("ZoneLines[%s].Zone", name), zl.Zone)
		requireNode(fmt.Sprintf("ZoneLines[%s].ConnNode", name), zl.ConnNode)
	}

	for name, sw := range in.Switches {
		requireNode(fmt.Sprintf("Switches[%s].Nodes[0]", name), sw.Nodes[0])
		requireNode(fmt.Sprintf("Switches[%s].Nodes[1]", name), sw.Nodes[1])
	}

	for name, u := range in.OperatingUnits {
		requireZone(fmt.Sprintf("OperatingUnits[%s].Zone", name), u.Zone)
		if u.PMin > u.PMax {
			ve.add(fmt.Sprintf("OperatingUnits[%s]", name), ErrInvertedBounds)
		}
	}
	for name, u := range in.BackupUnits {
		requireZone(fmt.Sprintf("BackupUnits[%s].Zone", name), u.Zone)
		if u.PMin > u.PMax {
			ve.add(fmt.Sprintf("BackupUnits[%s]", name), ErrInvertedBounds)
		}
	}
	for name, u := range in.HydroUnits {
		requireZone(fmt.Sprintf("HydroUnits[%s].Zone", name), u.Zone)
	}
	for name, u := range in.StorageUnits {
		requireZone(fmt.Sprintf("StorageUnits[%s].Zone", name), u.Zone)
		if u.SOCMin > u.SOCMax {
			ve.add(fmt.Sprintf("StorageUnits[%s]", name), ErrInvertedBounds)
		} else if u.SOCInitial < u.SOCMin || u.SOCInitial > u.SOCMax {
			ve.add(fmt.Sprintf("StorageUnits[%s].SOCInitial", name), ErrSOCOutOfRange)
		}
	}
	for name, u := range in.InterruptibleLoads {
		requireZone(fmt.Sprintf("InterruptibleLoads[%s].Zone", name), u.Zone)
	}

	if ve.empty() {
		return nil
	}
	return ve
}
