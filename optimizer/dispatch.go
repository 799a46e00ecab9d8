package optimizer

import (
	"strconv"

	"github.com/gridops/recovery-optimizer/model"
	"github.com/gridops/recovery-optimizer/simplex"
	"github.com/gridops/recovery-optimizer/topology"
)

// addSwitchSemantics adds the change-tracking, availability-lockout,
// breaker/isolator coupling and no-net-deconstruction constraints.
func addSwitchSemantics(m *Model, tg *topology.Graph) error {
	p, idx, in := m.Problem, m.Index, m.Input

	unavailableZoneLineNodes := map[string]bool{}
	for _, zl := range in.ZoneLines {
		if !zl.IsAvailable() {
			unavailableZoneLineNodes[zl.ConnNode] = true
		}
	}

	totalSVar := map[int]float64{}
	totalInitial := 0.0
	for _, name := range idx.SwitchNames {
		sw := in.Switches[name]
		s, op := idx.SVar[name], idx.OpVar[name]

		if sw.InitialState == 0 {
			p.AddConstraint("change_"+name, map[int]float64{op: 1, s: -1}, simplex.GE, 0)
		} else {
			p.AddConstraint("change_"+name, map[int]float64{op: 1, s: 1}, simplex.GE, 1)
		}

		frozen := !sw.IsAvailable() || unavailableZoneLineNodes[sw.Nodes[0]] || unavailableZoneLineNodes[sw.Nodes[1]]
		if frozen {
			p.AddConstraint("frozen_"+name, map[int]float64{s: 1}, simplex.EQ, float64(sw.InitialState))
		}

		totalSVar[s] = 1
		totalInitial += float64(sw.InitialState)
	}
	p.AddConstraint("no_net_deconstruction", totalSVar, simplex.GE, totalInitial)

	for _, name := range idx.SwitchNames {
		sw := in.Switches[name]
		if sw.EffectiveType() != model.SwitchTypeBreaker {
			continue
		}
		b := idx.SVar[name]
		for _, node := range sw.Nodes {
			names, err := tg.SwitchesAt(node)
			if err != nil {
				return err
			}
			terms := map[int]float64{}
			for _, other := range names {
				if other == name {
					continue
				}
				osw, err := tg.Switch(other)
				if err != nil {
					return err
				}
				if !osw.IsBreaker {
					terms[idx.SVar[other]] += 1
				}
			}
			if len(terms) == 0 {
				// No isolator shares this endpoint with the breaker, so
				// there is nothing to couple it to; skip rather than emit
				// a constraint that would force S[b]=0.
				continue
			}
			terms[b] -= 1
			p.AddConstraint("coupling_"+name+"_"+node, terms, simplex.GE, 0)
		}
	}

	return nil
}

// addPowerBalance adds the zone power balance, margin and m_min
// constraints.
func addPowerBalance(m *Model) error {
	p, idx, in := m.Problem, m.Index, m.Input
	H := idx.Horizon

	opNames := sortedKeysOperating(in.OperatingUnits)
	bkNames := sortedKeysBackup(in.BackupUnits)
	hyNames := sortedKeysHydro(in.HydroUnits)
	esNames := sortedKeysStorage(in.StorageUnits)
	ilNames := sortedKeysShed(in.InterruptibleLoads)
	tNames := sortedKeysTransformer(in.Transformers)

	for _, z := range idx.Zones {
		zone := in.Zones[z]
		for k := 0; k < H; k++ {
			terms := map[int]float64{idx.Margin[z][k]: 1}
			rhs := zone.Capacity - zone.FixedLoad[k]

			for _, name := range opNames {
				u := in.OperatingUnits[name]
				if u.Zone != z {
					continue
				}
				terms[idx.POp[name][k]] -= u.Sensitivity
				rhs += u.PCurrent * u.Sensitivity
			}
			for _, name := range bkNames {
				u := in.BackupUnits[name]
				if u.Zone != z {
					continue
				}
				terms[idx.PBk[name][k]] -= u.Sensitivity
			}
			for _, name := range hyNames {
				u := in.HydroUnits[name]
				if u.Zone != z {
					continue
				}
				terms[idx.PHy[name][k]] -= u.Sensitivity
			}
			for _, name := range esNames {
				u := in.StorageUnits[name]
				if u.Zone != z {
					continue
				}
				terms[idx.PEs[name][k]] -= u.Sensitivity
				rhs += u.PCurrent * u.Sensitivity
			}
			for _, name := range tNames {
				t := in.Transformers[name]
				sens, ok := t.Sensitivity[z]
				if !ok {
					continue
				}
				terms[idx.YVar[name][z]] += t.Load[k] * sens
			}
			for _, name := range ilNames {
				u := in.InterruptibleLoads[name]
				if u.Zone != z {
					continue
				}
				terms[idx.PSh[name][k]] -= 1
			}

			p.AddConstraint("balance_power_"+z+"_"+strconv.Itoa(k), terms, simplex.EQ, rhs)
			p.AddConstraint("margin_cap_"+z+"_"+strconv.Itoa(k),
				map[int]float64{idx.MMin: zone.Capacity, idx.Margin[z][k]: -1}, simplex.LE, 0)
		}
	}
	return nil
}

// addDynamics adds the backup-unit startup chain and the storage
// state-of-charge recursion.
func addDynamics(m *Model) error {
	p, idx, in := m.Problem, m.Index, m.Input
	H := idx.Horizon

	for _, name := range sortedKeysBackup(in.BackupUnits) {
		u := in.BackupUnits[name]
		ustart, uop, pbk := idx.UStart[name], idx.UOp[name], idx.PBk[name]
		for k := 0; k < H; k++ {
			ks := strconv.Itoa(k)
			p.AddConstraint("bk_mode_"+name+"_"+ks, map[int]float64{ustart[k]: 1, uop[k]: 1}, simplex.LE, 1)

			if k == 0 {
				p.AddConstraint("bk_init_uop_"+name, map[int]float64{uop[0]: 1}, simplex.EQ, 0)
				p.AddConstraint("bk_init_pbk_"+name, map[int]float64{pbk[0]: 1}, simplex.EQ, 0)
				continue
			}
			p.AddConstraint("bk_monotone_"+name+"_"+ks,
				map[int]float64{uop[k]: 1, uop[k-1]: -1}, simplex.GE, 0)
			p.AddConstraint("bk_pbk_"+name+"_"+ks,
				map[int]float64{pbk[k]: 1, ustart[k-1]: -u.PMin, uop[k-1]: -u.PMax}, simplex.EQ, 0)
			p.AddConstraint("bk_chain_"+name+"_"+ks,
				map[int]float64{uop[k]: 1, ustart[k-1]: -1, uop[k-1]: -1}, simplex.EQ, 0)
		}
	}

	for _, name := range sortedKeysStorage(in.StorageUnits) {
		u := in.StorageUnits[name]
		soc, pes := idx.SOC[name], idx.PEs[name]
		p.AddConstraint("soc_init_"+name, map[int]float64{soc[0]: 1}, simplex.EQ, u.SOCInitial)
		for k := 1; k < H; k++ {
			ks := strconv.Itoa(k)
			p.AddConstraint("soc_step_"+name+"_"+ks,
				map[int]float64{soc[k]: 1, soc[k-1]: -1, pes[k]: 1}, simplex.EQ, 0)
		}
	}

	return nil
}
