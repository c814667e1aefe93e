// Command geomdump builds a detector geometry from a registered layout
// and prints its element hierarchy.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"tpc-geom/internal/chanmap"
	"tpc-geom/internal/detspec"
	"tpc-geom/internal/geocore"
	"tpc-geom/internal/geoid"
	"tpc-geom/internal/sorter"
	"tpc-geom/internal/version"
)

func main() {
	specName := flag.String("spec", "standard", "Registered detector layout name")
	wires := flag.Bool("wires", false, "Also list every wire")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("geomdump %s (%s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		return
	}

	cfg, ok := detspec.Get(*specName)
	if !ok {
		names := detspec.List()
		sort.Strings(names)
		fmt.Fprintf(os.Stderr, "Unknown layout %q; known layouts: %s\n",
			*specName, strings.Join(names, ", "))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid layout %q: %v\n", *specName, err)
		os.Exit(1)
	}

	core := geocore.New(geocore.Config{})
	if err := core.Load(cfg.BuildTree(), sorter.NewStandard(), chanmap.NewStandard()); err != nil {
		fmt.Fprintf(os.Stderr, "Geometry load failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Layout %q: %d enclosures, %d channels, %d aux detectors\n",
		cfg.Name(), core.NEnclosures(), core.NChannels(), core.NAuxDets())

	encs := core.EveryEnclosureID()
	for encID, ok := encs.Next(); ok; encID, ok = encs.Next() {
		enc, err := core.Enclosure(encID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Lookup failed for %s: %v\n", encID, err)
			os.Exit(1)
		}
		fmt.Printf("%s  center=(%.1f, %.1f, %.1f)  modules=%d opdets=%d\n",
			encID, enc.Center.X, enc.Center.Y, enc.Center.Z,
			core.NModules(encID), core.NOpDets(encID))

		for m := 0; m < core.NModules(encID); m++ {
			modID := geoid.ModuleID{EnclosureID: encID, Module: uint32(m)}
			mod, err := core.Module(modID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Lookup failed for %s: %v\n", modID, err)
				os.Exit(1)
			}
			fmt.Printf("  %s  center=(%.1f, %.1f, %.1f)  drift=%s planes=%d\n",
				modID, mod.Center.X, mod.Center.Y, mod.Center.Z,
				mod.DriftDir, mod.NPlanes())

			for p := 0; p < mod.NPlanes(); p++ {
				planeID := geoid.PlaneID{ModuleID: modID, Plane: uint32(p)}
				plane, err := core.Plane(planeID)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Lookup failed for %s: %v\n", planeID, err)
					os.Exit(1)
				}
				view, _ := core.PlaneView(planeID)
				signal, _ := core.PlaneSignalType(planeID)
				fmt.Printf("    %s  wires=%d pitch=%.3f angle=%.4f view=%s signal=%s\n",
					planeID, plane.NWires(), plane.WirePitch(), plane.WireAngle(),
					view, signal)
			}
		}
	}

	if *wires {
		fmt.Println()
		it := core.EveryWireID()
		for wid, ok := it.Next(); ok; wid, ok = it.Next() {
			w, err := core.Wire(wid)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Lookup failed for %s: %v\n", wid, err)
				os.Exit(1)
			}
			start, end := w.Endpoints()
			fmt.Printf("%s  (%.2f, %.2f, %.2f) -> (%.2f, %.2f, %.2f)\n",
				wid, start.X, start.Y, start.Z, end.X, end.Y, end.Z)
		}
	}
}
