// Command chandump builds a detector geometry from a registered layout
// and prints its channel mapping.
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
	perChannel := flag.Bool("channels", false, "Also list every channel")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("chandump %s (%s, built %s)\n",
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

	core := geocore.New(geocore.Config{})
	if err := core.Load(cfg.BuildTree(), sorter.NewStandard(), chanmap.NewStandard()); err != nil {
		fmt.Fprintf(os.Stderr, "Geometry load failed: %v\n", err)
		os.Exit(1)
	}

	views, err := core.Views()
	if err != nil {
		fmt.Fprintf(os.Stderr, "View query failed: %v\n", err)
		os.Exit(1)
	}
	viewNames := make([]string, len(views))
	for i, v := range views {
		viewNames[i] = v.String()
	}
	fmt.Printf("Layout %q: %d channels, views: %s\n",
		cfg.Name(), core.NChannels(), strings.Join(viewNames, " "))

	planes, err := core.PlaneIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Plane query failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%-20s %8s %10s %10s %12s\n", "Plane", "Wires", "First ch", "Last ch", "Signal")
	for _, pid := range planes {
		n := core.NWires(pid)
		first, err := core.PlaneWireToChannel(geoid.WireID{PlaneID: pid, Wire: 0})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Channel query failed for %s: %v\n", pid, err)
			os.Exit(1)
		}
		last, err := core.PlaneWireToChannel(geoid.WireID{PlaneID: pid, Wire: uint32(n - 1)})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Channel query failed for %s: %v\n", pid, err)
			os.Exit(1)
		}
		signal, _ := core.PlaneSignalType(pid)
		fmt.Printf("%-20s %8d %10d %10d %12s\n", pid, n, first, last, signal)
	}

	if *perChannel {
		fmt.Println()
		for ch := geoid.ChannelID(0); int(ch) < core.NChannels(); ch++ {
			wires, err := core.ChannelToWire(ch)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Wire query failed for channel %d: %v\n", ch, err)
				os.Exit(1)
			}
			signal, _ := core.SignalType(ch)
			view, _ := core.View(ch)
			parts := make([]string, len(wires))
			for i, w := range wires {
				parts[i] = w.String()
			}
			fmt.Printf("ch %5d  %-10s %-3s %s\n", ch, signal, view, strings.Join(parts, "; "))
		}
	}
}
