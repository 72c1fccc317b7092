package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"wildfire/internal/fire"
	"wildfire/internal/scenario"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l kvList) overrides() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Printf("ignoring override %q: want key=value", kv)
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("firerun: ")

	path := flag.String("scenario", "", "scenario YAML file")
	preset := flag.String("preset", "wildfire", "built-in scenario used when -scenario is empty")
	days := flag.Int("days", 7, "simulated days to run")
	seed := flag.Int64("seed", 0, "seed override; 0 keeps the scenario seed")
	speeds := flag.String("sweep-speeds", "", "comma separated wind speeds (mph) to sweep")
	directions := flag.String("sweep-directions", "", "comma separated wind directions (degrees) to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel sweep runs")
	list := flag.Bool("list", false, "list built-in scenarios and exit")
	var set kvList
	flag.Var(&set, "set", "engine override in key=value form (repeatable)")
	flag.Parse()

	if *list {
		for _, name := range scenario.PresetNames() {
			sc, _ := scenario.Preset(name)
			fmt.Println(sc.Describe())
		}
		return
	}

	sc, err := loadScenario(*path, *preset)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *seed != 0 {
		sc.Seed = *seed
	}
	overrides := set.overrides()

	speedList, err := parseFloats(*speeds)
	if err != nil {
		log.Fatalf("-sweep-speeds: %v", err)
	}
	directionList, err := parseFloats(*directions)
	if err != nil {
		log.Fatalf("-sweep-directions: %v", err)
	}

	fmt.Printf("Scenario: %s\n", sc.Describe())
	if len(speedList) > 0 || len(directionList) > 0 {
		wind := sc.WindFor(overrides)
		if len(speedList) == 0 {
			speedList = []float64{wind.Speed}
		}
		if len(directionList) == 0 {
			directionList = []float64{wind.Direction}
		}
		results, err := runSweep(sc, overrides, sweepWinds(speedList, directionList), *days, *workers)
		if err != nil {
			log.Fatalf("%v", err)
		}
		printSweep(os.Stdout, results)
		return
	}

	sim, err := scenario.NewSimulation(sc, overrides)
	if err != nil {
		log.Fatalf("%v", err)
	}
	printSummary(os.Stdout, sim.Engine().Zones(), fire.RunDays(sim, *days))
}

func loadScenario(path, preset string) (*scenario.Scenario, error) {
	if path != "" {
		return scenario.Load(path)
	}
	sc, ok := scenario.Preset(preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(scenario.PresetNames(), ", "))
	}
	return sc, nil
}
