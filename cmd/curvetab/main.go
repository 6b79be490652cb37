// Prints per-level required-point tables for skill definitions.
//
// Usage:
//
//	go run ./cmd/curvetab defs.yaml             # table for every skill
//	go run ./cmd/curvetab --levels 40 defs.yaml # bound uncapped skills at 40
//
// The definitions path can also come from the STATKIT_DEFS environment
// variable; an explicit argument wins.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/udisondev/statkit/config"
	"github.com/udisondev/statkit/skill"
)

const defaultLevels = 20

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	levels := uint64(defaultLevels)
	path := os.Getenv("STATKIT_DEFS")

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--levels":
			i++
			if i >= len(args) {
				return fmt.Errorf("--levels requires a value")
			}
			n, err := strconv.ParseUint(args[i], 10, 16)
			if err != nil || n == 0 {
				return fmt.Errorf("invalid --levels value %q", args[i])
			}
			levels = n
		default:
			path = args[i]
		}
	}

	if path == "" {
		return fmt.Errorf("no definitions file (pass a path or set STATKIT_DEFS)")
	}

	defs, err := config.Load(path)
	if err != nil {
		return err
	}
	if len(defs.Skills) == 0 {
		return fmt.Errorf("no skills in %s", path)
	}

	for _, def := range defs.Skills {
		s, err := def.Build()
		if err != nil {
			return err
		}
		printTable(def.Name, s, levels)
	}
	return nil
}

func printTable(name string, s *skill.Skill, levels uint64) {
	curve := s.Curve()
	x, y, z := curve.Factors()

	top := levels
	if lim := uint64(s.MaxLevel()); lim > 0 && lim < top {
		top = lim
	}

	fmt.Printf("\n%s (%s x=%d y=%d z=%d", name, curve.Formula(), x, y, z)
	if s.MaxLevel() > 0 {
		fmt.Printf(" cap=%d", s.MaxLevel())
	}
	fmt.Println(")")
	fmt.Println("level  points")

	for lvl := uint64(1); lvl <= top; lvl++ {
		required := curve.PointsRequired(lvl)
		if required == skill.PointMax {
			fmt.Printf("%5d  MAX\n", lvl)
			continue
		}
		fmt.Printf("%5d  %d\n", lvl, required)
	}
}
