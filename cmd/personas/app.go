package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/repositories/personas"
	"github.com/KirkDiggler/historical-personas/internal/repositories/restorespecs"
	"github.com/KirkDiggler/historical-personas/internal/services"
	"github.com/KirkDiggler/historical-personas/internal/services/persona"
	"github.com/KirkDiggler/historical-personas/internal/uuid"
)

type app struct {
	provider *services.Provider
	personas personas.Repository
	restores restorespecs.Repository
	ids      uuid.Generator
	out      io.Writer
	logger   *slog.Logger
}

// result is one printed persona
type result struct {
	Persona   *entities.Persona `json:"persona" yaml:"persona"`
	Warnings  []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Seed      int64             `json:"seed" yaml:"seed"`
	JourneyID string            `json:"journey_id,omitempty" yaml:"journey_id,omitempty"`
	Trail     []entities.Crumb  `json:"trail,omitempty" yaml:"trail,omitempty"`
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	if a.ids == nil {
		a.ids = uuid.NewGoogleUUIDGenerator()
	}
	switch command {
	case "generate":
		return a.generate(ctx, args)
	case "open":
		return a.open(ctx, args)
	case "back":
		return a.back(ctx, args)
	case "show":
		return a.show(ctx, args)
	case "list":
		return a.list(ctx)
	case "share":
		return a.share(ctx, args)
	}
	return perr.InvalidArgumentf("unknown command %q", command)
}

func (a *app) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	date := fs.String("date", "", "free-text date, e.g. 1348 or 200 BC")
	location := fs.String("location", "", "free-text location")
	seed := fs.Int64("seed", 0, "seed; 0 draws a fresh one. Batches use seed+i")
	count := fs.Int("count", 1, "number of personas")
	specPath := fs.String("spec", "", "YAML or JSON character specification file")
	restoreID := fs.String("restore", "", "restore spec ID to apply once")
	format := fs.String("format", "json", "json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 1 {
		return perr.InvalidArgumentf("count must be positive, got %d", *count)
	}

	spec, err := loadSpec(*specPath)
	if err != nil {
		return err
	}

	var restore *entities.RestoreSpec
	if *restoreID != "" {
		restore, err = a.restores.Get(ctx, *restoreID)
		switch {
		case perr.IsNotFound(err):
			a.logger.Warn("restore spec not found or expired", "restore_id", *restoreID)
		case err != nil:
			return err
		}
	}

	results := make([]result, *count)
	consumed := make([]bool, *count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < *count; i++ {
		i := i
		g.Go(func() error {
			s := *seed
			if s != 0 {
				s += int64(i)
			}
			out, err := a.provider.PersonaService.Create(gctx, &persona.GenerateInput{
				Date:     *date,
				Location: *location,
				Seed:     s,
				Spec:     spec,
				Restore:  restore,
			})
			if err != nil {
				return err
			}
			results[i] = result{Persona: out.Persona, Warnings: out.Warnings, Seed: out.Seed}
			consumed[i] = out.RestoreConsumed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, c := range consumed {
		if c {
			if _, err := a.restores.Consume(ctx, *restoreID); err != nil && !perr.IsNotFound(err) {
				return err
			}
			break
		}
	}

	if *count == 1 {
		return write(a.out, *format, results[0])
	}
	return write(a.out, *format, results)
}

func (a *app) open(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	id := fs.String("id", "", "persona ID")
	member := fs.Int("member", 0, "index into the persona's family list")
	seed := fs.Int64("seed", 0, "seed; 0 draws a fresh one")
	journeyID := fs.String("journey", "", "journey to extend; empty starts one at the persona")
	format := fs.String("format", "json", "json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *journeyID == "" {
		origin, err := a.provider.PersonaService.Get(ctx, *id)
		if err != nil {
			return err
		}
		j, err := a.provider.JourneyService.Start(ctx, origin)
		if err != nil {
			return err
		}
		*journeyID = j.ID
	}

	out, err := a.provider.PersonaService.Open(ctx, &persona.OpenInput{PersonaID: *id, MemberIndex: *member, Seed: *seed})
	if err != nil {
		return err
	}
	j, err := a.provider.JourneyService.Visit(ctx, *journeyID, out.Persona)
	if err != nil {
		return err
	}

	return write(a.out, *format, result{
		Persona:   out.Persona,
		Warnings:  out.Warnings,
		Seed:      out.Seed,
		JourneyID: j.ID,
		Trail:     j.Crumbs,
	})
}

func (a *app) back(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("back", flag.ContinueOnError)
	journeyID := fs.String("journey", "", "journey ID")
	format := fs.String("format", "json", "json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	j, err := a.provider.JourneyService.Back(ctx, *journeyID)
	if err != nil {
		return err
	}
	current, _ := j.Current()
	p, err := a.provider.PersonaService.Get(ctx, current.PersonaID)
	if err != nil {
		return err
	}
	return write(a.out, *format, result{Persona: p, Seed: p.Seed, JourneyID: j.ID, Trail: j.Crumbs})
}

func (a *app) show(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	id := fs.String("id", "", "persona ID")
	format := fs.String("format", "json", "json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.provider.PersonaService.Get(ctx, *id)
	if err != nil {
		return err
	}
	return write(a.out, *format, result{Persona: p, Seed: p.Seed})
}

func (a *app) list(ctx context.Context) error {
	all, err := a.personas.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range all {
		fmt.Fprintf(a.out, "%s  %-28s %6d  %-20s %s\n",
			p.ID, p.Character.Name, p.Year, p.Location, humanize.Time(p.CreatedAt))
	}
	return nil
}

func (a *app) share(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	date := fs.String("date", "", "free-text date")
	location := fs.String("location", "", "free-text location")
	seed := fs.Int64("seed", 0, "seed to replay")
	specPath := fs.String("spec", "", "YAML or JSON character specification file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := loadSpec(*specPath)
	if err != nil {
		return err
	}
	restore := &entities.RestoreSpec{
		ID:       a.ids.New(),
		Date:     *date,
		Location: *location,
		Seed:     *seed,
		Spec:     *spec.Merge(nil),
	}
	if err := a.restores.Save(ctx, restore); err != nil {
		return err
	}
	fmt.Fprintln(a.out, restore.ID)
	return nil
}

// loadSpec reads a specification file. YAML is a superset of JSON, so one
// decoder serves both.
func loadSpec(path string) (*entities.CharacterSpecification, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeInvalidArgument, "read spec file")
	}
	spec := &entities.CharacterSpecification{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeInvalidArgument, "decode spec file")
	}
	return spec, nil
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return perr.InvalidArgumentf("unknown format %q", format)
}
