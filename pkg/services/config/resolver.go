package config

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Source tells which input a resolved projection came from.
type Source string

const (
	SourceArguments Source = "arguments"
	SourceFile      Source = "file"
	SourceScenario  Source = "scenario"
	SourceDefaults  Source = "defaults"
)

type Request struct {
	Args          []string
	ConfigPath    string
	ScenariosPath string
	Scenario      string
}

type Resolved struct {
	Input  Input
	Source Source
}

// Resolve picks the projection input with the precedence
// arguments > config file > scenario > defaults. The first source that is
// present is the only one consulted: when it is malformed the call fails
// instead of falling back, so a run never mixes values from several sources.
func Resolve(ctx context.Context, req Request) (Resolved, error) {
	logger := zerolog.Ctx(ctx)

	var (
		res Resolved
		err error
	)
	switch {
	case len(req.Args) > 0:
		res.Source = SourceArguments
		res.Input, err = ParseArgs(req.Args)
	case req.ConfigPath != "":
		res.Source = SourceFile
		res.Input, err = LoadInput(req.ConfigPath)
	case req.Scenario != "":
		res.Source = SourceScenario
		res.Input, err = loadScenario(ctx, req.ScenariosPath, req.Scenario)
	default:
		res.Source = SourceDefaults
		res.Input = DefaultInput()
	}
	if err != nil {
		return Resolved{}, err
	}

	if err := res.Input.Validate(); err != nil {
		return Resolved{}, err
	}

	logger.Debug().
		Str("source", string(res.Source)).
		Interface("input", res.Input).
		Msg("projection input resolved")
	return res, nil
}

func loadScenario(ctx context.Context, path, name string) (Input, error) {
	if path == "" {
		return Input{}, fmt.Errorf("%w: scenario %s requested without a scenarios file", ErrMalformedInput, name)
	}
	registry, err := NewScenarioRegistry(path)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return registry.GetScenario(ctx, name)
}
