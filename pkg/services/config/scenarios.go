package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioRegistry exposes named projection inputs, e.g.
//
//	[retirement]
//	Capital      = 16000
//	Interest     = 1.07
//	Contribution = 5000
//	Years        = 38
type ScenarioRegistry interface {
	GetScenarios(ctx context.Context) ([]string, error)
	GetScenario(ctx context.Context, name string) (Input, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewScenarioRegistry(path string) (ScenarioRegistry, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios file: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetScenarios(_ context.Context) ([]string, error) {
	var scenarios []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			scenarios = append(scenarios, section.Name())
		}
	}
	return scenarios, nil
}

func (r *iniRegistry) GetScenario(_ context.Context, name string) (Input, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return Input{}, fmt.Errorf("%w: %s", ErrScenarioNotFound, name)
	}

	for _, field := range inputFields {
		if !section.HasKey(strings.ToLower(field)) {
			return Input{}, fmt.Errorf("%w: scenario %s is missing field %s", ErrMalformedInput, name, field)
		}
	}

	var in Input
	if in.Capital, err = parseFloat("capital", section.Key("capital").String()); err != nil {
		return Input{}, err
	}
	if in.Interest, err = parseFloat("interest", section.Key("interest").String()); err != nil {
		return Input{}, err
	}
	if in.Contribution, err = parseFloat("contribution", section.Key("contribution").String()); err != nil {
		return Input{}, err
	}
	if in.Years, err = parseInt("years", section.Key("years").String()); err != nil {
		return Input{}, err
	}
	return in, nil
}
