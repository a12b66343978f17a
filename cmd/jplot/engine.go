package main

import (
	"fmt"
	"time"

	"github.com/joshuapare/modfloat/arena"
	"github.com/joshuapare/modfloat/elem"
	"github.com/joshuapare/modfloat/internal/config"
	"github.com/joshuapare/modfloat/internal/logger"
	"github.com/joshuapare/modfloat/modular"
	"github.com/joshuapare/modfloat/poly"
)

// engine bundles everything a j evaluation needs, built in one Space.
type engine struct {
	sp     *poly.Space
	tables *elem.Tables
	series poly.Poly
	eval   *modular.Evaluator
}

func newEngine(c *config.Config) (*engine, error) {
	began := time.Now()
	opts := append(c.ArenaOptions(), arena.WithLogger(logger.L))
	sp := poly.NewSpace(c.Arena.Capacity, opts...)

	topts := c.TableOptions()
	topts.Logger = logger.L
	tables, err := elem.Build(sp, topts)
	if err != nil {
		return nil, fmt.Errorf("build tables: %w", err)
	}

	series, err := modular.JSeries(sp, c.Series.Terms)
	if err != nil {
		return nil, fmt.Errorf("j series: %w", err)
	}
	ev, err := modular.NewEvaluator(sp, series, tables)
	if err != nil {
		return nil, err
	}

	logger.Debug("engine ready",
		"terms", c.Series.Terms,
		"elapsed", time.Since(began),
		"live_slots", sp.Stats().LiveSlots)
	return &engine{sp: sp, tables: tables, series: series, eval: ev}, nil
}
