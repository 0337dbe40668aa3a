package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/georoute/ga"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// strategyTags maps each custom struct tag to its registry lookup.
var strategyTags = map[string]func(string) error{
	"selector": func(s string) error {
		_, err := ga.SelectorByName(s)
		return err
	},
	"crossover": func(s string) error {
		_, err := ga.CrossoverByName(s)
		return err
	},
	"mutator": func(s string) error {
		_, err := ga.MutatorByName(s)
		return err
	},
}

// validatorInstance returns the shared validator with the strategy-name tags
// registered. It panics if a tag cannot be registered.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := registerTags(v, strategyTags); err != nil {
			panic(fmt.Sprintf("config: %v", err))
		}
		validate = v
	})

	return validate
}

// registerTags registers every lookup as a field validator under its tag.
func registerTags(v *validator.Validate, tags map[string]func(string) error) error {
	var errs []error
	for tag, lookup := range tags {
		if err := v.RegisterValidation(tag, registered(lookup)); err != nil {
			errs = append(errs, fmt.Errorf("register %q: %w", tag, err))
		}
	}

	return errors.Join(errs...)
}

// registered turns a registry lookup into a field validator.
func registered(lookup func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return lookup(fl.Field().String()) == nil
	}
}

// Validate checks every section and returns ErrInvalidConfig describing the
// first problem of each failing field.
func (c Config) Validate() error {
	var msgs []string

	if err := validatorInstance().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}

	// Grid entries are plain strings in gridsearch; check them here.
	for _, name := range c.Grid.Selectors {
		if _, err := ga.SelectorByName(name); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	for _, name := range c.Grid.Crossovers {
		if _, err := ga.CrossoverByName(name); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	for _, name := range c.Grid.Mutators {
		if _, err := ga.MutatorByName(name); err != nil {
			msgs = append(msgs, err.Error())
		}
	}

	if c.Matrix.Source == SourceInline {
		if err := checkInlineRows(c.Matrix.Rows); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	if c.Matrix.Source == SourceRandom && !(c.Matrix.Low < c.Matrix.High) {
		msgs = append(msgs, fmt.Sprintf("matrix range [%g, %g) is empty", c.Matrix.Low, c.Matrix.High))
	}

	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return nil
}
