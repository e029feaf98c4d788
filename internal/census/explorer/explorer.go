// Package explorer runs one census command end to end: parse the arguments,
// load the dataset, dispatch to the use case and print the result as JSON.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"menagerie/internal/census/command"
	"menagerie/internal/census/mapper"
	"menagerie/internal/census/models"
	"menagerie/internal/census/presenter"
	dErrors "menagerie/pkg/domain-errors"
)

// ErrNoCommand is returned when the first argument is neither --filter=<p>
// nor --count.
var ErrNoCommand = dErrors.New(dErrors.CodeBadRequest,
	"Please specify what you want to do: search for animals (--filter=pattern) or count elements (--count)")

// UseCases is the census service as seen by the explorer.
type UseCases interface {
	SearchAnimals(ctx context.Context, countries []models.Country, pattern string) ([]models.Country, error)
	CountPeopleAndAnimals(ctx context.Context, countries []models.Country) ([]models.Country, error)
}

// CountrySource yields the raw dataset.
type CountrySource interface {
	ListCountries(ctx context.Context) ([]models.CountryRecord, error)
}

// Explorer wires the command line to the census use cases.
type Explorer struct {
	useCases UseCases
	source   CountrySource
	logger   *slog.Logger
	out      io.Writer
}

// New creates an Explorer printing results to out.
func New(useCases UseCases, source CountrySource, logger *slog.Logger, out io.Writer) *Explorer {
	return &Explorer{
		useCases: useCases,
		source:   source,
		logger:   logger,
		out:      out,
	}
}

// Explore executes the command named by args and writes its JSON result.
// ErrNoCommand is returned before the dataset is touched.
func (e *Explorer) Explore(ctx context.Context, args []string) error {
	cmd, ok := command.Parse(args)
	if !ok {
		return ErrNoCommand
	}

	records, err := e.source.ListCountries(ctx)
	if err != nil {
		return fmt.Errorf("load countries: %w", err)
	}
	countries, err := mapper.ToCountries(records)
	if err != nil {
		return err
	}

	result, err := e.dispatch(ctx, cmd, countries)
	if err != nil {
		return err
	}
	return presenter.WriteJSON(e.out, mapper.ToRecords(result))
}

func (e *Explorer) dispatch(ctx context.Context, cmd command.Command, countries []models.Country) ([]models.Country, error) {
	switch cmd.Kind {
	case command.KindSearchAnimals:
		return e.useCases.SearchAnimals(ctx, countries, cmd.Pattern)
	case command.KindCountPeopleAndAnimals:
		return e.useCases.CountPeopleAndAnimals(ctx, countries)
	default:
		return nil, ErrNoCommand
	}
}

// Run calls Explore and turns its outcome into a process exit status.
// Failures are logged, never printed to out.
func (e *Explorer) Run(ctx context.Context, args []string) int {
	err := e.Explore(ctx, args)
	if err == nil {
		return 0
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		e.logger.ErrorContext(ctx, err.Error(), "code", de.Code)
	} else {
		e.logger.ErrorContext(ctx, "Unexpected error: "+err.Error())
	}
	return 1
}
