package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"booksdata/internal/query"
	"booksdata/internal/render"
	"booksdata/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

// errReported means the failure has already been written as an error
// envelope; main only needs to set the exit status.
var errReported = errors.New("error reported")

type app struct {
	out  io.Writer
	opts options
}

func (a *app) format() render.Format {
	f, err := render.ParseFormat(a.opts.format)
	if err != nil {
		return render.FormatJSON
	}
	return f
}

func (a *app) openSource(ctx context.Context) (store.Source, func(), error) {
	switch a.opts.source {
	case "csv":
		return store.NewCSVSource(a.opts.booksCSV, a.opts.authorsCSV, a.opts.linksCSV), func() {}, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, a.opts.dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot create db pool: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(a.opts.dsn), err)
		}
		return store.NewPostgresSource(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown data source %q: %w", a.opts.source, query.ErrInvalidArgument)
	}
}

// service loads the snapshot and builds a query service over it.
func (a *app) service(ctx context.Context) (*query.Service, error) {
	cfg := query.Config{}
	if a.opts.currentYear != "" {
		year, err := query.ParseID("current_year", a.opts.currentYear)
		if err != nil {
			return nil, err
		}
		cfg.CurrentYear = year
	}
	if _, err := render.ParseFormat(a.opts.format); err != nil {
		return nil, fmt.Errorf("%v: %w", err, query.ErrInvalidArgument)
	}

	src, closeSource, err := a.openSource(ctx)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	s, _, err := store.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return query.NewService(s, cfg), nil
}

func (a *app) respond(command string, start time.Time, data any, count int) error {
	log.Printf("query command=%s results=%d duration_ms=%d", command, count, time.Since(start).Milliseconds())
	meta := map[string]any{"count": count}
	if err := render.Success(a.out, a.format(), data, meta); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func (a *app) fail(command string, err error) error {
	code := errorCode(err)
	log.Printf("query command=%s code=%s error=%v", command, code, err)
	if rerr := render.Error(a.out, a.format(), code, err.Error()); rerr != nil {
		return fmt.Errorf("write error response: %w", rerr)
	}
	return errReported
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return render.CodeNotFound
	case errors.Is(err, query.ErrInvalidArgument):
		return render.CodeInvalidArgument
	default:
		return render.CodeInternal
	}
}
