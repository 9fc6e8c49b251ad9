package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/YKarmar/AdmissionsDashboard/internal/config"
	"github.com/YKarmar/AdmissionsDashboard/internal/logging"
	"github.com/YKarmar/AdmissionsDashboard/internal/summary"
	"github.com/YKarmar/AdmissionsDashboard/internal/view"
)

// deps bundles what every subcommand needs.
type deps struct {
	cfg    *config.Config
	logger *logging.Logger
}

func loadDeps() (*deps, error) {
	if err := config.LoadEnvFile(viper.GetString("env_file")); err != nil {
		return nil, err
	}

	var (
		cfg *config.Config
		err error
	)
	if path := viper.GetString("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultPath)
	}
	if err != nil {
		return nil, err
	}

	// Flags and ADMISSIONS_* variables win over the file.
	if level := viper.GetString("logging.level"); level != "" {
		if !logging.IsValidLevel(level) {
			return nil, fmt.Errorf("invalid log level %q, valid levels: %v", level, logging.ValidLevels())
		}
		cfg.Logging.Level = logging.ParseLevel(level)
	}
	if dir := viper.GetString("logging.dir"); dir != "" {
		cfg.Logging.Dir = dir
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	return &deps{cfg: cfg, logger: logger}, nil
}

func (rt *deps) close() error {
	return rt.logger.Close()
}

// joinClose calls closeFn and joins its error into *errp. Commands defer it
// with a named result so a failed log flush is not lost.
func joinClose(errp *error, closeFn func() error) {
	if err := closeFn(); err != nil {
		*errp = errors.Join(*errp, err)
	}
}

func (rt *deps) tileProvider() summary.Provider {
	if rt.cfg.Summary.Source == config.SummaryAuthored {
		a := rt.cfg.Summary.Authored
		return summary.Authored{
			Values: summary.Tiles{
				Accepted:         a.Accepted,
				Pending:          a.Pending,
				ScholarshipTotal: a.ScholarshipTotal,
			},
			Logger: rt.logger,
		}
	}
	return summary.Derived{}
}

// builder returns a view builder. A non-empty asOf pins the clock.
func (rt *deps) builder(asOf string) (view.Builder, error) {
	now := view.Clock(time.Now)
	if asOf != "" {
		t := config.ParseDateLoose(asOf, time.Time{})
		if t.IsZero() {
			return view.Builder{}, fmt.Errorf("invalid --as-of %q: want YYYY-MM-DD or RFC3339", asOf)
		}
		now = view.FixedClock(t)
	}

	return view.Builder{
		Header: view.Header{
			Owner:    rt.cfg.Dashboard.Owner,
			Title:    rt.cfg.Dashboard.Title,
			Subtitle: rt.cfg.Dashboard.Subtitle,
		},
		Stylesheet: rt.cfg.Dashboard.Stylesheet,
		Tiles:      rt.tileProvider(),
		Now:        now,
	}, nil
}
