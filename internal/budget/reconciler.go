// Package budget reconciles today's roulette budget and a rolling 7-day
// forward schedule against the sparse set of server-side overrides.
//
// The server only stores overrides for dates an administrator has touched;
// the reconciler always presents exactly ScheduleDays rows, synthesizing the
// default budget for dates with no override. Date arithmetic anchors on the
// server-reported roulette date, not client local time, so the schedule stays
// aligned with the backend's notion of the current roulette day.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/rouletteup/admin-console/internal/models"
)

const (
	// MinBudget is the floor the client enforces locally; anything below it
	// never reaches the network.
	MinBudget = 1

	// DefaultBudget is synthesized for future dates with no stored override.
	DefaultBudget = 100_000

	// ScheduleDays is the length of the forward schedule.
	ScheduleDays = 7

	dateLayout = "2006-01-02"
)

var (
	// ErrBudgetTooSmall rejects budget input below MinBudget.
	ErrBudgetTooSmall = errors.New("budget: value must be at least 1")

	// ErrNotANumber rejects non-numeric or non-finite budget input.
	ErrNotANumber = errors.New("budget: value is not a finite number")

	// ErrUnknownDate rejects edits to a date outside the 7-day schedule.
	ErrUnknownDate = errors.New("budget: date is not in the schedule")

	// ErrNotLoaded is returned for edits before the first successful load.
	ErrNotLoaded = errors.New("budget: schedule not loaded")
)

// API is the slice of the resource client the reconciler consumes.
type API interface {
	TodayRoulette(ctx context.Context) (models.TodayRoulette, error)
	UpdateTodayBudget(ctx context.Context, newTotalBudget int64) error
	FutureBudgets(ctx context.Context) ([]models.FutureBudget, error)
	UpdateFutureBudget(ctx context.Context, settingDate string, newTotalBudget int64) error
}

// Row is one editable day of the forward schedule.
type Row struct {
	// Date is the calendar date key (YYYY-MM-DD).
	Date string

	// TotalBudget is the override value when one exists, else DefaultBudget.
	TotalBudget int64

	// Override reports whether the server has a stored override for Date.
	Override bool

	// Saving reports an in-flight save for this row. Rows save
	// independently; saving one never blocks editing another.
	Saving bool
}

// Reconciler presents today's budget and the 7-day schedule as one coherent
// editable table. Today and the future section each own a single visible
// error slot; an attempt clears its slot only on its own resolution.
type Reconciler struct {
	api    API
	logger *slog.Logger

	mu          sync.Mutex
	loaded      bool
	today       models.TodayRoulette
	rows        []Row
	savingToday bool
	todayErr    error
	futureErr   error
}

// NewReconciler creates a reconciler over the given API slice.
func NewReconciler(api API, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{api: api, logger: logger}
}

// Load fetches today's record and the future overrides concurrently, joins
// them, and derives the 7-row schedule. Each fetch failure lands in its own
// section's error slot.
func (r *Reconciler) Load(ctx context.Context) error {
	var (
		wg        sync.WaitGroup
		today     models.TodayRoulette
		todayErr  error
		futures   []models.FutureBudget
		futureErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		today, todayErr = r.api.TodayRoulette(ctx)
	}()
	go func() {
		defer wg.Done()
		futures, futureErr = r.api.FutureBudgets(ctx)
	}()
	wg.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.todayErr = todayErr
	r.futureErr = futureErr
	if todayErr != nil || futureErr != nil {
		return errors.Join(todayErr, futureErr)
	}

	rows, err := deriveRows(today.RouletteDate, futures, r.rows)
	if err != nil {
		r.futureErr = err
		return err
	}
	r.today = today
	r.rows = rows
	r.loaded = true
	r.logger.Debug("Budget schedule loaded",
		"anchor", today.RouletteDate, "overrides", len(futures))
	return nil
}

// deriveRows computes the schedule: offsets 1 through ScheduleDays from the
// anchor date, taking the override's budget when present and DefaultBudget
// otherwise. In-flight Saving flags from prev are carried over by date.
func deriveRows(anchor string, overrides []models.FutureBudget, prev []Row) ([]Row, error) {
	base, err := time.Parse(dateLayout, anchor)
	if err != nil {
		return nil, fmt.Errorf("budget: bad anchor date %q: %w", anchor, err)
	}

	byDate := make(map[string]int64, len(overrides))
	for _, o := range overrides {
		byDate[o.SettingDate] = o.TotalBudget
	}
	saving := make(map[string]bool, len(prev))
	for _, row := range prev {
		if row.Saving {
			saving[row.Date] = true
		}
	}

	rows := make([]Row, 0, ScheduleDays)
	for offset := 1; offset <= ScheduleDays; offset++ {
		date := base.AddDate(0, 0, offset).Format(dateLayout)
		row := Row{Date: date, TotalBudget: DefaultBudget, Saving: saving[date]}
		if v, ok := byDate[date]; ok {
			row.TotalBudget = v
			row.Override = true
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Today returns today's record and whether the schedule has loaded.
func (r *Reconciler) Today() (models.TodayRoulette, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.today, r.loaded
}

// Rows returns a copy of the current 7-row schedule.
func (r *Reconciler) Rows() []Row {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]Row, len(r.rows))
	copy(rows, r.rows)
	return rows
}

// TodayErr returns the today section's visible error slot.
func (r *Reconciler) TodayErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.todayErr
}

// FutureErr returns the future section's visible error slot.
func (r *Reconciler) FutureErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.futureErr
}

// SavingToday reports an in-flight save of today's budget.
func (r *Reconciler) SavingToday() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.savingToday
}

// UpdateToday raises today's total budget. Values below MinBudget are
// rejected locally with no network call. On success today's record is
// reloaded so the table reflects the authoritative post-update value.
func (r *Reconciler) UpdateToday(ctx context.Context, newTotal int64) error {
	r.mu.Lock()
	if !r.loaded {
		r.mu.Unlock()
		return ErrNotLoaded
	}
	if newTotal < MinBudget {
		r.todayErr = ErrBudgetTooSmall
		r.mu.Unlock()
		return ErrBudgetTooSmall
	}
	r.savingToday = true
	r.mu.Unlock()

	err := r.api.UpdateTodayBudget(ctx, newTotal)
	if err == nil {
		var today models.TodayRoulette
		today, err = r.api.TodayRoulette(ctx)
		if err == nil {
			r.mu.Lock()
			r.today = today
			r.mu.Unlock()
		}
	}

	r.mu.Lock()
	r.savingToday = false
	r.todayErr = err
	r.mu.Unlock()
	return err
}

// UpdateFuture upserts the override for date. On success the full override
// set is refetched and all 7 rows re-derived; an edit can only change its own
// date's value, but the refresh re-derives the whole table for consistency.
func (r *Reconciler) UpdateFuture(ctx context.Context, date string, newTotal int64) error {
	r.mu.Lock()
	if !r.loaded {
		r.mu.Unlock()
		return ErrNotLoaded
	}
	idx := -1
	for i := range r.rows {
		if r.rows[i].Date == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.futureErr = ErrUnknownDate
		r.mu.Unlock()
		return ErrUnknownDate
	}
	if newTotal < MinBudget {
		r.futureErr = ErrBudgetTooSmall
		r.mu.Unlock()
		return ErrBudgetTooSmall
	}
	r.rows[idx].Saving = true
	r.mu.Unlock()

	err := r.api.UpdateFutureBudget(ctx, date, newTotal)
	if err == nil {
		var futures []models.FutureBudget
		futures, err = r.api.FutureBudgets(ctx)
		if err == nil {
			r.mu.Lock()
			r.rows[idx].Saving = false
			rows, deriveErr := deriveRows(r.today.RouletteDate, futures, r.rows)
			if deriveErr == nil {
				r.rows = rows
			}
			err = deriveErr
			r.mu.Unlock()
		}
	}

	r.mu.Lock()
	for i := range r.rows {
		if r.rows[i].Date == date {
			r.rows[i].Saving = false
		}
	}
	r.futureErr = err
	r.mu.Unlock()
	return err
}

// ParseAmount converts user input into a budget value, rejecting non-numeric
// and non-finite input before any network call.
func ParseAmount(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != f || f > 1<<62 || f < -(1<<62) {
		return 0, ErrNotANumber
	}
	return int64(f), nil
}
