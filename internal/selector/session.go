package selector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExcursionBooking/internal/availability"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	"github.com/m04kA/SMC-ExcursionBooking/internal/usecase/create_reservation"
)

// ErrNothingSelected is returned by Save outside PendingConfirmation
var ErrNothingSelected = errors.New("selector: nothing selected")

// ReservationCreator submits a selection
type ReservationCreator interface {
	Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error)
}

// IndexLoader rebuilds the grid from the store
type IndexLoader interface {
	LoadIndex(ctx context.Context, date time.Time, watercraftTypeID int64) (*availability.Index, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session binds a selector to one (date, watercraft) grid and the acting user
type Session struct {
	*Selector

	creator      ReservationCreator
	loader       IndexLoader
	identity     *domain.Identity
	date         time.Time
	watercraftID int64
	logger       Logger
}

// NewSession loads the grid and returns an idle session
func NewSession(
	ctx context.Context,
	creator ReservationCreator,
	loader IndexLoader,
	identity *domain.Identity,
	date time.Time,
	watercraftTypeID int64,
	logger Logger,
) (*Session, error) {
	idx, err := loader.LoadIndex(ctx, date, watercraftTypeID)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	return &Session{
		Selector:     New(idx),
		creator:      creator,
		loader:       loader,
		identity:     identity,
		date:         domain.DateOnly(date),
		watercraftID: watercraftTypeID,
		logger:       logger,
	}, nil
}

// Save submits the pending range under name.
// A validation error keeps the selection pending so the name can be fixed.
// Any other error discards the selection. On success the grid is reloaded.
func (s *Session) Save(ctx context.Context, name string) (*create_reservation.Response, error) {
	rng, ok := s.Range()
	if !ok {
		return nil, ErrNothingSelected
	}

	resp, err := s.creator.Execute(ctx, &create_reservation.Request{
		Date:             s.date,
		WatercraftTypeID: s.watercraftID,
		UnitIndex:        rng.Unit,
		SeatIndex:        rng.Seat,
		StartTime:        rng.Start,
		EndTime:          rng.End,
		FirstName:        name,
		Identity:         s.identity,
	})
	if err != nil {
		if errors.Is(err, create_reservation.ErrInvalidInput) {
			return nil, err
		}
		s.Cancel()
		return nil, err
	}

	idx, err := s.loader.LoadIndex(ctx, s.date, s.watercraftID)
	if err != nil {
		s.logger.Warn("Save: reservation id=%d stored, reload failed: %v", resp.ID, err)
		s.Cancel()
		return resp, nil
	}

	s.Reload(idx)
	return resp, nil
}
