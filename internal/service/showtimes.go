package service

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type ShowtimeService struct {
	tx        domain.Transactor
	films     domain.FilmRepository
	rooms     domain.RoomRepository
	showtimes domain.ShowtimeRepository
	rules     domain.ScheduleRules
}

func NewShowtimeService(
	tx domain.Transactor,
	films domain.FilmRepository,
	rooms domain.RoomRepository,
	showtimes domain.ShowtimeRepository,
	rules domain.ScheduleRules) *ShowtimeService {

	return &ShowtimeService{
		tx:        tx,
		films:     films,
		rooms:     rooms,
		showtimes: showtimes,
		rules:     rules,
	}
}

type CreateShowtimeParams struct {
	FilmID int
	RoomID int
	Type   string
	Start  time.Time
	End    time.Time
}

// ShowtimePatch holds the fields of an update. Nil fields keep the current value.
type ShowtimePatch struct {
	Type     *string
	Start    *time.Time
	End      *time.Time
	FilmID   *int
	RoomID   *int
	Occupied *int
}

// apply returns a copy of current with every supplied field replaced.
func (p ShowtimePatch) apply(current domain.Showtime) domain.Showtime {
	merged := current

	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Start != nil {
		merged.Start = *p.Start
	}
	if p.End != nil {
		merged.End = *p.End
	}
	if p.FilmID != nil {
		merged.FilmID = *p.FilmID
	}
	if p.RoomID != nil {
		merged.RoomID = *p.RoomID
	}
	if p.Occupied != nil {
		merged.Occupied = *p.Occupied
	}

	return merged
}

func (s *ShowtimeService) Get(ctx context.Context, id int) (*domain.Showtime, error) {
	return s.showtimes.GetById(ctx, id)
}

func (s *ShowtimeService) List(
	ctx context.Context,
	filters domain.ShowtimeFilters) ([]domain.Showtime, *domain.Metadata, error) {

	return s.showtimes.GetAll(ctx, filters)
}

func (s *ShowtimeService) Create(ctx context.Context, params CreateShowtimeParams) (*domain.Showtime, error) {
	candidate := domain.Showtime{
		Type:   params.Type,
		Start:  params.Start,
		End:    params.End,
		FilmID: params.FilmID,
		RoomID: params.RoomID,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		film, err := s.films.GetById(ctx, candidate.FilmID)
		if err != nil {
			return err
		}

		if err := s.rules.Validate(film, candidate.Start, candidate.End); err != nil {
			return err
		}

		room, err := s.rooms.GetById(ctx, candidate.RoomID)
		if err != nil {
			return err
		}

		if err := s.checkScopes(ctx, &candidate, room, 0); err != nil {
			return err
		}

		candidate.Capacity = room.Capacity
		candidate.Occupied = 0
		candidate.FilmName = film.Name
		candidate.RoomName = room.Name

		// film.Available may predate a delete that committed before our lock.
		if err := s.films.SetAvailability(ctx, film.ID, true); err != nil {
			return err
		}

		return s.showtimes.Create(ctx, &candidate)
	})
	if err != nil {
		return nil, err
	}

	return &candidate, nil
}

func (s *ShowtimeService) Update(ctx context.Context, id int, patch ShowtimePatch) (*domain.Showtime, error) {
	var updated domain.Showtime

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.showtimes.GetByIdForUpdate(ctx, id)
		if err != nil {
			return err
		}

		candidate := patch.apply(*current)

		if candidate.Occupied < current.Occupied {
			return domain.ErrOccupancyDecrease
		}

		film, err := s.films.GetById(ctx, candidate.FilmID)
		if err != nil {
			return err
		}

		room, err := s.rooms.GetById(ctx, candidate.RoomID)
		if err != nil {
			return err
		}

		if err := s.rules.Validate(film, candidate.Start, candidate.End); err != nil {
			return err
		}

		if err := s.checkScopes(ctx, &candidate, room, current.FilmID); err != nil {
			return err
		}

		candidate.Capacity = room.Capacity
		if candidate.Occupied > candidate.Capacity {
			return domain.ErrCapacityExceeded
		}

		candidate.FilmName = film.Name
		candidate.RoomName = room.Name

		if err := s.films.SetAvailability(ctx, film.ID, true); err != nil {
			return err
		}

		if err := s.showtimes.Update(ctx, &candidate); err != nil {
			return err
		}

		if current.FilmID != candidate.FilmID {
			if err := s.recheckAvailability(ctx, current.FilmID, id); err != nil {
				return err
			}
		}

		updated = candidate

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *ShowtimeService) Delete(ctx context.Context, id int) (*domain.Showtime, error) {
	var deleted *domain.Showtime

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.showtimes.GetByIdForUpdate(ctx, id)
		if err != nil {
			return err
		}

		err = s.showtimes.LockScopes(ctx, []int{current.FilmID}, []int{current.RoomID})
		if err != nil {
			return err
		}

		if err := s.recheckAvailability(ctx, current.FilmID, id); err != nil {
			return err
		}

		if err := s.showtimes.Delete(ctx, id); err != nil {
			return err
		}

		deleted = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// checkScopes locks the film and room of candidate and runs the maintenance
// and overlap rules. Showtime candidate.ID is left out of the overlap scans.
// previousFilmID, when set and different from the candidate film, is locked too
// so its availability can be rechecked safely.
func (s *ShowtimeService) checkScopes(
	ctx context.Context,
	candidate *domain.Showtime,
	room *domain.Room,
	previousFilmID int) error {

	if room.UnderMaintenance {
		return domain.ErrRoomUnderMaintenance
	}

	filmIDs := []int{candidate.FilmID}
	if previousFilmID != 0 && previousFilmID != candidate.FilmID {
		filmIDs = append(filmIDs, previousFilmID)
	}

	err := s.showtimes.LockScopes(ctx, filmIDs, []int{candidate.RoomID})
	if err != nil {
		return err
	}

	byFilm, err := s.showtimes.GetByFilm(ctx, candidate.FilmID, candidate.ID)
	if err != nil {
		return err
	}

	if err := domain.DetectOverlap(byFilm, candidate.Start, candidate.End, domain.ScopeFilm); err != nil {
		return err
	}

	byRoom, err := s.showtimes.GetByRoom(ctx, candidate.RoomID, candidate.ID)
	if err != nil {
		return err
	}

	return domain.DetectOverlap(byRoom, candidate.Start, candidate.End, domain.ScopeRoom)
}

// recheckAvailability marks the film unavailable when no showtime other than
// excludeID is left for it.
func (s *ShowtimeService) recheckAvailability(ctx context.Context, filmID, excludeID int) error {
	remaining, err := s.showtimes.GetByFilm(ctx, filmID, excludeID)
	if err != nil {
		return err
	}

	if len(remaining) > 0 {
		return nil
	}

	return s.films.SetAvailability(ctx, filmID, false)
}
