package services

//go:generate mockgen -source=pots.go -destination=pots_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/validation"
	"github.com/segmentio/kafka-go"
)

const msgUnknownTea = "Not a valid choice."

// PotStore persists pots.
type PotStore interface {
	GetByID(ctx context.Context, id int64) (*models.Pot, error)
	Create(ctx context.Context, p *models.Pot) error
	MarkDrunk(ctx context.Context, id int64, at time.Time) (bool, error)
	Current(ctx context.Context) (*models.Pot, error)
	Recent(ctx context.Context, n int) ([]models.Pot, error)
	Count(ctx context.Context, f models.PotFilter) (int, error)
	List(ctx context.Context, f models.PotFilter, limit, offset int) ([]models.Pot, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PotEvent is published when a pot is brewed or drunk.
type PotEvent struct {
	EventID   string          `json:"event_id"`
	Event     models.PotState `json:"event"`
	PotID     int64           `json:"pot_id"`
	TeaID     int64           `json:"tea_id"`
	BrewerID  int64           `json:"brewer_id"`
	Timestamp int64           `json:"timestamp"`
}

// PotService brews and drinks pots and publishes their events.
type PotService struct {
	pots        PotStore
	teas        TeaStore
	kafkaWriter KafkaWriter
	validator   *validation.Validator
	now         func() time.Time
}

// NewPotService creates a new PotService. kafkaWriter may be nil.
func NewPotService(pots PotStore, teas TeaStore, kafkaWriter KafkaWriter) *PotService {
	return &PotService{
		pots:        pots,
		teas:        teas,
		kafkaWriter: kafkaWriter,
		validator:   validation.New(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// publishEvent publishes a pot event to Kafka. Failures are logged only.
func (s *PotService) publishEvent(ctx context.Context, p *models.Pot, state models.PotState, at time.Time) {
	event := PotEvent{
		EventID:   uuid.NewString(),
		Event:     state,
		PotID:     p.ID,
		TeaID:     p.TeaID,
		BrewerID:  p.BrewerID,
		Timestamp: at.Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "pot_id", p.ID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal pot event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(p.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish pot event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Pot event published to Kafka", "event_id", event.EventID, "pot_id", p.ID, "event", state)
	}
}

// List returns a page of pots matching f, newest first.
func (s *PotService) List(ctx context.Context, f models.PotFilter, p pagination.Params) (pagination.Result[models.Pot], error) {
	res, err := pagination.Fetch[models.Pot](ctx, pagination.SourceFuncs[models.Pot]{
		CountFunc: func(ctx context.Context) (int, error) { return s.pots.Count(ctx, f) },
		SliceFunc: func(ctx context.Context, limit, offset int) ([]models.Pot, error) {
			return s.pots.List(ctx, f, limit, offset)
		},
	}, p)
	if err != nil {
		logger.Log.Errorw("failed to list pots", "tea_id", f.TeaID, "brewer_id", f.BrewerID, "error", err)
	}
	return res, err
}

// Get returns ErrNotFound for an unknown id.
func (s *PotService) Get(ctx context.Context, id int64) (*models.Pot, error) {
	p, err := s.pots.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get pot", "pot_id", id, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Current returns the most recently brewed drinkable pot, or nil.
func (s *PotService) Current(ctx context.Context) (*models.Pot, error) {
	p, err := s.pots.Current(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get current pot", "error", err)
	}
	return p, err
}

// Recent returns the last n pots brewed.
func (s *PotService) Recent(ctx context.Context, n int) ([]models.Pot, error) {
	pots, err := s.pots.Recent(ctx, n)
	if err != nil {
		logger.Log.Errorw("failed to get recent pots", "error", err)
	}
	return pots, err
}

// Brew records a drinkable pot of the chosen tea brewed by b.
func (s *PotService) Brew(ctx context.Context, b *models.Brewer, in models.PotInput) (*models.Pot, error) {
	if fields := s.validator.Struct(in); !fields.Empty() {
		return nil, invalid(fields)
	}

	tea, err := s.teas.GetByID(ctx, in.Tea)
	if err != nil {
		logger.Log.Errorw("failed to get tea", "tea_id", in.Tea, "error", err)
		return nil, err
	}
	if tea == nil {
		return nil, fieldError("tea", msgUnknownTea)
	}

	now := s.now()
	p := &models.Pot{BrewedAt: now, TeaID: tea.ID, BrewerID: b.ID}
	if err := s.pots.Create(ctx, p); err != nil {
		logger.Log.Errorw("failed to save pot", "tea_id", tea.ID, "brewer_id", b.ID, "error", err)
		return nil, err
	}
	p.TeaName = tea.Name
	p.BrewerUsername = b.Username
	p.BrewerName = b.Name

	s.publishEvent(ctx, p, models.PotBrewed, now)

	return p, nil
}

// Drink moves a pot to the drunk state. id 0 means the current pot. The
// returned flag is false when the pot had already been drunk, in which
// case nothing changes.
func (s *PotService) Drink(ctx context.Context, id int64) (*models.Pot, bool, error) {
	var (
		p   *models.Pot
		err error
	)
	if id == 0 {
		p, err = s.Current(ctx)
		if err != nil {
			return nil, false, err
		}
		if p == nil {
			return nil, false, ErrNoDrinkablePot
		}
	} else {
		p, err = s.Get(ctx, id)
		if err != nil {
			return nil, false, err
		}
	}

	if !p.Drinkable() {
		logger.Log.Warnw("pot already drunk", "pot_id", p.ID)
		return p, false, nil
	}

	now := s.now()
	changed, err := s.pots.MarkDrunk(ctx, p.ID, now)
	if err != nil {
		logger.Log.Errorw("failed to drink pot", "pot_id", p.ID, "error", err)
		return nil, false, err
	}
	if !changed {
		// Drunk by a concurrent request; return the stored state.
		logger.Log.Warnw("pot already drunk", "pot_id", p.ID)
		p, err = s.Get(ctx, p.ID)
		if err != nil {
			return nil, false, err
		}
		return p, false, nil
	}
	p.DrankAt = &now

	s.publishEvent(ctx, p, models.PotDrunk, now)

	return p, true, nil
}
