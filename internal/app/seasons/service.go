package seasons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nha-sim-service/internal/betting"
	"github.com/preston-bernstein/nha-sim-service/internal/domain/league"
	domainseasons "github.com/preston-bernstein/nha-sim-service/internal/domain/seasons"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
	"github.com/preston-bernstein/nha-sim-service/internal/metrics"
	"github.com/preston-bernstein/nha-sim-service/internal/providers"
	"github.com/preston-bernstein/nha-sim-service/internal/sim"
	"github.com/preston-bernstein/nha-sim-service/internal/store"
)

var (
	// ErrPlayoffsComplete is returned when a session's playoffs have already been played.
	ErrPlayoffsComplete = errors.New("playoffs already complete")
	// ErrPlayoffsPending is returned when asking for a bracket that has not been played yet.
	ErrPlayoffsPending = errors.New("playoffs not yet simulated")
)

// Store defines the contract for persisting and retrieving sessions.
type Store interface {
	ListSessions() []domainseasons.Session
	GetSession(id string) (domainseasons.Session, bool)
	SaveSession(sess domainseasons.Session)
	UpdateSession(id string, fn func(*domainseasons.Session) error) (domainseasons.Session, error)
}

// Options carries the simulation parameters sessions are created with.
type Options struct {
	Seed         uint64 // 0 picks a time-based seed when the caller supplies none
	BestOf       int
	PlayoffTeams int
}

// Service coordinates season sessions: simulate, bet, play the playoffs.
type Service struct {
	store    Store
	provider providers.LeagueProvider
	opts     Options
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewService constructs a Service. Zero BestOf or PlayoffTeams take the engine defaults.
func NewService(st Store, provider providers.LeagueProvider, opts Options, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if opts.BestOf == 0 {
		opts.BestOf = sim.DefaultBestOf
	}
	if opts.PlayoffTeams == 0 {
		opts.PlayoffTeams = sim.DefaultPlayoffTeams
	}
	return &Service{
		store:    st,
		provider: provider,
		opts:     opts,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// League returns the league new sessions are simulated with.
func (s *Service) League(ctx context.Context) (league.League, error) {
	return s.provider.FetchLeague(ctx)
}

// Quote prices a bet on team at seed against the current league's tiers.
func (s *Service) Quote(ctx context.Context, team string, seed int) (domainseasons.OddsQuote, error) {
	l, err := s.League(ctx)
	if err != nil {
		return domainseasons.OddsQuote{}, err
	}
	return domainseasons.Quote(l.Classifier(), team, seed), nil
}

// Start simulates a regular season and stores it as a new session. A nil seed uses the
// configured seed, or the clock when none is configured.
func (s *Service) Start(ctx context.Context, seed *uint64) (domainseasons.Session, error) {
	l, err := s.League(ctx)
	if err != nil {
		return domainseasons.Session{}, fmt.Errorf("load league: %w", err)
	}

	chosen := s.seed(seed)
	engine := sim.NewSeeded(chosen, sim.WithClassifier(l.Classifier()), sim.WithBestOf(s.opts.BestOf))

	started := time.Now()
	season, err := engine.SimulateSeason(l, s.opts.PlayoffTeams)
	s.recorder.RecordSimulation(metrics.KindSeason, time.Since(started), err)
	if err != nil {
		logging.Warn(s.log(ctx), "season simulation failed", slog.Uint64(logging.FieldSeed, chosen), "error", err)
		return domainseasons.Session{}, err
	}

	sess := domainseasons.Session{
		ID:        s.newID(),
		Seed:      chosen,
		CreatedAt: s.now(),
		Season:    season,
	}
	s.store.SaveSession(sess)

	logging.Info(s.log(ctx), "season simulated",
		slog.String(logging.FieldSession, sess.ID),
		slog.Uint64(logging.FieldSeed, chosen),
		slog.Int(logging.FieldCount, l.Size()),
	)
	return sess, nil
}

// Get returns a stored session.
func (s *Service) Get(ctx context.Context, id string) (domainseasons.Session, error) {
	_ = ctx
	sess, ok := s.store.GetSession(id)
	if !ok {
		return domainseasons.Session{}, store.ErrSessionNotFound
	}
	return sess, nil
}

// List returns every stored session, oldest first.
func (s *Service) List(ctx context.Context) []domainseasons.Session {
	_ = ctx
	return s.store.ListSessions()
}

// Bracket returns the session's playoff bracket.
func (s *Service) Bracket(ctx context.Context, id string) (sim.Bracket, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return sim.Bracket{}, err
	}
	if !sess.PlayoffsComplete() {
		return sim.Bracket{}, ErrPlayoffsPending
	}
	return *sess.Bracket, nil
}

// PlaceBet records a bet on team, replacing any earlier bet. Bets close once the playoffs
// have been played.
func (s *Service) PlaceBet(ctx context.Context, id, team string, stake float64) (betting.Bet, error) {
	var placed betting.Bet
	_, err := s.store.UpdateSession(id, func(sess *domainseasons.Session) error {
		if sess.PlayoffsComplete() {
			return ErrPlayoffsComplete
		}
		bet, err := betting.Place(sess.Season, sess.Season.League.Classifier(), team, stake)
		if err != nil {
			return err
		}
		sess.Bet = &bet
		placed = bet
		return nil
	})
	if err != nil {
		return betting.Bet{}, err
	}

	logging.Info(s.log(ctx), "bet placed",
		slog.String(logging.FieldSession, id),
		slog.String(logging.FieldTeam, placed.Team),
		slog.Float64("stake", placed.Stake),
		slog.Float64("odds", placed.Odds),
	)
	return placed, nil
}

// RunPlayoffs simulates the session's playoffs and settles its bet. Playoffs run once per
// session from a stream derived from the session seed.
func (s *Service) RunPlayoffs(ctx context.Context, id string) (domainseasons.Session, error) {
	var simErr error
	var elapsed time.Duration
	sess, err := s.store.UpdateSession(id, func(sess *domainseasons.Session) error {
		if sess.PlayoffsComplete() {
			return ErrPlayoffsComplete
		}
		engine := sim.NewSeeded(sim.PlayoffSeed(sess.Seed),
			sim.WithClassifier(sess.Season.League.Classifier()),
			sim.WithBestOf(s.opts.BestOf),
		)
		started := time.Now()
		bracket, err := engine.SimulatePlayoffs(sess.Season.EastSeeds, sess.Season.WestSeeds)
		elapsed = time.Since(started)
		if err != nil {
			simErr = err
			return err
		}
		sess.Bracket = &bracket
		if sess.Bet != nil {
			outcome := sess.Bet.Settle(bracket.Champion)
			sess.Outcome = &outcome
		}
		return nil
	})
	if simErr != nil || err == nil {
		s.recorder.RecordSimulation(metrics.KindPlayoffs, elapsed, simErr)
	}
	if err != nil {
		return domainseasons.Session{}, err
	}

	attrs := []any{
		slog.String(logging.FieldSession, id),
		slog.String(logging.FieldChampion, sess.Bracket.Champion),
	}
	if sess.Outcome != nil {
		s.recorder.RecordBetSettled(sess.Outcome.Won)
		attrs = append(attrs, slog.Bool("bet_won", sess.Outcome.Won), slog.Float64("net", sess.Outcome.Net))
	}
	logging.Info(s.log(ctx), "playoffs simulated", attrs...)
	return sess, nil
}

func (s *Service) seed(requested *uint64) uint64 {
	switch {
	case requested != nil:
		return *requested
	case s.opts.Seed != 0:
		return s.opts.Seed
	default:
		return sim.TimeSeed()
	}
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}
