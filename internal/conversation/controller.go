package conversation

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-coach/internal/ats"
	"github.com/jonathan/career-coach/internal/benchmark"
	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/mining"
	"github.com/jonathan/career-coach/internal/quality"
	"github.com/jonathan/career-coach/internal/session"
	"github.com/jonathan/career-coach/internal/types"
)

// Phase progression guards
const (
	// maxTurnsPerPhase forces progression after this many turns regardless
	// of quality, so no phase can loop forever.
	maxTurnsPerPhase = 3
	// confidentAchievementFloor is the confidence a mined achievement needs
	// for the AchievementMining phase to advance on quality alone.
	confidentAchievementFloor = 0.5
)

// Deps holds the controller's collaborators. Store is the only component with
// mutable state; everything else is pure and shared by reference.
type Deps struct {
	Store    session.Store
	Analyzer *quality.Analyzer
	Miner    *mining.Miner
	Engine   *benchmark.Engine
	Scorer   *ats.Scorer // optional; nil degrades ATS scoring
	Provider config.Provider
	Logger   *zap.Logger
}

// Controller orchestrates turn processing: it runs the analyzers, resolves
// benchmark percentiles, applies the phase transition rules and appends the
// turn to the session. Turns within one session are strictly serialized.
type Controller struct {
	store    session.Store
	analyzer *quality.Analyzer
	miner    *mining.Miner
	engine   *benchmark.Engine
	scorer   *ats.Scorer
	provider config.Provider
	logger   *zap.Logger
	weights  map[string]float64
	locks    *keyedMutex
}

// NewController creates a controller from its dependencies.
func NewController(deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:    deps.Store,
		analyzer: deps.Analyzer,
		miner:    deps.Miner,
		engine:   deps.Engine,
		scorer:   deps.Scorer,
		provider: deps.Provider,
		logger:   logger,
		weights:  types.DefaultDimensionWeights(),
		locks:    newKeyedMutex(),
	}
}

// TurnRequest is one turn of user input for a session.
type TurnRequest struct {
	SessionID  string
	Input      string
	IncludeATS bool
	ATSWeights map[string]float64
}

// StartSession creates a new session in the Introduction phase. An empty id
// is replaced with a generated one.
func (c *Controller) StartSession(ctx context.Context, id string, target types.BenchmarkKey) (*types.Session, error) {
	if id == "" {
		id = uuid.NewString()
	}

	sess := &types.Session{
		ID:     id,
		Phase:  types.PhaseIntroduction,
		Target: target,
	}
	if err := c.store.Create(ctx, sess); err != nil {
		if errors.Is(err, session.ErrAlreadyExists) {
			return nil, &SessionExistsError{ID: id}
		}
		return nil, err
	}

	c.logger.Info("session started",
		zap.String("session_id", id),
		zap.String("target", target.String()))

	return sess, nil
}

// GetSession returns a snapshot of a session.
func (c *Controller) GetSession(ctx context.Context, id string) (*types.Session, error) {
	sess, err := c.store.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return nil, &SessionNotFoundError{ID: id}
	}
	return sess, err
}

// ResetSession returns a session to the Introduction phase with its history
// cleared. This is the only way out of the Completion phase.
func (c *Controller) ResetSession(ctx context.Context, id string) (*types.Session, error) {
	unlock := c.locks.lock(id)
	defer unlock()

	sess, err := c.store.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return nil, &SessionNotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}

	sess.Phase = types.PhaseIntroduction
	sess.Turns = nil
	sess.ScoreHistory = nil
	sess.TurnsInPhase = 0
	sess.LowConfidenceProgression = false

	if err := c.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// EndSession destroys a session.
func (c *Controller) EndSession(ctx context.Context, id string) error {
	unlock := c.locks.lock(id)
	defer unlock()
	return c.store.Delete(ctx, id)
}

// ProcessTurn runs the full analysis path for one turn and commits the
// result to the session. Validation and session errors return uncommitted;
// a cancelled context discards all partial results before the append.
func (c *Controller) ProcessTurn(ctx context.Context, req TurnRequest) (*types.TurnResult, error) {
	unlock := c.locks.lock(req.SessionID)
	defer unlock()

	sess, err := c.store.Get(ctx, req.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, &SessionNotFoundError{ID: req.SessionID}
	}
	if err != nil {
		return nil, err
	}
	if sess.Phase.Terminal() {
		return nil, &SessionClosedError{ID: sess.ID}
	}

	qs, err := c.analyzer.Analyze(req.Input)
	if err != nil {
		return nil, err
	}

	// Mining and ATS scoring have no data dependency on each other.
	var (
		achievements []types.Achievement
		atsScores    *types.ATSScoreSet
		degraded     bool
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		achievements = c.miner.Mine(req.Input)
		return nil
	})
	if req.IncludeATS {
		g.Go(func() error {
			if c.scorer == nil {
				degraded = true
				return nil
			}
			scores, scoreErr := c.scorer.Score(req.Input, req.ATSWeights)
			if scoreErr != nil {
				var weightsErr *ats.WeightsError
				if errors.As(scoreErr, &weightsErr) {
					return scoreErr
				}
				degraded = true
				c.logger.Warn("ats scoring degraded",
					zap.String("session_id", sess.ID), zap.Error(scoreErr))
				return nil
			}
			atsScores = scores
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dims := deriveDimensionScores(qs, achievements, atsScores)
	percentiles := c.resolvePercentiles(dims, sess.Target)
	overall := benchmark.WeightedOverall(dims, c.weights)
	overallPct := c.resolvePercentile(types.DimOverall, overall, sess.Target)

	// Cancellation boundary: nothing before this point mutated the session.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prevPhase := sess.Phase
	decision := decideTransition(sess, qs.Level, achievements)
	applyTransition(sess, decision)

	turn := types.Turn{
		ID:           uuid.NewString(),
		Input:        req.Input,
		Quality:      *qs,
		Achievements: achievements,
		ATSScores:    atsScores,
		Phase:        prevPhase,
		CreatedAt:    time.Now(),
	}
	sess.Turns = append(sess.Turns, turn)
	sess.ScoreHistory = append(sess.ScoreHistory, qs.Overall)

	if err := c.store.Update(ctx, sess); err != nil {
		return nil, err
	}

	c.logger.Info("turn processed",
		zap.String("session_id", sess.ID),
		zap.String("phase", string(sess.Phase)),
		zap.String("quality_level", string(qs.Level)),
		zap.Int("achievements", len(achievements)),
		zap.Bool("follow_up", decision.followUp))

	return &types.TurnResult{
		Quality:                   *qs,
		Achievements:              achievements,
		DimensionPercentiles:      percentiles,
		OverallScore:              overall,
		OverallPercentile:         overallPct,
		ATSScores:                 atsScores,
		Phase:                     sess.Phase,
		FollowUpRequested:         decision.followUp,
		SessionProgressPercentage: sess.Phase.ProgressPercentage(),
		LowConfidenceProgression:  sess.LowConfidenceProgression,
		Degraded:                  degraded,
	}, nil
}

// transition captures the outcome of applying the phase rules to one turn.
type transition struct {
	advance       bool
	lowConfidence bool
	followUp      bool
}

// decideTransition applies the phase transition rules:
//   - PsychologicalSynthesis advances unconditionally after one turn.
//   - good/excellent quality advances, except AchievementMining also needs a
//     mined achievement with confidence >= 0.5.
//   - hitting the per-phase turn cap forces advancement; in AchievementMining
//     a forced advance without a confident achievement flags the session.
//   - otherwise the turn stays in phase and requests clarification.
func decideTransition(sess *types.Session, level types.QualityLevel, achievements []types.Achievement) transition {
	turnsSpent := sess.TurnsInPhase + 1
	goodQuality := level == types.QualityGood || level == types.QualityExcellent
	confident := hasConfidentAchievement(achievements)

	var t transition
	switch {
	case sess.Phase == types.PhasePsychologicalSynthesis:
		t.advance = true
	case goodQuality && (sess.Phase != types.PhaseAchievementMining || confident):
		t.advance = true
	case turnsSpent >= maxTurnsPerPhase:
		t.advance = true
		if sess.Phase == types.PhaseAchievementMining && !confident {
			t.lowConfidence = true
		}
	default:
		t.followUp = true
	}
	return t
}

func applyTransition(sess *types.Session, t transition) {
	if t.advance {
		next, _ := sess.Phase.Next()
		sess.Phase = next
		sess.TurnsInPhase = 0
	} else {
		sess.TurnsInPhase++
	}
	if t.lowConfidence {
		sess.LowConfidenceProgression = true
	}
}

func hasConfidentAchievement(achievements []types.Achievement) bool {
	for i := range achievements {
		if achievements[i].Confidence >= confidentAchievementFloor {
			return true
		}
	}
	return false
}

// resolvePercentiles looks up every dimension percentile, falling back to the
// configured default key when a (dimension, key) pair has no table. Missing
// data degrades to an absent entry, never a failed turn.
func (c *Controller) resolvePercentiles(dims map[string]float64, key types.BenchmarkKey) []types.DimensionPercentile {
	names := make([]string, 0, len(dims))
	for dim := range dims {
		names = append(names, dim)
	}
	sort.Strings(names)

	out := make([]types.DimensionPercentile, 0, len(names))
	for _, dim := range names {
		if p := c.resolvePercentile(dim, dims[dim], key); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func (c *Controller) resolvePercentile(dim string, score float64, key types.BenchmarkKey) *types.DimensionPercentile {
	p, err := c.engine.Percentile(dim, score, key)
	if err == nil {
		return p
	}

	if fallback := c.provider.DefaultKey(); fallback != nil && *fallback != key {
		if p, err = c.engine.Percentile(dim, score, *fallback); err == nil {
			return p
		}
	}

	c.logger.Warn("benchmark data unavailable",
		zap.String("dimension", dim),
		zap.String("key", key.String()))
	return nil
}
