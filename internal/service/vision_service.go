package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"neuroscreen_backend/internal/config"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

const visionSessionKeyPrefix = "vision:session:"

// visionSession is the transient state of one adaptive contrast test,
// kept in Redis until the trial budget is exhausted.
type visionSession struct {
	ID         string  `json:"id"`
	UserID     uint    `json:"userId"`
	Difficulty int     `json:"difficulty"`
	Trial      int     `json:"trial"`
	Credits    float64 `json:"credits"`
}

// VisionRound is what the client needs to render the next stimulus.
type VisionRound struct {
	Image      string `json:"image"`
	SessionID  string `json:"session_id"`
	Difficulty int    `json:"difficulty"`
}

// VisionOutcome closes a session.
type VisionOutcome struct {
	Status           string  `json:"status"`
	VisionScore      float64 `json:"vision_score"`
	InterpretationEN string  `json:"interpretation_en"`
	InterpretationAR string  `json:"interpretation_ar"`
}

type VisionService struct {
	Redis   *redis.Client
	Cfg     config.VisionConfig
	Results *ResultService
}

func NewVisionService(rdb *redis.Client, cfg config.VisionConfig, results *ResultService) *VisionService {
	return &VisionService{
		Redis:   rdb,
		Cfg:     cfg,
		Results: results,
	}
}

// advanceDifficulty runs the one-up one-down staircase: a seen stimulus
// moves one level harder, a missed one moves one level easier, clamped
// to [1, max].
func advanceDifficulty(current int, seen bool, max int) int {
	next := current
	if seen {
		next++
	} else {
		next--
	}
	if next < 1 {
		next = 1
	}
	if next > max {
		next = max
	}
	return next
}

// trialCredit is the contribution of one answer: seeing a stimulus
// earns its difficulty level, missing it earns nothing.
func trialCredit(difficulty int, seen bool) float64 {
	if !seen {
		return 0
	}
	return float64(difficulty)
}

// visionScore normalizes accumulated credits to a 0-100 scale.
func visionScore(credits float64, trials, maxDifficulty int) float64 {
	if trials == 0 || maxDifficulty == 0 {
		return 0
	}
	return math.Round(100 * (credits / float64(trials)) / float64(maxDifficulty))
}

// interpretationFor maps a vision score to its bilingual reading.
func interpretationFor(score float64) (en, ar string) {
	switch {
	case score >= 70:
		return "Normal contrast sensitivity", "حساسية التباين طبيعية"
	case score >= 40:
		return "Borderline contrast sensitivity, monitoring advised", "حساسية التباين حدية، يُنصح بالمتابعة"
	default:
		return "Reduced contrast sensitivity, clinical assessment recommended", "انخفاض في حساسية التباين، يُنصح بالتقييم السريري"
	}
}

func stimulusImage(difficulty int) string {
	return fmt.Sprintf("contrast_%d.png", difficulty)
}

func (s *VisionService) sessionKey(id string) string {
	return visionSessionKeyPrefix + id
}

func (s *VisionService) sessionTTL() time.Duration {
	return time.Duration(s.Cfg.SessionTTLMinutes) * time.Minute
}

func (s *VisionService) saveSession(ctx context.Context, sess *visionSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, s.sessionKey(sess.ID), raw, s.sessionTTL()).Err()
}

func (s *VisionService) loadSession(ctx context.Context, id string) (*visionSession, error) {
	raw, err := s.Redis.Get(ctx, s.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	var sess visionSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Start opens a fresh session at the configured starting difficulty.
// Any previous unfinished session for the user simply expires.
func (s *VisionService) Start(ctx context.Context, userID uint) (*VisionRound, error) {
	sess := &visionSession{
		ID:         model.GenerateUUID(),
		UserID:     userID,
		Difficulty: s.Cfg.StartDifficulty,
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return &VisionRound{
		Image:      stimulusImage(sess.Difficulty),
		SessionID:  sess.ID,
		Difficulty: sess.Difficulty,
	}, nil
}

// Answer records one response. The trial is credited against the
// difficulty the server presented, not the one the client reports.
// It either returns the next round or, once the trial budget is spent,
// the final outcome, which is also persisted as the user's vision
// modality result.
func (s *VisionService) Answer(ctx context.Context, userID uint, sessionID string, seen bool) (*VisionRound, *VisionOutcome, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.UserID != userID {
		return nil, nil, util.ErrSessionNotFound
	}

	sess.Credits += trialCredit(sess.Difficulty, seen)
	sess.Trial++

	if sess.Trial >= s.Cfg.Trials {
		score := visionScore(sess.Credits, sess.Trial, s.Cfg.MaxDifficulty)
		en, ar := interpretationFor(score)

		if _, err := s.Results.SaveModality(userID, model.ModalityVision, score, en, ar, sess.ID); err != nil {
			return nil, nil, err
		}
		s.Redis.Del(ctx, s.sessionKey(sess.ID))

		return nil, &VisionOutcome{
			Status:           "finished",
			VisionScore:      score,
			InterpretationEN: en,
			InterpretationAR: ar,
		}, nil
	}

	sess.Difficulty = advanceDifficulty(sess.Difficulty, seen, s.Cfg.MaxDifficulty)
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, nil, err
	}

	return &VisionRound{
		Image:      stimulusImage(sess.Difficulty),
		SessionID:  sess.ID,
		Difficulty: sess.Difficulty,
	}, nil, nil
}
