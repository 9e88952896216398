// Package snapshot turns validated captures into append-only history points.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lestat2Lioncourt/discord-bot/internal/build"
	"github.com/Lestat2Lioncourt/discord-bot/internal/dedup"
	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/repository"
)

// Service stores validated extraction results as snapshots.
type Service interface {
	// Append stores a new snapshot for the subject unless it duplicates the
	// latest one for the same character and build, in which case it returns
	// domain.ErrDuplicateSnapshot. An empty buildLabel is derived from the
	// attribute spread.
	Append(ctx context.Context, capture *domain.Capture, subjectID int64, buildLabel string) (*domain.StatSnapshot, error)

	// History returns the subject's snapshots oldest first.
	History(ctx context.Context, subjectID int64, limit int) ([]*domain.StatSnapshot, error)

	// Latest returns the subject's most recent snapshot, or nil.
	Latest(ctx context.Context, subjectID int64) (*domain.StatSnapshot, error)

	// Compare returns the most recent snapshot of the named character for
	// every subject that has one, strongest first.
	Compare(ctx context.Context, characterName string) ([]*domain.StatSnapshot, error)
}

type service struct {
	snapshots repository.SnapshotRepository
}

// NewService creates a snapshot service
func NewService(snapshots repository.SnapshotRepository) Service {
	return &service{snapshots: snapshots}
}

func (s *service) Append(ctx context.Context, capture *domain.Capture, subjectID int64, buildLabel string) (*domain.StatSnapshot, error) {
	log := logger.FromContext(ctx)

	if capture.Result == nil {
		return nil, errors.New(ErrMsgNoResult)
	}

	candidate := fromCapture(capture, subjectID, buildLabel)

	// The dedup baseline is keyed by (subject, character, build), so the
	// derived build label has to be resolved before the lookup.
	latest, err := s.snapshots.LatestForBuild(ctx, subjectID, candidate.CharacterName, candidate.BuildLabel)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgAppendFailed, err)
	}
	if dedup.Equal(latest, candidate) {
		log.Info(LogMsgDuplicateSkipped, "subjectID", subjectID, "captureID", capture.ID)
		return nil, domain.ErrDuplicateSnapshot
	}

	id, err := s.snapshots.Insert(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgAppendFailed, err)
	}
	candidate.ID = id

	log.Info(LogMsgSnapshotAppended,
		"subjectID", subjectID,
		"captureID", capture.ID,
		"snapshotID", id,
		"build", candidate.BuildLabel)
	return candidate, nil
}

func (s *service) History(ctx context.Context, subjectID int64, limit int) ([]*domain.StatSnapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	history, err := s.snapshots.History(ctx, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHistoryFailed, err)
	}
	return history, nil
}

func (s *service) Latest(ctx context.Context, subjectID int64) (*domain.StatSnapshot, error) {
	return s.snapshots.Latest(ctx, subjectID)
}

func (s *service) Compare(ctx context.Context, characterName string) ([]*domain.StatSnapshot, error) {
	snapshots, err := s.snapshots.LatestByCharacter(ctx, characterName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompareFailed, err)
	}
	return snapshots, nil
}

// fromCapture maps an extraction result onto a snapshot row.
func fromCapture(capture *domain.Capture, subjectID int64, buildLabel string) *domain.StatSnapshot {
	result := capture.Result

	name := UnknownCharacterName
	if result.CharacterName != nil && *result.CharacterName != "" {
		name = *result.CharacterName
	}

	if buildLabel == "" {
		buildLabel = build.Label(result.Attributes())
	}

	return &domain.StatSnapshot{
		SubjectID:      subjectID,
		CaptureID:      capture.ID,
		SubmitterID:    capture.SubmitterID,
		CharacterName:  name,
		CharacterLevel: result.CharacterLevel,
		TrophyPoints:   result.TrophyPoints,
		GlobalPower:    result.GlobalPower,
		Agility:        result.Agility,
		Endurance:      result.Endurance,
		Serve:          result.Serve,
		Volley:         result.Volley,
		Forehand:       result.Forehand,
		Backhand:       result.Backhand,
		BuildLabel:     buildLabel,
		Equipment:      result.Equipment,
	}
}
