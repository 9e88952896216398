package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCapture(row rowScanner) (*domain.Capture, error) {
	var (
		c          domain.Capture
		status     string
		resultJSON []byte
	)

	err := row.Scan(
		&c.ID,
		&c.SubmitterID,
		&c.SubmitterName,
		&c.SubjectID,
		&c.BuildLabel,
		&c.ImageData,
		&c.ImageFilename,
		&status,
		&c.SubmittedAt,
		&c.ProcessedAt,
		&c.ValidatedAt,
		&c.NotifiedAt,
		&resultJSON,
		&c.ErrorMessage,
	)
	if err != nil {
		return nil, err
	}

	c.Status = domain.CaptureStatus(status)
	if len(resultJSON) > 0 {
		var result domain.ExtractionResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeResultFailed, err)
		}
		c.Result = &result
	}
	return &c, nil
}

func collectCaptures(rows pgx.Rows) ([]*domain.Capture, error) {
	var captures []*domain.Capture
	for rows.Next() {
		capture, err := scanCapture(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListCapturesFailed, err)
		}
		captures = append(captures, capture)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListCapturesFailed, err)
	}
	return captures, nil
}

func scanSnapshot(row rowScanner) (*domain.StatSnapshot, error) {
	var s domain.StatSnapshot
	err := row.Scan(
		&s.ID,
		&s.SubjectID,
		&s.CaptureID,
		&s.SubmitterID,
		&s.CharacterName,
		&s.CharacterLevel,
		&s.TrophyPoints,
		&s.GlobalPower,
		&s.Agility,
		&s.Endurance,
		&s.Serve,
		&s.Volley,
		&s.Forehand,
		&s.Backhand,
		&s.BuildLabel,
		&s.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
