package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/repository"
)

type snapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a snapshot repository backed by Postgres
func NewSnapshotRepository(db *pgxpool.Pool) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Insert(ctx context.Context, snapshot *domain.StatSnapshot) (int64, error) {
	recordedAt := snapshot.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id int64
	err = tx.QueryRow(ctx, SQLInsertSnapshot,
		snapshot.SubjectID,
		snapshot.CaptureID,
		snapshot.SubmitterID,
		snapshot.CharacterName,
		snapshot.CharacterLevel,
		snapshot.TrophyPoints,
		snapshot.GlobalPower,
		snapshot.Agility,
		snapshot.Endurance,
		snapshot.Serve,
		snapshot.Volley,
		snapshot.Forehand,
		snapshot.Backhand,
		snapshot.BuildLabel,
		recordedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertSnapshotFailed, err)
	}

	for _, item := range snapshot.Equipment {
		if _, err := tx.Exec(ctx, SQLInsertSnapshotEquipment, id, item.Slot, item.Name, item.Level); err != nil {
			return 0, fmt.Errorf(ErrMsgInsertSnapshotFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return id, nil
}

func (r *snapshotRepository) Latest(ctx context.Context, subjectID int64) (*domain.StatSnapshot, error) {
	snapshot, err := scanSnapshot(r.db.QueryRow(ctx, SQLSelectLatestSnapshot, subjectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetSnapshotFailed, err)
	}

	if err := r.loadEquipment(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *snapshotRepository) LatestForBuild(ctx context.Context, subjectID int64, characterName, buildLabel string) (*domain.StatSnapshot, error) {
	snapshot, err := scanSnapshot(r.db.QueryRow(ctx, SQLSelectLatestForBuild, subjectID, characterName, buildLabel))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetSnapshotFailed, err)
	}

	if err := r.loadEquipment(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *snapshotRepository) History(ctx context.Context, subjectID int64, limit int) ([]*domain.StatSnapshot, error) {
	rows, err := r.db.Query(ctx, SQLSelectSnapshotHistory, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSnapshotsFailed, err)
	}
	defer rows.Close()

	var snapshots []*domain.StatSnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListSnapshotsFailed, err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListSnapshotsFailed, err)
	}

	for _, snapshot := range snapshots {
		if err := r.loadEquipment(ctx, snapshot); err != nil {
			return nil, err
		}
	}
	return snapshots, nil
}

func (r *snapshotRepository) LatestByCharacter(ctx context.Context, characterName string) ([]*domain.StatSnapshot, error) {
	rows, err := r.db.Query(ctx, SQLSelectLatestByCharacter, characterName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSnapshotsFailed, err)
	}
	defer rows.Close()

	var snapshots []*domain.StatSnapshot
	for rows.Next() {
		var s domain.StatSnapshot
		err := rows.Scan(
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
			&s.SubjectName,
		)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListSnapshotsFailed, err)
		}
		snapshots = append(snapshots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListSnapshotsFailed, err)
	}
	return snapshots, nil
}

func (r *snapshotRepository) loadEquipment(ctx context.Context, snapshot *domain.StatSnapshot) error {
	rows, err := r.db.Query(ctx, SQLSelectSnapshotEquipment, snapshot.ID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetSnapshotFailed, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.EquipmentItem
		if err := rows.Scan(&item.Slot, &item.Name, &item.Level); err != nil {
			return fmt.Errorf(ErrMsgGetSnapshotFailed, err)
		}
		snapshot.Equipment = append(snapshot.Equipment, item)
	}
	return rows.Err()
}
