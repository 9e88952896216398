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

type subjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a subject repository backed by Postgres
func NewSubjectRepository(db *pgxpool.Pool) repository.SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, ownerID, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, SQLInsertSubject, ownerID, name, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertSubjectFailed, err)
	}
	return id, nil
}

func (r *subjectRepository) GetByID(ctx context.Context, id int64) (*domain.Subject, error) {
	var s domain.Subject
	err := r.db.QueryRow(ctx, SQLSelectSubject, id).Scan(&s.ID, &s.OwnerID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubjectNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetSubjectFailed, err)
	}
	return &s, nil
}

func (r *subjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Subject, error) {
	rows, err := r.db.Query(ctx, SQLSelectSubjectsByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSubjectsFailed, err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		var s domain.Subject
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf(ErrMsgListSubjectsFailed, err)
		}
		subjects = append(subjects, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgListSubjectsFailed, err)
	}
	return subjects, nil
}
