package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Abinash-k/Freelance-Portal/internal/model"
)

type meetings struct{ db *sql.DB }

func (m *meetings) Create(ctx context.Context, in *model.Meeting) (*model.Meeting, error) {
	id := uuid.New().String()
	attendees, err := json.Marshal(in.Attendees)
	if err != nil {
		return nil, fmt.Errorf("marshal attendees: %w", err)
	}
	status := in.Status
	if status == "" {
		status = model.MeetingScheduled
	}

	var created, updated time.Time
	row := m.db.QueryRowContext(ctx, `
        INSERT INTO meetings (id, user_id, title, description, date, duration, attendees, location, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at, updated_at
    `, id, in.UserID, in.Title, in.Description, in.Date, in.Duration, attendees, in.Location, status)
	if err := row.Scan(&created, &updated); err != nil {
		return nil, err
	}

	out := *in
	out.ID = id
	out.Status = status
	out.CreatedAt = created
	out.UpdatedAt = updated
	return &out, nil
}

func (m *meetings) Get(ctx context.Context, userID, meetingID string) (*model.Meeting, error) {
	row := m.db.QueryRowContext(ctx, `
        SELECT id, user_id, title, description, date, duration, attendees, location, status, created_at, updated_at
        FROM meetings WHERE user_id=$1 AND id=$2
    `, userID, meetingID)
	return scanMeeting(row)
}

func (m *meetings) List(ctx context.Context, userID string) ([]*model.Meeting, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, user_id, title, description, date, duration, attendees, location, status, created_at, updated_at
        FROM meetings WHERE user_id=$1 ORDER BY date DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Meeting
	for rows.Next() {
		mt, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, mt)
	}
	return out, rows.Err()
}

func (m *meetings) UpdateStatus(ctx context.Context, userID, meetingID, status string) (*model.Meeting, error) {
	res, err := m.db.ExecContext(ctx, `
        UPDATE meetings SET status=$3, updated_at=now() WHERE user_id=$1 AND id=$2
    `, userID, meetingID, status)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return m.Get(ctx, userID, meetingID)
}

func (m *meetings) Delete(ctx context.Context, userID, meetingID string) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM meetings WHERE user_id=$1 AND id=$2`, userID, meetingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (*model.Meeting, error) {
	var out model.Meeting
	var attendees []byte
	err := row.Scan(&out.ID, &out.UserID, &out.Title, &out.Description, &out.Date, &out.Duration,
		&attendees, &out.Location, &out.Status, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(attendees, &out.Attendees); err != nil {
		return nil, fmt.Errorf("unmarshal attendees: %w", err)
	}
	return &out, nil
}
