package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/shenikar/wildfire_notifier/internal/service"
)

const subscriberColumns = `
	id,
	latitude,
	longitude,
	phone,
	hook,
	token,
	telegram_chat_id,
	last_notified_at,
	created_at`

type SubscriberRepository struct {
	db *pgxpool.Pool
}

func NewSubscriberRepository(db *pgxpool.Pool) service.SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Create сохраняет подписчика; в БД пишутся только поля выбранного канала
func (r *SubscriberRepository) Create(ctx context.Context, sub *models.Subscriber) error {
	query := `
		INSERT INTO subscribers (latitude, longitude, phone, hook, token, telegram_chat_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	c := sub.Contact
	err := r.db.QueryRow(ctx, query,
		sub.Latitude,
		sub.Longitude,
		c.Phone,
		c.Hook,
		c.Token,
		c.ChatID,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

// GetByID возвращает подписчика по его UUID
func (r *SubscriberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + `
		FROM subscribers
		WHERE id = $1;
	`
	sub, err := scanSubscriber(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subscriber with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subscriber by id: %w", err)
	}
	return sub, nil
}

// ListSubscribers возвращает всех подписчиков в порядке регистрации
func (r *SubscriberRepository) ListSubscribers(ctx context.Context) ([]*models.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + `
		FROM subscribers
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]*models.Subscriber, 0)
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return subs, nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subscribers WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("subscriber with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// MarkNotified записывает время последней успешной отправки
func (r *SubscriberRepository) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE subscribers SET last_notified_at = $1 WHERE id = $2;`, at, id)
	if err != nil {
		return fmt.Errorf("failed to mark subscriber notified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("subscriber with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func scanSubscriber(row pgx.Row) (*models.Subscriber, error) {
	var (
		sub    models.Subscriber
		phone  string
		hook   string
		token  string
		chatID int64
	)
	err := row.Scan(
		&sub.ID,
		&sub.Latitude,
		&sub.Longitude,
		&phone,
		&hook,
		&token,
		&chatID,
		&sub.LastNotifiedAt,
		&sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.Contact = models.ResolveContact(phone, hook, token, chatID)
	return &sub, nil
}
