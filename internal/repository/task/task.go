package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fikisha/internal/entities"
	"fikisha/internal/repository"
	taskservice "fikisha/internal/service/task"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const taskColumns = `id, tracking_code, confirmation_code, sender_id, driver_id,
		receiver_name, receiver_phone,
		pickup_address, pickup_latitude, pickup_longitude,
		delivery_address, delivery_latitude, delivery_longitude,
		package_description, delivery_amount, status,
		estimated_delivery_time, picked_up_at, delivered_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет строку задачи. ID, коды и статус уже проставлены сервисом.
// Коллизия уникального индекса по коду мапится в ErrDuplicateCode,
// сервис перегенерирует коды и повторит вставку.
func (r *Repository) Create(ctx context.Context, taskEntity *entities.DeliveryTask) (*entities.DeliveryTask, error) {
	query := `
		INSERT INTO tasks (
			id, tracking_code, confirmation_code, sender_id,
			receiver_name, receiver_phone,
			pickup_address, pickup_latitude, pickup_longitude,
			delivery_address, delivery_latitude, delivery_longitude,
			package_description, delivery_amount, status, estimated_delivery_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + taskColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		taskEntity.ID,
		taskEntity.TrackingCode,
		taskEntity.ConfirmationCode,
		taskEntity.SenderID,
		taskEntity.ReceiverName,
		taskEntity.ReceiverPhone,
		taskEntity.PickupAddress,
		taskEntity.PickupLatitude,
		taskEntity.PickupLongitude,
		taskEntity.DeliveryAddress,
		taskEntity.DeliveryLatitude,
		taskEntity.DeliveryLongitude,
		taskEntity.PackageDescription,
		taskEntity.DeliveryAmount,
		taskEntity.Status.String(),
		taskEntity.EstimatedDeliveryTime,
	)

	created, err := scanTask(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			switch repository.PgConstraintName(err) {
			case "tasks_tracking_code_key", "tasks_confirmation_code_key":
				return nil, taskservice.ErrDuplicateCode
			}
			return nil, taskservice.ErrTaskAlreadyExists
		}
		return nil, fmt.Errorf("unexpected task repository create error: %w", err)
	}

	created.Integration = taskEntity.Integration
	return created, nil
}

// SaveIntegration пишет сквозные метаданные интеграции отдельной строкой.
// Вызывается сервисом в одной транзакции с Create.
func (r *Repository) SaveIntegration(ctx context.Context, taskID string, meta entities.IntegrationMetadata) error {
	payload, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal integration metadata: %w", err)
	}

	query := `
		INSERT INTO task_integration (task_id, metadata)
		VALUES ($1, $2)
		ON CONFLICT (task_id) DO UPDATE SET metadata = EXCLUDED.metadata
	`
	_, err = r.querier.Exec(ctx, query, taskID, payload)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return taskservice.ErrTaskNotFound
		}
		return fmt.Errorf("unexpected task repository save integration error: %w", err)
	}
	return nil
}

// Claim условный апдейт принятия задачи водителем: единственный
// CAS-выражение по driver_id IS NULL, никаких read-then-write.
// Промах условия при живой строке означает проигранную гонку.
func (r *Repository) Claim(ctx context.Context, taskID, driverID string) (*entities.DeliveryTask, error) {
	query := `
		UPDATE tasks
		SET driver_id = $2,
		    status = 'accepted',
		    updated_at = NOW()
		WHERE id = $1
		  AND driver_id IS NULL
		  AND status = 'pending'
		RETURNING ` + taskColumns

	claimed, err := scanTask(r.querier.QueryRow(ctx, query, taskID, driverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveConditionalMiss(ctx, taskID, taskservice.ErrTaskAlreadyClaimed)
		}
		return nil, fmt.Errorf("unexpected task repository claim error: %w", err)
	}

	claimed.Integration = r.metadata(ctx, taskID)
	return claimed, nil
}

// Advance условный перевод статуса: успешен только если текущий статус
// входит в from. Производные метки времени ставятся тем же UPDATE-ом,
// что и статус, повторный вызов не перештампует picked_up_at/delivered_at.
func (r *Repository) Advance(
	ctx context.Context,
	taskID string,
	from []entities.TaskStatusType,
	to entities.TaskStatusType,
) (*entities.DeliveryTask, error) {
	fromStatuses := make([]string, 0, len(from))
	for _, s := range from {
		fromStatuses = append(fromStatuses, s.String())
	}

	builder := qb.
		Update("tasks").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()"))

	switch to {
	case entities.TaskPickedUp:
		builder = builder.Set("picked_up_at", sq.Expr("NOW()"))
	case entities.TaskDelivered:
		builder = builder.Set("delivered_at", sq.Expr("NOW()"))
	}

	builder = builder.
		Where(sq.Eq{"id": taskID, "status": fromStatuses}).
		Suffix("RETURNING " + taskColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected task repository advance error: %w", err)
	}

	advanced, err := scanTask(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveConditionalMiss(ctx, taskID, taskservice.ErrInvalidTransition)
		}
		return nil, fmt.Errorf("unexpected task repository advance error: %w", err)
	}

	advanced.Integration = r.metadata(ctx, taskID)
	return advanced, nil
}

func (r *Repository) GetByID(ctx context.Context, taskID string) (*entities.DeliveryTask, error) {
	query := selectJoined(`WHERE t.id = $1`)

	taskEntity, err := scanJoinedTask(r.querier.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taskservice.ErrTaskNotFound
		}
		return nil, fmt.Errorf("unexpected task repository getbyid error: %w", err)
	}

	return taskEntity, nil
}

func (r *Repository) GetByTrackingCode(ctx context.Context, trackingCode string) (*entities.DeliveryTask, error) {
	query := selectJoined(`WHERE t.tracking_code = $1`)

	taskEntity, err := scanJoinedTask(r.querier.QueryRow(ctx, query, trackingCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taskservice.ErrTaskNotFound
		}
		return nil, fmt.Errorf("unexpected task repository get by tracking code error: %w", err)
	}

	return taskEntity, nil
}

// ListAvailable задачи доступные к принятию: pending и без водителя,
// от старых к новым.
func (r *Repository) ListAvailable(ctx context.Context) ([]entities.DeliveryTask, error) {
	query := selectJoined(`
		WHERE t.status = 'pending' AND t.driver_id IS NULL
		ORDER BY t.created_at ASC`)

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected task repository list available error: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// ListForDriver активные задачи водителя, от новых к старым.
func (r *Repository) ListForDriver(ctx context.Context, driverID string, statuses []entities.TaskStatusType) ([]entities.DeliveryTask, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, s.String())
	}

	builder := qb.
		Select(joinedColumns).
		From("tasks t").
		LeftJoin("task_integration ti ON ti.task_id = t.id").
		Where(sq.Eq{"t.driver_id": driverID, "t.status": statusStrings}).
		OrderBy("t.created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected task repository list for driver error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected task repository list for driver error: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// CountByStatus количество задач в каждом статусе, для метрик дашборда.
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.TaskStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM tasks
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected task repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.TaskStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected task repository count by status error: %w", err)
		}
		counts[entities.TaskStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected task repository count by status error: %w", err)
	}

	return counts, nil
}

// CancelStale отменяет зависшие pending-задачи, которые никто не принял.
// Затронутые строки никому не принадлежат, обычный массовый апдейт.
func (r *Repository) CancelStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		UPDATE tasks
		SET status = 'cancelled', updated_at = NOW()
		WHERE status = 'pending'
		  AND driver_id IS NULL
		  AND created_at < $1
	`

	tag, err := r.querier.Exec(ctx, query, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("unexpected task repository cancel stale error: %w", err)
	}

	return tag.RowsAffected(), nil
}

// resolveConditionalMiss различает "строки нет" и "условие не прошло"
// после промаха условного апдейта. Диагностическое чтение, сам переход
// уже не состоялся.
func (r *Repository) resolveConditionalMiss(ctx context.Context, taskID string, conditionErr error) error {
	_, err := r.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			return taskservice.ErrTaskNotFound
		}
		return fmt.Errorf("unexpected task repository conditional miss check error: %w", err)
	}
	return conditionErr
}

// metadata подтягивает метаданные интеграции после апдейта.
// Метаданные неизменны после создания, отдельное чтение гонок не создает.
// Любая ошибка здесь - пустые метаданные, выборка важнее парсинга.
func (r *Repository) metadata(ctx context.Context, taskID string) entities.IntegrationMetadata {
	query := `SELECT metadata FROM task_integration WHERE task_id = $1`

	var payload []byte
	if err := r.querier.QueryRow(ctx, query, taskID).Scan(&payload); err != nil {
		return entities.IntegrationMetadata{}
	}

	var meta entities.IntegrationMetadata
	if err := json.Unmarshal(payload, &meta); err != nil {
		return entities.IntegrationMetadata{}
	}
	return meta
}
