package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-LaundryService/pkg/txmanager"
)

var reservationColumns = []string{"room", "date", "slot", "machine"}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repository PostgreSQL-хранилище резерваций.
//
// Commit выполняется в SERIALIZABLE-транзакции с SELECT ... FOR UPDATE всей
// таблицы: таблица мала (две недели расписания), а блокировка даёт ту же
// линеаризуемость коммитов, что и мьютекс файлового хранилища.
type Repository struct {
	db        *sql.DB
	txManager TransactionManager
	observer  Observer
}

// NewRepository создает новый экземпляр PostgreSQL-хранилища
func NewRepository(db *sql.DB, txManager TransactionManager, observer Observer) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		observer:  observerOrNoop(observer),
	}
}

// Snapshot возвращает все резервации в детерминированном порядке
func (r *Repository) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return r.snapshot(ctx, false)
}

// Commit повторно проверяет предикат на актуальном состоянии под блокировкой
// и применяет мутацию одним INSERT или DELETE
func (r *Repository) Commit(ctx context.Context, mut domain.Mutation) error {
	start := time.Now()

	err := r.commit(ctx, mut)

	outcome := "ok"
	switch {
	case errors.Is(err, ErrConflict):
		outcome = "conflict"
	case err != nil:
		outcome = "error"
	}
	r.observer.CommitObserved(string(mut.Op), outcome, time.Since(start))

	return err
}

func (r *Repository) commit(ctx context.Context, mut domain.Mutation) error {
	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		snap, err := r.snapshot(txCtx, true)
		if err != nil {
			return err
		}

		if mut.Predicate != nil {
			if err := mut.Predicate(snap); err != nil {
				return fmt.Errorf("%w: %v", ErrConflict, err)
			}
		}

		switch mut.Op {
		case domain.OpInsert:
			return r.insert(txCtx, mut.Reservation)
		case domain.OpDelete:
			return r.delete(txCtx, mut.Reservation)
		default:
			return fmt.Errorf("%w: Commit - unknown mutation op %q", ErrExecQuery, mut.Op)
		}
	})

	// Проигрыш сериализации означает тот же исход, что и провал предиката:
	// конкурентный коммит успел раньше.
	if errors.Is(err, txmanager.ErrSerialization) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}

	return err
}

// Close закрывает пул соединений
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) snapshot(ctx context.Context, forUpdate bool) (domain.Snapshot, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	// COALESCE: строки, импортированные из старого формата, могут нести
	// NULL вместо номера машины.
	selectBuilder := psqlbuilder.Select(
		"room",
		"date",
		"slot",
		"COALESCE(machine, 1) AS machine",
	).
		From("reservations").
		OrderBy("date ASC", "slot ASC", "machine ASC", "room ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Snapshot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	snap := make(domain.Snapshot, 0)
	for rows.Next() {
		var res domain.Reservation
		var slot string

		if err := rows.Scan(&res.Room, &res.Date, &slot, &res.Machine); err != nil {
			return nil, fmt.Errorf("%w: Snapshot - scan row: %v", ErrScanRow, err)
		}

		res.Slot, err = domain.ParseSlot(slot)
		if err != nil {
			return nil, fmt.Errorf("%w: Snapshot - %v", ErrCorrupt, err)
		}
		res.Date = domain.NormalizeDate(res.Date)

		snap = append(snap, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Snapshot - rows error: %v", ErrScanRow, err)
	}

	return snap, nil
}

func (r *Repository) insert(ctx context.Context, res domain.Reservation) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(reservationColumns...).
		Values(res.Room, res.Date, res.Slot.String(), res.Machine).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insert - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insert - execute: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) delete(ctx context.Context, res domain.Reservation) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{
			"room":    res.Room,
			"date":    res.Date,
			"slot":    res.Slot.String(),
			"machine": res.Machine,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: delete - build query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: delete - execute: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete - rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		// Предикат видел строку под FOR UPDATE; нулевой результат означает
		// рассинхрон предиката и мутации.
		return fmt.Errorf("%w: delete - no matching row", ErrConflict)
	}

	return nil
}
