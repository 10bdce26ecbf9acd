package pg

import (
	"context"
	"log/slog"

	"deciCalc/internal/domain"
)

// CalculationRepo реализует ports.ICalculationRepository для PostgreSQL.
type CalculationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(db *DB, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{db: db, log: log}
}

// SaveCalculation сохраняет вычисление в БД.
func (r *CalculationRepo) SaveCalculation(ctx context.Context, calc domain.Calculation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (operand_a, operand_b, operation, result, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		calc.OperandA, calc.OperandB, calc.Operation, calc.Result, calc.Timestamp)
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю вычислений из БД (последние сначала).
func (r *CalculationRepo) GetHistory(ctx context.Context) ([]domain.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, operand_a, operand_b, operation, result, created_at
		 FROM calculations ORDER BY created_at DESC`)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Calculation
	for rows.Next() {
		var calc domain.Calculation
		err := rows.Scan(&calc.ID, &calc.OperandA, &calc.OperandB, &calc.Operation, &calc.Result, &calc.Timestamp)
		if err != nil {
			return nil, err
		}
		list = append(list, calc)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
