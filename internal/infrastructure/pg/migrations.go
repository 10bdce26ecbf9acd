package pg

import (
	"context"
)

// Операнды и результат храним как NUMERIC: shopspring/decimal реализует
// driver.Valuer и sql.Scanner, точность при записи и чтении не теряется.
const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id         SERIAL PRIMARY KEY,
	operand_a  NUMERIC NOT NULL,
	operand_b  NUMERIC NOT NULL,
	operation  VARCHAR(10) NOT NULL,
	result     NUMERIC NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицу calculations, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createCalculationsTable)
	return err
}
