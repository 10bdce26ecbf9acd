package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deciCalc/internal/domain"
	"deciCalc/internal/infrastructure/click"
	"deciCalc/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) (*click.CalculationWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewCalculationWriter(client)

	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.calculations_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

func TestClickWriter_WriteCalculation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	calc := mustCalc(t, "10", "5", domain.OpAdd)

	err := writer.WriteCalculation(ctx, calc)
	require.NoError(t, err, "WriteCalculation должен успешно записать")

	var count uint64
	err = client.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM default.calculations_analytics").Scan(&count)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "в таблице должна быть 1 запись")
}

// EnsureTable идемпотентен: повторный вызов на существующей таблице — не ошибка.
func TestClickWriter_EnsureTableIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, _ := setupClickWriter(t)

	assert.NoError(t, writer.EnsureTable(context.Background()))
}
