package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deciCalc/internal/domain"
	"deciCalc/internal/infrastructure/mongo"
	"deciCalc/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, инициализируется в TestMain.
var mongoContainer *testutil.MongoContainer

// setupMongoRepo подключается к тестовой MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *mongo.CalculationRepo {
	t.Helper()

	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "decicalc_test",
		Collection: "calculations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	// Очищаем коллекцию перед тестом
	err = client.Coll().Drop(ctx)
	if err != nil {
		// Игнорируем ошибку, если коллекции не было
		t.Logf("drop collection: %v (игнорируем)", err)
	}

	t.Cleanup(func() {
		client.Disconnect(context.Background())
	})

	return mongo.NewCalculationRepo(client, newTestLogger())
}

func TestMongoRepo_SaveAndGetHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	calc := mustCalc(t, "10", "5", domain.OpAdd)

	err := repo.SaveCalculation(ctx, calc)
	require.NoError(t, err, "SaveCalculation должен успешно сохранить")

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")

	require.Len(t, history, 1, "должна быть 1 запись")
	assert.True(t, history[0].Result.Equal(dec(t, "15")), "результат должен совпадать")
	assert.Equal(t, domain.OpAdd, history[0].Operation, "операция должна совпадать")
}

// Документ хранит decimal строками — обратный разбор не теряет точность.
func TestMongoRepo_DecimalRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)
	ctx := context.Background()

	calc := mustCalc(t, "0.1", "0.2", domain.OpAdd)
	require.NoError(t, repo.SaveCalculation(ctx, calc))

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	got := history[0]
	assert.Equal(t, "0.1", got.OperandA.String())
	assert.Equal(t, "0.2", got.OperandB.String())
	assert.Equal(t, "0.3", got.Result.String())
}

func TestMongoRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupMongoRepo(t)

	assert.NoError(t, repo.Ping(context.Background()))
}
