package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deciCalc/internal/infrastructure/redis"
	"deciCalc/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T) *redis.Cache {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Host:     redisContainer.Host,
		Port:     redisContainer.Port,
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewCache(client, newTestLogger())
}

func TestRedisCache_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "10 + 5", dec(t, "15"))
	require.NoError(t, err, "Set должен успешно сохранить")

	value, found, err := cache.Get(ctx, "10 + 5")
	require.NoError(t, err, "Get должен успешно получить")
	assert.True(t, found, "ключ должен быть найден")
	assert.True(t, value.Equal(dec(t, "15")), "значение должно совпадать, got %s", value)
}

func TestRedisCache_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	value, found, err := cache.Get(ctx, "несуществующий_ключ")

	require.NoError(t, err, "Get несуществующего ключа не должен возвращать ошибку")
	assert.False(t, found, "ключ не должен быть найден")
	assert.True(t, value.IsZero(), "значение должно быть нулевым")
}

func TestRedisCache_Overwrite(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "key", dec(t, "100"))
	require.NoError(t, err)

	err = cache.Set(ctx, "key", dec(t, "200"))
	require.NoError(t, err)

	value, found, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, value.Equal(dec(t, "200")), "значение должно быть перезаписано")
}

// Строковая форма decimal обратима: что положили, то и достали, без
// двоичных артефактов.
func TestRedisCache_DecimalPrecision(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	testCases := []string{
		"0.3",                // сумма 0.1 и 0.2 — без хвоста ...00000004
		"3.14159265358979",   // пи
		"0.0000000001",       // очень маленькое
		"10000000000",        // очень большое
		"-42.5",              // отрицательное
		"0.3333333333333333", // результат деления 1 на 3
	}

	for _, s := range testCases {
		expected := dec(t, s)
		key := "precision_test"
		require.NoError(t, cache.Set(ctx, key, expected))

		value, found, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, s, value.String(), "значение %s должно сохраняться точно", s)
	}
}
