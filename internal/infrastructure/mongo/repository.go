package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"deciCalc/internal/domain"
)

// calculationDoc — документ в коллекции calculations. Десятичные значения
// храним строками: строковая форма shopspring/decimal обратима без потерь
// (без ID — в домене ID int для совместимости с PG, при чтении оставляем 0).
type calculationDoc struct {
	OperandA  string    `bson:"operand_a"`
	OperandB  string    `bson:"operand_b"`
	Operation string    `bson:"operation"`
	Result    string    `bson:"result"`
	CreatedAt time.Time `bson:"created_at"`
}

// CalculationRepo реализует ports.ICalculationRepository для MongoDB.
type CalculationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewCalculationRepo возвращает репозиторий вычислений.
func NewCalculationRepo(client *Client, log *slog.Logger) *CalculationRepo {
	return &CalculationRepo{client: client, log: log}
}

// SaveCalculation сохраняет вычисление в коллекцию.
func (r *CalculationRepo) SaveCalculation(ctx context.Context, calc domain.Calculation) error {
	doc := calculationDoc{
		OperandA:  calc.OperandA.String(),
		OperandB:  calc.OperandB.String(),
		Operation: calc.Operation,
		Result:    calc.Result.String(),
		CreatedAt: calc.Timestamp,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveCalculation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю вычислений (последние сначала).
func (r *CalculationRepo) GetHistory(ctx context.Context) ([]domain.Calculation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []calculationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Calculation, 0, len(docs))
	for _, d := range docs {
		calc, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		list = append(list, calc)
	}
	return list, nil
}

// toDomain разбирает строковые значения документа обратно в decimal.
func (d calculationDoc) toDomain() (domain.Calculation, error) {
	a, err := decimal.NewFromString(d.OperandA)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("parse operand_a: %w", err)
	}
	b, err := decimal.NewFromString(d.OperandB)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("parse operand_b: %w", err)
	}
	res, err := decimal.NewFromString(d.Result)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("parse result: %w", err)
	}
	return domain.Calculation{
		ID:        0,
		OperandA:  a,
		OperandB:  b,
		Operation: d.Operation,
		Result:    res,
		Timestamp: d.CreatedAt,
	}, nil
}

// Ping проверяет доступность БД.
func (r *CalculationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
