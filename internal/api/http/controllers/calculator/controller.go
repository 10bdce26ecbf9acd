package calculator

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"deciCalc/internal/domain"
	"deciCalc/internal/ports"
)

// Controller — маршруты калькулятора: calculate, history.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/calculate", c.calculate)
	api.GET("/history", c.history)
}

// @Summary Выполнить вычисление
// @Description Принимает два десятичных операнда и имя операции (add, subtract, multiply, divide), возвращает точный результат. Результат кэшируется и сохраняется в БД.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Параметры вычисления"
// @Success 200 {object} CalculateResponse "Результат вычисления"
// @Failure 400 {object} CalculateResponse "Невалидный запрос, неизвестная операция или деление на ноль"
// @Failure 500 {object} CalculateResponse "Внутренняя ошибка сервера"
// @Router /api/v1/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CalculateResponse{Message: "invalid request: " + err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.log.Warn("calculate validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, CalculateResponse{Message: err.Error()})
		return
	}

	calc, err := c.uc.Calculate(ctx.Request.Context(), req.OperandA, req.OperandB, req.Operation)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownOperation) || errors.Is(err, domain.ErrDivisionByZero) {
			c.log.Warn("calculate rejected", "error", err)
			ctx.JSON(http.StatusBadRequest, CalculateResponse{Message: err.Error()})
			return
		}
		c.log.Error("calculate failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, CalculateResponse{Message: err.Error()})
		return
	}
	if calc == nil {
		ctx.JSON(http.StatusOK, CalculateResponse{})
		return
	}
	ctx.JSON(http.StatusOK, CalculateResponse{Result: calc.Result})
}

// @Summary Получить историю вычислений
// @Description Возвращает список всех выполненных вычислений из БД
// @Tags calculator
// @Produce json
// @Success 200 {object} HistoryResponse "Список вычислений"
// @Failure 500 {object} CalculateResponse "Внутренняя ошибка сервера"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, calc := range list {
		items[i] = HistoryItem{
			ID:        calc.ID,
			OperandA:  calc.OperandA,
			OperandB:  calc.OperandB,
			Operation: calc.Operation,
			Result:    calc.Result,
			Display:   calc.String(),
			Timestamp: calc.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
