package dto

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// DateLayout formato de fecha en requests y responses (YYYY-MM-DD).
const DateLayout = "2006-01-02"

func init() {
	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP. La clave "error" se mantiene por compatibilidad con el frontend.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// PeriodQuery filtro de fechas opcional en query string.
type PeriodQuery struct {
	From string `query:"data_inicio"`
	To   string `query:"data_fim"`
}

// Period convierte el filtro en repository.Period. Fechas mal formadas o un rango invertido
// devuelven un error que envuelve domain.ErrInvalidInput.
func (q PeriodQuery) Period() (repository.Period, error) {
	var p repository.Period
	if q.From != "" {
		from, err := ParseDate("data_inicio", q.From)
		if err != nil {
			return p, err
		}
		p.From = &from
	}
	if q.To != "" {
		to, err := ParseDate("data_fim", q.To)
		if err != nil {
			return p, err
		}
		p.To = &to
	}
	if p.From != nil && p.To != nil && p.From.After(*p.To) {
		return p, domain.NewValidationError("data_inicio", domain.ErrInvalidPeriod.Error())
	}
	return p, nil
}

// ParseDate interpreta una fecha YYYY-MM-DD (UTC).
func ParseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "data inválida, use YYYY-MM-DD")
	}
	return d, nil
}

// FormatDate formatea una fecha como YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Validate ejecuta las reglas del request y traduce el resultado a *domain.ValidationError.
func Validate(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) && len(errs) == 1 {
		for field, fieldErr := range errs {
			return domain.NewValidationError(field, fieldErr.Error())
		}
	}
	return domain.NewValidationError("", err.Error())
}

// nonNegative regla ozzo para montos decimales (>= 0).
var nonNegative = validation.By(func(value interface{}) error {
	if d, ok := decimalValue(value); ok && d.IsNegative() {
		return errors.New("não pode ser negativo")
	}
	return nil
})

// positive regla ozzo para montos decimales (> 0).
var positive = validation.By(func(value interface{}) error {
	if d, ok := decimalValue(value); ok && !d.IsPositive() {
		return errors.New("deve ser maior que zero")
	}
	return nil
})

// cents regla ozzo para montos NUMERIC(14,2): como máximo dos decimales.
var cents = validation.By(func(value interface{}) error {
	if d, ok := decimalValue(value); ok && !d.Equal(d.Round(2)) {
		return errors.New("no máximo duas casas decimais")
	}
	return nil
})

func decimalValue(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	}
	return decimal.Decimal{}, false
}
