// Package needs manages monthly-need records and their per-month payment
// records. Payment records are upserts: at most one exists per need and
// month.
package needs

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasku-dev/kasku/internal/id"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/month"
	"github.com/kasku-dev/kasku/internal/store"
)

// ErrNotFound is returned for an unknown need ID.
var ErrNotFound = errors.New("monthly need not found")

// Service provides monthly-need operations over the record store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates a needs Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// ValidateInput checks a monthly-need input, returning field-level errors.
func ValidateInput(in model.MonthlyNeedInput) []model.FieldError {
	var errs []model.FieldError
	if in.Name == "" {
		errs = append(errs, model.FieldError{Field: "name", Message: "is required"})
	}
	if in.BudgetAmount.Sign() < 0 {
		errs = append(errs, model.FieldError{Field: "budgetAmount", Message: "must not be negative"})
	}
	if in.DueDay < 0 || in.DueDay > 31 {
		errs = append(errs, model.FieldError{Field: "dueDay", Message: "must be between 1 and 31 when set"})
	}
	if in.StartMonth != "" {
		if _, err := month.Parse(in.StartMonth); err != nil {
			errs = append(errs, model.FieldError{Field: "startMonth", Message: "must be YYYY-MM"})
		}
	}
	switch in.RecurrencePeriod {
	case "", model.RecurMonthly, model.RecurYearly, model.RecurForever:
	default:
		errs = append(errs, model.FieldError{Field: "recurrencePeriod", Message: "must be monthly, yearly or forever"})
	}
	return errs
}

// Create validates and persists a new monthly need. An empty start month
// defaults to the creation month.
func (s *Service) Create(in model.MonthlyNeedInput) (model.MonthlyNeed, error) {
	if errs := ValidateInput(in); len(errs) > 0 {
		return model.MonthlyNeed{}, fmt.Errorf("invalid monthly need: %s", model.JoinFieldErrors(errs))
	}

	now := s.now()
	start := in.StartMonth
	if start == "" {
		start = month.FromTime(now).String()
	}
	period := in.RecurrencePeriod
	if period == "" {
		period = model.RecurForever
	}

	need := model.MonthlyNeed{
		ID:               id.New(),
		Name:             in.Name,
		BudgetAmount:     in.BudgetAmount,
		DueDay:           in.DueDay,
		RecurrencePeriod: period,
		StartMonth:       start,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	all, err := s.store.MonthlyNeeds()
	if err != nil {
		return model.MonthlyNeed{}, err
	}
	all = append(all, need)
	if err := s.store.SetMonthlyNeeds(all); err != nil {
		return model.MonthlyNeed{}, err
	}
	return need, nil
}

// UpsertPayment records the actual amount paid against a need for one
// month, replacing any existing record for the same (need, month) pair.
func (s *Service) UpsertPayment(needID string, yearMonth month.Key, amount decimal.Decimal) (model.MonthlyNeedPayment, error) {
	all, err := s.store.MonthlyNeeds()
	if err != nil {
		return model.MonthlyNeedPayment{}, err
	}
	known := false
	for _, n := range all {
		if n.ID == needID {
			known = true
			break
		}
	}
	if !known {
		return model.MonthlyNeedPayment{}, ErrNotFound
	}

	pays, err := s.store.MonthlyNeedPayments()
	if err != nil {
		return model.MonthlyNeedPayment{}, err
	}

	now := s.now()
	key := yearMonth.String()
	for i := range pays {
		if pays[i].NeedID == needID && pays[i].YearMonth == key {
			pays[i].ActualAmount = amount
			pays[i].UpdatedAt = now
			if err := s.store.SetMonthlyNeedPayments(pays); err != nil {
				return model.MonthlyNeedPayment{}, err
			}
			return pays[i], nil
		}
	}

	pay := model.MonthlyNeedPayment{
		ID:           id.New(),
		NeedID:       needID,
		YearMonth:    key,
		ActualAmount: amount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	pays = append(pays, pay)
	if err := s.store.SetMonthlyNeedPayments(pays); err != nil {
		return model.MonthlyNeedPayment{}, err
	}
	return pay, nil
}

// Delete removes a need and cascades into its payment records.
func (s *Service) Delete(needID string) error {
	all, err := s.store.MonthlyNeeds()
	if err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, n := range all {
		if n.ID == needID {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.store.SetMonthlyNeeds(kept); err != nil {
		return err
	}

	pays, err := s.store.MonthlyNeedPayments()
	if err != nil {
		return err
	}
	keptPays := pays[:0]
	for _, p := range pays {
		if p.NeedID == needID {
			continue
		}
		keptPays = append(keptPays, p)
	}
	return s.store.SetMonthlyNeedPayments(keptPays)
}
