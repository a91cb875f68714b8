package installment

import (
	"errors"
	"fmt"
	"time"

	"github.com/kasku-dev/kasku/internal/id"
	"github.com/kasku-dev/kasku/internal/model"
	"github.com/kasku-dev/kasku/internal/store"
)

// ErrPaidOff is returned when a payment is recorded against a plan whose
// ledger already covers the full amount. The ledger is left untouched.
var ErrPaidOff = errors.New("installment is already paid off")

// ErrNotFound is returned for an unknown installment ID.
var ErrNotFound = errors.New("installment not found")

// Service provides installment operations over the record store.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates an installment Service.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// ValidateInput checks an installment input, returning field-level errors.
func ValidateInput(in model.InstallmentInput) []model.FieldError {
	var errs []model.FieldError
	if in.Name == "" {
		errs = append(errs, model.FieldError{Field: "name", Message: "is required"})
	}
	if in.TotalTenor <= 0 {
		errs = append(errs, model.FieldError{Field: "totalTenor", Message: "must be at least 1 period"})
	}
	if in.MonthlyAmount.Sign() <= 0 {
		errs = append(errs, model.FieldError{Field: "monthlyAmount", Message: "must be greater than zero"})
	}
	if in.StartDate.IsZero() {
		errs = append(errs, model.FieldError{Field: "startDate", Message: "is required"})
	}
	return errs
}

// Create validates the input, assigns identity and persists a new
// installment with an empty ledger.
func (s *Service) Create(in model.InstallmentInput) (model.Installment, error) {
	if errs := ValidateInput(in); len(errs) > 0 {
		return model.Installment{}, fmt.Errorf("invalid installment: %s", model.JoinFieldErrors(errs))
	}

	now := s.now()
	inst := model.Installment{
		ID:            id.New(),
		Name:          in.Name,
		TotalTenor:    in.TotalTenor,
		MonthlyAmount: in.MonthlyAmount,
		StartDate:     in.StartDate,
		Subcategory:   in.Subcategory,
		Payments:      []model.InstallmentPayment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	Apply(&inst)

	insts, err := s.store.Installments()
	if err != nil {
		return model.Installment{}, err
	}
	insts = append(insts, inst)
	if err := s.store.SetInstallments(insts); err != nil {
		return model.Installment{}, err
	}
	return inst, nil
}

// Get returns one installment with freshly derived status fields.
func (s *Service) Get(instID string) (model.Installment, State, error) {
	insts, err := s.store.Installments()
	if err != nil {
		return model.Installment{}, State{}, err
	}
	for _, inst := range insts {
		if inst.ID == instID {
			st := Apply(&inst)
			return inst, st, nil
		}
	}
	return model.Installment{}, State{}, ErrNotFound
}

// List returns all installments with freshly derived status fields.
func (s *Service) List() ([]model.Installment, error) {
	insts, err := s.store.Installments()
	if err != nil {
		return nil, err
	}
	for i := range insts {
		Apply(&insts[i])
	}
	return insts, nil
}

// AddPayment appends a payment to the ledger, re-derives state and persists
// the whole collection. It fails without side effects when the plan is
// already paid off or the input is invalid.
func (s *Service) AddPayment(instID string, in model.PaymentInput) (model.Installment, error) {
	if in.Amount.Sign() <= 0 {
		return model.Installment{}, fmt.Errorf("invalid payment: %s",
			model.FieldError{Field: "amount", Message: "must be greater than zero"})
	}

	insts, err := s.store.Installments()
	if err != nil {
		return model.Installment{}, err
	}

	idx := -1
	for i := range insts {
		if insts[i].ID == instID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Installment{}, ErrNotFound
	}

	if Derive(insts[idx]).Status == model.InstallmentPaidOff {
		return model.Installment{}, ErrPaidOff
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	insts[idx].Payments = append(insts[idx].Payments, model.InstallmentPayment{
		ID:            id.New(),
		InstallmentID: instID,
		Amount:        in.Amount,
		Date:          date,
		Note:          in.Note,
	})
	insts[idx].UpdatedAt = s.now()
	Apply(&insts[idx])

	if err := s.store.SetInstallments(insts); err != nil {
		return model.Installment{}, err
	}
	return insts[idx], nil
}

// Delete removes an installment and, with it, its embedded payment ledger.
func (s *Service) Delete(instID string) error {
	insts, err := s.store.Installments()
	if err != nil {
		return err
	}
	kept := insts[:0]
	found := false
	for _, inst := range insts {
		if inst.ID == instID {
			found = true
			continue
		}
		kept = append(kept, inst)
	}
	if !found {
		return ErrNotFound
	}
	return s.store.SetInstallments(kept)
}
