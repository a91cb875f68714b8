package model

import "time"

// SchemaVersion is the current export bundle schema version.
const SchemaVersion = 3

// AppData is the versioned export bundle: a full snapshot of every
// collection plus settings. Version drives the migration chain applied
// on import.
type AppData struct {
	Version             int                  `json:"version"`
	Settings            Settings             `json:"settings"`
	Transactions        []Transaction        `json:"transactions"`
	Categories          []Category           `json:"categories"`
	Wishlist            []WishlistItem       `json:"wishlist"`
	Installments        []Installment        `json:"installments"`
	MonthlyNeeds        []MonthlyNeed        `json:"monthlyNeeds"`
	MonthlyNeedPayments []MonthlyNeedPayment `json:"monthlyNeedPayments"`
	Assets              []Asset              `json:"assets"`
	ExportedAt          time.Time            `json:"exportedAt"`
}
