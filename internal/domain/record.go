package domain

// Record is the row shape shared by expenses and gains
type Record struct {
	ID          uint    `gorm:"primaryKey" json:"id"`                     // Primary key
	SlNo        string  `gorm:"uniqueIndex;not null;size:32" json:"slNo"` // Display code, e.g. EXP001
	Date        string  `gorm:"not null;size:32;index" json:"date"`       // YYYY-MM-DD
	Time        string  `gorm:"not null" json:"time"`                     // Free-form time of day
	Name        string  `gorm:"not null" json:"name"`                     // Counterparty or label
	Type        string  `gorm:"not null" json:"type"`                     // Free-text category
	Detail      string  `json:"detail"`                                   // Optional notes
	PaymentType string  `gorm:"not null" json:"paymentType"`              // Cash, card, transfer...
	Amount      float64 `gorm:"not null" json:"amount"`                   // Amount
	CreatedBy   uint    `gorm:"not null;index" json:"createdBy"`          // References User.ID
}

// Expense Model, stored in the expenses table
type Expense struct {
	Record
}

// TableName pins the expense table name
func (Expense) TableName() string { return KindExpense.Table }

// Gain Model, stored in the gains table
type Gain struct {
	Record
}

// TableName pins the gain table name
func (Gain) TableName() string { return KindGain.Table }

// RecordPatch carries the fields of a partial update; nil fields are left untouched
type RecordPatch struct {
	SlNo        *string  `json:"slNo"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Detail      *string  `json:"detail"`
	PaymentType *string  `json:"paymentType"`
	Amount      *float64 `json:"amount"`
}

// Columns maps the set fields to their column names
func (p RecordPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.SlNo != nil {
		cols["sl_no"] = *p.SlNo
	}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.Time != nil {
		cols["time"] = *p.Time
	}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Type != nil {
		cols["type"] = *p.Type
	}
	if p.Detail != nil {
		cols["detail"] = *p.Detail
	}
	if p.PaymentType != nil {
		cols["payment_type"] = *p.PaymentType
	}
	if p.Amount != nil {
		cols["amount"] = *p.Amount
	}
	return cols
}
