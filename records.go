package household

import (
	"errors"
	"fmt"
	"strings"
)

// RecordType is a typed string identifying the kind of a snapshot record.
type RecordType string

// Record types used in the snapshot file, one per data-model entity.
const (
	RecMember  RecordType = "member"
	RecAccount RecordType = "account"
	RecTx      RecordType = "transaction"
	RecAsset   RecordType = "asset"
	RecGoal    RecordType = "goal"
	RecVesting RecordType = "vesting"
	RecBudget  RecordType = "budget"
	RecSummary RecordType = "summary"
)

// Record defines the common interface for all snapshot records.
type Record interface {
	What() RecordType // What returns the record type (e.g. "account").
	Validate() error  // Validate checks the record for structural correctness.
}

// AccountType is the closed enumeration of account kinds.
type AccountType int

const (
	Checking AccountType = iota
	Savings
	Investment
	Retirement
	Vesting
	OtherAccount
)

func (t AccountType) String() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case Investment:
		return "investment"
	case Retirement:
		return "retirement"
	case Vesting:
		return "vesting"
	case OtherAccount:
		return "other"
	default:
		panic(fmt.Sprintf("unknown account type %d", int(t)))
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checking":
		return Checking, nil
	case "savings":
		return Savings, nil
	case "investment":
		return Investment, nil
	case "retirement":
		return Retirement, nil
	case "vesting":
		return Vesting, nil
	case "other":
		return OtherAccount, nil
	default:
		return OtherAccount, fmt.Errorf("unknown account type %q", s)
	}
}

func (t AccountType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *AccountType) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseAccountType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IsLiquid reports whether balances of this account type count toward
// the emergency fund.
func (t AccountType) IsLiquid() bool { return t == Checking || t == Savings }

// HouseholdMember is a person of the household. Members declare a
// monthly income and are referenced by accounts and transactions; they
// never own transactions directly.
type HouseholdMember struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MonthlyIncome Money  `json:"monthlyIncome"`
	Color         string `json:"color,omitempty"`
}

func (HouseholdMember) What() RecordType { return RecMember }

func (m HouseholdMember) Validate() error {
	if m.ID == "" {
		return errors.New("member id is missing")
	}
	if m.Name == "" {
		return fmt.Errorf("member %q has no name", m.ID)
	}
	if m.MonthlyIncome.IsNegative() {
		return fmt.Errorf("member %q has a negative monthly income", m.ID)
	}
	return nil
}

func (m HouseholdMember) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecMember)
	w.Append("id", m.ID)
	w.Append("name", m.Name)
	w.Append("monthlyIncome", m.MonthlyIncome)
	w.Optional("color", m.Color)
	return w.MarshalJSON()
}

// Account is a financial account. Its balance is the authoritative
// current snapshot: transactions are historical annotations, not the
// source of truth for the balance.
type Account struct {
	ID       string      `json:"id"`
	MemberID string      `json:"member,omitempty"` // empty = household-shared
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Balance  Money       `json:"balance"`
	Color    string      `json:"color,omitempty"`
	Updated  Date        `json:"updated,omitempty"`
}

func (Account) What() RecordType { return RecAccount }

func (a Account) Validate() error {
	if a.ID == "" {
		return errors.New("account id is missing")
	}
	if a.Name == "" {
		return fmt.Errorf("account %q has no name", a.ID)
	}
	if a.Type < Checking || a.Type > OtherAccount {
		return fmt.Errorf("account %q has unknown type %d", a.ID, int(a.Type))
	}
	if a.Balance.IsNegative() {
		return fmt.Errorf("account %q has a negative balance", a.ID)
	}
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecAccount)
	w.Append("id", a.ID)
	w.Optional("member", a.MemberID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("balance", a.Balance)
	w.Optional("color", a.Color)
	if !a.Updated.IsZero() {
		w.Append("updated", a.Updated)
	}
	return w.MarshalJSON()
}

// Transaction is a dated, signed cash movement: positive amounts are
// inflows, negative amounts outflows. Immutable once recorded except
// for correction edits, which happen outside this engine.
type Transaction struct {
	ID          string `json:"id"`
	AccountID   string `json:"account"`
	MemberID    string `json:"member,omitempty"`
	Date        Date   `json:"date"`
	Amount      Money  `json:"amount"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

func (Transaction) What() RecordType { return RecTx }

func (t Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction id is missing")
	}
	if t.AccountID == "" {
		return fmt.Errorf("transaction %q has no account", t.ID)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %q has no date", t.ID)
	}
	return nil
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecTx)
	w.Append("id", t.ID)
	w.Append("account", t.AccountID)
	w.Optional("member", t.MemberID)
	w.Append("date", t.Date)
	w.Append("amount", t.Amount)
	w.Optional("description", t.Description)
	w.Optional("category", t.Category)
	return w.MarshalJSON()
}

// Asset is a non-account holding (property, vehicle, collectible).
type Asset struct {
	ID            string `json:"id"`
	MemberID      string `json:"member,omitempty"`
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	Value         Money  `json:"value"`
	PurchaseValue Money  `json:"purchaseValue,omitempty"`
}

func (Asset) What() RecordType { return RecAsset }

func (a Asset) Validate() error {
	if a.ID == "" {
		return errors.New("asset id is missing")
	}
	if a.Name == "" {
		return fmt.Errorf("asset %q has no name", a.ID)
	}
	if a.Value.IsNegative() {
		return fmt.Errorf("asset %q has a negative value", a.ID)
	}
	return nil
}

// Gain returns the unrealized gain or loss against the purchase value,
// or zero money when no purchase value was recorded.
func (a Asset) Gain() Money {
	if a.PurchaseValue.IsZero() {
		return M(0, a.Value.Currency())
	}
	return a.Value.Sub(a.PurchaseValue)
}

func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecAsset)
	w.Append("id", a.ID)
	w.Optional("member", a.MemberID)
	w.Append("name", a.Name)
	w.Optional("category", a.Category)
	w.Append("value", a.Value)
	if !a.PurchaseValue.IsZero() {
		w.Append("purchaseValue", a.PurchaseValue)
	}
	return w.MarshalJSON()
}

// Goal is a savings target with a deadline.
type Goal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Target      Money  `json:"target"`
	Current     Money  `json:"current"`
	Created     Date   `json:"created,omitempty"`
	TargetDate  Date   `json:"targetDate"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

func (Goal) What() RecordType { return RecGoal }

func (g Goal) Validate() error {
	if g.ID == "" {
		return errors.New("goal id is missing")
	}
	if g.Name == "" {
		return fmt.Errorf("goal %q has no name", g.ID)
	}
	if g.Target.IsNegative() || g.Current.IsNegative() {
		return fmt.Errorf("goal %q has negative amounts", g.ID)
	}
	return nil
}

// Progress returns current/target as a percentage, clamped to [0,100].
func (g Goal) Progress() Percent {
	if !g.Target.IsPositive() {
		return 0
	}
	p := Percent(100 * g.Current.AsFloat() / g.Target.AsFloat())
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Remaining returns the amount left to save, floored at zero.
func (g Goal) Remaining() Money {
	if g.Current.GreaterThanOrEqual(g.Target) {
		return M(0, g.Target.Currency())
	}
	return g.Target.Sub(g.Current)
}

func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecGoal)
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("target", g.Target)
	w.Append("current", g.Current)
	if !g.Created.IsZero() {
		w.Append("created", g.Created)
	}
	w.Append("targetDate", g.TargetDate)
	w.Optional("description", g.Description)
	w.Optional("category", g.Category)
	return w.MarshalJSON()
}

// VestingSchedule is an equity-style compensation schedule: a monthly
// amount vesting between start and end, with an optional one-time cliff
// released after CliffMonths whole months from start.
type VestingSchedule struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Start       Date   `json:"start"`
	End         Date   `json:"end"`
	Monthly     Money  `json:"monthly"`
	Cliff       Money  `json:"cliff,omitempty"`
	CliffMonths int    `json:"cliffMonths,omitempty"`
}

func (VestingSchedule) What() RecordType { return RecVesting }

func (v VestingSchedule) Validate() error {
	if v.ID == "" {
		return errors.New("vesting schedule id is missing")
	}
	if v.Start.IsZero() || v.End.IsZero() {
		return fmt.Errorf("vesting schedule %q has no start or end date", v.ID)
	}
	if v.End.Before(v.Start) {
		return fmt.Errorf("vesting schedule %q ends before it starts", v.ID)
	}
	if v.Monthly.IsNegative() || v.Cliff.IsNegative() {
		return fmt.Errorf("vesting schedule %q has negative amounts", v.ID)
	}
	if v.CliffMonths < 0 {
		return fmt.Errorf("vesting schedule %q has a negative cliff period", v.ID)
	}
	return nil
}

func (v VestingSchedule) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecVesting)
	w.Append("id", v.ID)
	w.Optional("name", v.Name)
	w.Append("start", v.Start)
	w.Append("end", v.End)
	w.Append("monthly", v.Monthly)
	if !v.Cliff.IsZero() {
		w.Append("cliff", v.Cliff)
		w.Append("cliffMonths", v.CliffMonths)
	}
	return w.MarshalJSON()
}

// BudgetCategory carries one category's allocated sub-amount.
type BudgetCategory struct {
	Category  string `json:"category"`
	Allocated Money  `json:"allocated"`
}

// Budget is scoped to one calendar month. Category allocations need not
// sum to the budget total: categories may be partial.
type Budget struct {
	Month      Month            `json:"month"`
	Total      Money            `json:"total"`
	Categories []BudgetCategory `json:"categories,omitempty"`
}

func (Budget) What() RecordType { return RecBudget }

func (b Budget) Validate() error {
	if b.Month.IsZero() {
		return errors.New("budget month is missing")
	}
	if b.Total.IsNegative() {
		return fmt.Errorf("budget %s has a negative total", b.Month)
	}
	for _, c := range b.Categories {
		if c.Category == "" {
			return fmt.Errorf("budget %s has a category without a label", b.Month)
		}
		if c.Allocated.IsNegative() {
			return fmt.Errorf("budget %s allocates a negative amount to %q", b.Month, c.Category)
		}
	}
	return nil
}

func (b Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecBudget)
	w.Append("month", b.Month)
	w.Append("total", b.Total)
	if len(b.Categories) > 0 {
		w.Append("categories", b.Categories)
	}
	return w.MarshalJSON()
}

// MonthlySummary is an optional historical record of one month's
// aggregates, used to seed projections when present.
type MonthlySummary struct {
	Month    Month `json:"month"`
	Income   Money `json:"income"`
	Spending Money `json:"spending"`
	Savings  Money `json:"savings"`
	NetWorth Money `json:"netWorth"`
}

func (MonthlySummary) What() RecordType { return RecSummary }

func (s MonthlySummary) Validate() error {
	if s.Month.IsZero() {
		return errors.New("monthly summary month is missing")
	}
	if s.Income.IsNegative() || s.Spending.IsNegative() {
		return fmt.Errorf("monthly summary %s has negative income or spending", s.Month)
	}
	return nil
}

func (s MonthlySummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", RecSummary)
	w.Append("month", s.Month)
	w.Append("income", s.Income)
	w.Append("spending", s.Spending)
	w.Append("savings", s.Savings)
	w.Append("netWorth", s.NetWorth)
	return w.MarshalJSON()
}
