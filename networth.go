package household

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Scenario names a set of annual growth-rate assumptions applied per
// category during projection.
type Scenario int

const (
	Conservative Scenario = iota
	Moderate
	Aggressive
)

func (s Scenario) String() string {
	switch s {
	case Conservative:
		return "conservative"
	case Moderate:
		return "moderate"
	case Aggressive:
		return "aggressive"
	default:
		panic(fmt.Sprintf("unknown scenario %d", int(s)))
	}
}

// ParseScenario parses a scenario name.
func ParseScenario(s string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conservative":
		return Conservative, nil
	case "moderate":
		return Moderate, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return Moderate, fmt.Errorf("unknown scenario %q", s)
	}
}

// AccountCategory partitions accounts and assets for projection. It is
// a closed enumeration: adding a category is a compile-time change to
// the mapping tables below, not a silent fallback.
type AccountCategory int

const (
	CatChecking AccountCategory = iota
	CatSavings
	CatInvestment
	CatRetirement
	CatRealEstate
	CatOther

	numCategories
)

func (c AccountCategory) String() string {
	switch c {
	case CatChecking:
		return "checking"
	case CatSavings:
		return "savings"
	case CatInvestment:
		return "investment"
	case CatRetirement:
		return "retirement"
	case CatRealEstate:
		return "real-estate"
	case CatOther:
		return "other"
	default:
		panic(fmt.Sprintf("unknown account category %d", int(c)))
	}
}

// categoryOfAccount maps every account type to its projection category.
// Vesting accounts project with retirement.
var categoryOfAccount = [...]AccountCategory{
	Checking:     CatChecking,
	Savings:      CatSavings,
	Investment:   CatInvestment,
	Retirement:   CatRetirement,
	Vesting:      CatRetirement,
	OtherAccount: CatOther,
}

// categoryOfAsset maps an asset's free-form category label to a
// projection category.
func categoryOfAsset(label string) AccountCategory {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "real-estate", "real estate", "realestate", "property", "house":
		return CatRealEstate
	case "investment", "stocks", "securities":
		return CatInvestment
	case "retirement", "pension":
		return CatRetirement
	case "savings":
		return CatSavings
	default:
		return CatOther
	}
}

// annualGrowth defines each scenario's annual growth rate per category.
// The tables are exhaustive over both enumerations.
var annualGrowth = [...][numCategories]float64{
	Conservative: {
		CatChecking:   0.000,
		CatSavings:    0.010,
		CatInvestment: 0.040,
		CatRetirement: 0.040,
		CatRealEstate: 0.020,
		CatOther:      0.010,
	},
	Moderate: {
		CatChecking:   0.000,
		CatSavings:    0.020,
		CatInvestment: 0.070,
		CatRetirement: 0.065,
		CatRealEstate: 0.035,
		CatOther:      0.020,
	},
	Aggressive: {
		CatChecking:   0.000,
		CatSavings:    0.025,
		CatInvestment: 0.100,
		CatRetirement: 0.090,
		CatRealEstate: 0.050,
		CatOther:      0.030,
	},
}

// contributionWeights apportions monthly savings across categories for
// projected contributions. A product rule, kept explicit.
var contributionWeights = [numCategories]float64{
	CatInvestment: 0.4,
	CatRetirement: 0.3,
	CatSavings:    0.2,
	CatOther:      0.1,
}

// millionaireMilestone is the net-worth threshold for the "millionaire
// year" milestone.
var millionaireMilestone = M(1_000_000, DefaultCurrency)

// CategoryValue is one category's projected value in a year.
type CategoryValue struct {
	Category AccountCategory
	Value    Money
}

// YearlyProjection is the projected net worth for one year, by category.
type YearlyProjection struct {
	Year   int // 0 = the current snapshot, exactly
	Values []CategoryValue
	Total  Money
}

// Value returns the projected value of a single category.
func (y YearlyProjection) Value(c AccountCategory) Money {
	return y.Values[c].Value
}

// CategoryShare is a category's share of the final projected net worth.
type CategoryShare struct {
	Category AccountCategory
	Value    Money
	Share    Percent
}

// GoalOutlook is a goal's achievability under the projection.
type GoalOutlook struct {
	Goal       string
	TargetYear int
	Projected  Money
	Achievable bool
}

// NetWorthProjection is the projector's output.
type NetWorthProjection struct {
	On       Date
	Scenario Scenario
	Horizon  int // years
	HasData  bool

	CurrentNetWorth Money
	Years           []YearlyProjection

	// AnnualizedGrowth is (final/current)^(1/years)-1, as a percentage.
	AnnualizedGrowth Percent
	// MillionaireYear is the first year the total reaches 1,000,000,
	// or -1 when the horizon never reaches it. DoublingYear likewise
	// for 2x the current net worth.
	MillionaireYear int
	DoublingYear    int

	// TopCategories are the up-to-three largest categories by final-year
	// share.
	TopCategories []CategoryShare

	Goals []GoalOutlook
}

// Project projects account and asset balances forward the given number
// of years under a scenario. Year 0 equals the current snapshot
// exactly: no growth and no contributions are applied to it.
func (s *Snapshot) Project(sc Scenario, years int) *NetWorthProjection {
	p := &NetWorthProjection{
		On:              s.on,
		Scenario:        sc,
		Horizon:         years,
		HasData:         s.HasData(),
		MillionaireYear: -1,
		DoublingYear:    -1,
	}

	totals := s.Totals()
	p.CurrentNetWorth = totals.NetWorth
	if years < 0 {
		years = 0
	}

	// Partition the current snapshot by category.
	var base [numCategories]Money
	for c := range base {
		base[c] = M(0, DefaultCurrency)
	}
	for _, a := range s.accounts {
		c := categoryOfAccount[a.Type]
		base[c] = base[c].Add(a.Balance)
	}
	for _, a := range s.assets {
		c := categoryOfAsset(a.Category)
		base[c] = base[c].Add(a.Value)
	}

	annualSavings := totals.MonthlySavings().Mul(Q(12))
	vestedByYear := s.cumulativeVesting(years)

	p.Years = make([]YearlyProjection, 0, years+1)
	for y := 0; y <= years; y++ {
		yp := YearlyProjection{Year: y, Total: M(0, DefaultCurrency)}
		yp.Values = make([]CategoryValue, numCategories)
		for c := AccountCategory(0); c < numCategories; c++ {
			value := base[c]
			if y > 0 {
				rate := annualGrowth[sc][c]
				grown := base[c].AsFloat() * math.Pow(1+rate, float64(y))
				contributed := annualSavings.AsFloat() * float64(y) * contributionWeights[c]
				value = M(grown+contributed, DefaultCurrency)
				if c == CatRetirement {
					value = value.Add(vestedByYear[y])
				}
			}
			yp.Values[c] = CategoryValue{Category: c, Value: value}
			yp.Total = yp.Total.Add(value)
		}
		p.Years = append(p.Years, yp)

		if p.MillionaireYear < 0 && yp.Total.GreaterThanOrEqual(millionaireMilestone) {
			p.MillionaireYear = y
		}
		doubled := p.CurrentNetWorth.Mul(Q(2))
		if p.DoublingYear < 0 && y > 0 && p.CurrentNetWorth.IsPositive() && yp.Total.GreaterThanOrEqual(doubled) {
			p.DoublingYear = y
		}
	}

	final := p.Years[len(p.Years)-1].Total
	if years > 0 && p.CurrentNetWorth.IsPositive() && final.IsPositive() {
		ratio := final.AsFloat() / p.CurrentNetWorth.AsFloat()
		p.AnnualizedGrowth = Percent(100 * (math.Pow(ratio, 1/float64(years)) - 1))
	}

	p.TopCategories = topCategories(p.Years[len(p.Years)-1], 3)
	p.Goals = s.goalOutlooks(p.Years)
	return p
}

// cumulativeVesting returns, per projected year, the cumulative vesting
// inflows from the snapshot month forward. Index 0 is zero.
func (s *Snapshot) cumulativeVesting(years int) []Money {
	byYear := make([]Money, years+1)
	byYear[0] = M(0, DefaultCurrency)
	current := s.CurrentMonth()
	running := M(0, DefaultCurrency)
	for y := 1; y <= years; y++ {
		for i := (y-1)*12 + 1; i <= y*12; i++ {
			month := current.Next(i)
			for _, v := range s.schedules {
				running = running.Add(v.InflowForMonth(month))
			}
		}
		byYear[y] = running
	}
	return byYear
}

// topCategories returns the n largest categories of a projected year by
// share of its total.
func topCategories(year YearlyProjection, n int) []CategoryShare {
	shares := make([]CategoryShare, 0, numCategories)
	for _, cv := range year.Values {
		if cv.Value.IsZero() {
			continue
		}
		share := Percent(0)
		if year.Total.IsPositive() {
			share = Percent(100 * cv.Value.AsFloat() / year.Total.AsFloat())
		}
		shares = append(shares, CategoryShare{Category: cv.Category, Value: cv.Value, Share: share})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Value.GreaterThan(shares[j].Value)
	})
	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// goalOutlooks evaluates each goal against the projected net worth at
// its target year. Targets beyond the horizon evaluate at the final
// projected year; past targets at year 0.
func (s *Snapshot) goalOutlooks(years []YearlyProjection) []GoalOutlook {
	horizon := len(years) - 1
	var outlooks []GoalOutlook
	for _, g := range s.goals {
		if g.TargetDate.IsZero() || !g.Target.IsPositive() {
			continue
		}
		months := g.TargetDate.MonthsSince(s.on)
		if months < 0 {
			months = 0
		}
		year := (months + 11) / 12
		if year > horizon {
			year = horizon
		}
		projected := years[year].Total
		outlooks = append(outlooks, GoalOutlook{
			Goal:       g.Name,
			TargetYear: year,
			Projected:  projected,
			Achievable: projected.GreaterThanOrEqual(g.Target),
		})
	}
	return outlooks
}
