package household

// VestingStatus is the vested/unvested split of one schedule at a point
// in time.
type VestingStatus struct {
	On            Date
	Vested        Money
	Unvested      Money
	CliffReleased bool
	Progress      Percent
}

// TotalMonths returns the number of vesting months between start and
// end, never negative.
func (v VestingSchedule) TotalMonths() int {
	months := v.End.MonthsSince(v.Start)
	if months < 0 {
		return 0
	}
	return months
}

// cliffPeriod returns the cliff period clamped into the schedule: a
// cliff longer than the schedule releases with the final month instead
// of never.
func (v VestingSchedule) cliffPeriod() int {
	if total := v.TotalMonths(); v.CliffMonths > total {
		return total
	}
	return v.CliffMonths
}

// TotalValue returns the full value of the schedule: every monthly
// tranche plus the cliff.
func (v VestingSchedule) TotalValue() Money {
	return v.Monthly.Mul(Q(v.TotalMonths())).Add(v.Cliff)
}

// StatusOn computes the vested and unvested amounts as of a date.
// For a fixed schedule, the vested amount is non-decreasing in time.
func (v VestingSchedule) StatusOn(on Date) VestingStatus {
	st := VestingStatus{On: on}
	total := v.TotalMonths()

	elapsed := on.MonthsSince(v.Start)
	if elapsed < 0 {
		// Before the schedule starts nothing has vested.
		st.Vested = M(0, v.Monthly.Currency())
		st.Unvested = v.TotalValue()
		return st
	}

	vestedMonths := elapsed
	if vestedMonths > total {
		vestedMonths = total
	}
	st.Vested = v.Monthly.Mul(Q(vestedMonths))
	st.Unvested = v.Monthly.Mul(Q(total - vestedMonths))

	st.CliffReleased = elapsed >= v.cliffPeriod()
	if st.CliffReleased {
		st.Vested = st.Vested.Add(v.Cliff)
	} else {
		st.Unvested = st.Unvested.Add(v.Cliff)
	}

	if totalValue := v.TotalValue(); totalValue.IsPositive() {
		st.Progress = Percent(100 * st.Vested.AsFloat() / totalValue.AsFloat())
	}
	return st
}

// cliffMonth returns the calendar month in which the cliff releases.
func (v VestingSchedule) cliffMonth() Month {
	return MonthOf(v.Start.AddMonth(v.cliffPeriod()))
}

// InflowForMonth returns the schedule's cash inflow for one projected
// month: the monthly amount while [start,end] covers the month, plus
// the cliff when it lands in that exact month.
func (v VestingSchedule) InflowForMonth(m Month) Money {
	inflow := M(0, v.Monthly.Currency())
	if !m.Before(MonthOf(v.Start)) && !m.After(MonthOf(v.End)) {
		inflow = inflow.Add(v.Monthly)
	}
	if !v.Cliff.IsZero() && m == v.cliffMonth() {
		inflow = inflow.Add(v.Cliff)
	}
	return inflow
}
