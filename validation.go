package household

import (
	"errors"
	"fmt"
)

// ValidateRecords checks a batch of records for structural correctness
// and cross-references: transactions must reference a known account
// and member ids must exist when referenced. It is the fail-fast
// boundary check run before records enter the engine.
func ValidateRecords(records ...Record) error {
	accounts := make(map[string]bool)
	members := make(map[string]bool)
	for _, r := range records {
		switch v := r.(type) {
		case Account:
			accounts[v.ID] = true
		case HouseholdMember:
			members[v.ID] = true
		}
	}

	var errs []error
	for _, r := range records {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		switch v := r.(type) {
		case Transaction:
			if len(accounts) > 0 && !accounts[v.AccountID] {
				errs = append(errs, fmt.Errorf("transaction %q references unknown account %q", v.ID, v.AccountID))
			}
			if v.MemberID != "" && len(members) > 0 && !members[v.MemberID] {
				errs = append(errs, fmt.Errorf("transaction %q references unknown member %q", v.ID, v.MemberID))
			}
		case Account:
			if v.MemberID != "" && len(members) > 0 && !members[v.MemberID] {
				errs = append(errs, fmt.Errorf("account %q references unknown member %q", v.ID, v.MemberID))
			}
		}
	}
	return errors.Join(errs...)
}
