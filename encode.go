package household

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a snapshot as JSONL: one record per line, each
// carrying a "record" discriminator. The format is human-readable and
// git-friendly, so a household file can live in a private repo.

// DecodeSnapshot decodes records from a stream of JSONL data, dated on.
// A zero date means today. Structurally invalid lines fail decoding:
// malformed input is rejected at this boundary, never deep inside a
// calculation.
func DecodeSnapshot(r io.Reader, on Date) (*Snapshot, error) {
	s := NewSnapshot(on)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record on line %d %q: %w", line, string(lineBytes), err)
		}

		var rec Record
		var err error
		switch identifier.Record {
		case RecMember:
			var v HouseholdMember
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		case RecAccount:
			var v Account
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		case RecTx:
			var v Transaction
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		case RecAsset:
			var v Asset
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		case RecGoal:
			var v Goal
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		case RecVesting:
			var v VestingSchedule
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		case RecBudget:
			var v Budget
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		case RecSummary:
			var v MonthlySummary
			err = json.Unmarshal(lineBytes, &v)
			rec = v
		default:
			return nil, fmt.Errorf("unknown record type %q on line %d", identifier.Record, line)
		}
		if err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(lineBytes), err)
		}
		if err := s.Append(rec); err != nil {
			return nil, fmt.Errorf("invalid record on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}
	return s, nil
}

// EncodeSnapshot writes all snapshot records as JSONL in a stable
// order: members, accounts, transactions, assets, goals, vesting
// schedules, budgets, then monthly summaries.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	var records []Record
	for _, v := range s.members {
		records = append(records, v)
	}
	for _, v := range s.accounts {
		records = append(records, v)
	}
	for _, v := range s.transactions {
		records = append(records, v)
	}
	for _, v := range s.assets {
		records = append(records, v)
	}
	for _, v := range s.goals {
		records = append(records, v)
	}
	for _, v := range s.schedules {
		records = append(records, v)
	}
	for _, v := range s.budgets {
		records = append(records, v)
	}
	for _, v := range s.history {
		records = append(records, v)
	}
	return EncodeRecords(w, records...)
}

// EncodeRecords writes records as JSONL, one record per line.
func EncodeRecords(w io.Writer, records ...Record) error {
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("could not encode %s record: %w", r.What(), err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}
