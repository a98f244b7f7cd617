package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// VestingMarkdown renders the status of all vesting schedules on a date.
func VestingMarkdown(on household.Date, schedules []household.VestingSchedule) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Vesting on %s", on))
	if len(schedules) == 0 {
		doc.PlainText("No vesting schedules recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(schedules))
	for _, v := range schedules {
		st := v.StatusOn(on)
		name := v.Name
		if name == "" {
			name = v.ID
		}
		cliff := "locked"
		if v.Cliff.IsZero() {
			cliff = "-"
		} else if st.CliffReleased {
			cliff = "released"
		}
		rows = append(rows, []string{
			name,
			st.Vested.String(),
			st.Unvested.String(),
			cliff,
			st.Progress.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Schedule", "Vested", "Unvested", "Cliff", "Progress"},
		Rows:   rows,
	})

	return doc.String()
}
