package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/household"
	md "github.com/nao1215/markdown"
)

// AdviceMarkdown renders alerts and recommendations as markdown.
func AdviceMarkdown(a *household.Advice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Alerts & Recommendations on %s", a.On))
	if !a.HasData {
		doc.PlainText("No records yet, nothing to advise on.")
		return doc.String()
	}

	doc.H2("Alerts")
	if len(a.Alerts) == 0 {
		doc.PlainText("All clear.")
	} else {
		items := make([]string, 0, len(a.Alerts))
		for _, al := range a.Alerts {
			items = append(items, fmt.Sprintf("[%s] %s", al.Severity, al.Message))
		}
		doc.BulletList(items...)
	}

	doc.H2("Recommendations")
	if len(a.Recommendations) == 0 {
		doc.PlainText("Nothing to suggest right now.")
	} else {
		for _, r := range a.Recommendations {
			doc.H3(r.Title)
			doc.PlainText(r.Detail)
		}
	}

	return doc.String()
}
