package digest

import (
	"fmt"
	"net/url"
	"strings"
)

// Render produces the deterministic plain-text form of a digest: an
// ordered list with rank, title, company, location, experience, score
// and apply link. The same Data always renders to the same string.
func Render(data Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Daily Job Digest - %s\n", data.Date)
	fmt.Fprintf(&b, "Top %d matches for your preferences:\n\n", len(data.Jobs))

	for i, job := range data.Jobs {
		score := "n/a"
		if job.HasScore {
			score = fmt.Sprintf("%d", job.Score)
		}
		fmt.Fprintf(&b, "%d. %s at %s\n", i+1, job.Title, job.Company)
		fmt.Fprintf(&b, "   Location: %s | Experience: %d yrs | Match: %s\n", job.Location, job.Experience, score)
		fmt.Fprintf(&b, "   Apply: %s\n", job.ApplyURL)
		if i < len(data.Jobs)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// MailtoURL builds a prefilled email compose link carrying the rendered
// digest as the body.
func MailtoURL(data Data) string {
	subject := fmt.Sprintf("Your Daily Job Digest - %s", data.Date)
	body := Render(data)

	// mailto expects percent-encoding with %20 for spaces, not '+'.
	escape := func(s string) string {
		return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}

	return "mailto:?subject=" + escape(subject) + "&body=" + escape(body)
}
