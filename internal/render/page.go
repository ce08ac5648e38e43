package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"licportal/internal/dto"
)

// ErrorPage is the static document served whenever a render fails. It
// carries no request data, so nothing can leak through it.
const ErrorPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>LIC Neemuch</title></head>
<body><h1>Something went wrong</h1><p>Please try again in a moment.</p></body>
</html>
`

const stylesheet = `body{margin:0;font-family:Georgia,serif;color:#1c2833;background:#fdfefe}` +
	`nav{background:#1a5276;padding:12px 24px}nav a{color:#fdfefe;margin-right:16px;text-decoration:none}` +
	`.hero{padding:48px 24px;text-align:center;background:#eaf2f8}` +
	`.rating{margin-top:12px;font-size:18px}.stars{color:#d4ac0d;margin-right:8px}` +
	`section{padding:32px 24px;max-width:860px;margin:0 auto}` +
	`.review{border-left:3px solid #1a5276;padding:8px 16px;margin:12px 0;background:#f4f6f7}` +
	`.review time{color:#707b7c;font-size:13px}` +
	`footer{background:#1a5276;color:#fdfefe;text-align:center;padding:16px}`

// Landing assembles the complete landing-page document for one snapshot.
// Output is deterministic for identical input; both the response cache and
// the ETag depend on that.
func Landing(snap dto.AggregateSnapshot) (string, error) {
	content := contentFragment(snap)

	ld, err := structuredData(snap)
	if err != nil {
		return "", err
	}

	// json.Marshal HTML-escapes < > &, so neither payload can close the
	// script tag it is embedded in.
	initial, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal initial data: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<meta name=\"description\" content=\"LIC insurance plans, policy guidance and claim support in Neemuch. Talk to a trusted LIC advisor today.\">\n")
	b.WriteString("<title>" + businessName + "</title>\n")
	b.WriteString("<script type=\"application/ld+json\">" + ld + "</script>\n")
	b.WriteString("<style>" + stylesheet + "</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(`<div id="root" data-html="` + string(EscapeText(string(content))) + `">`)
	b.WriteString(string(content))
	b.WriteString("</div>\n")
	b.WriteString("<script>window.__INITIAL_DATA__ = " + string(initial) + ";</script>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// contentFragment builds the server-rendered body: nav, hero, contact,
// reviews and footer. The client app replaces it after hydration.
func contentFragment(snap dto.AggregateSnapshot) HTML {
	var b strings.Builder

	b.WriteString(string(Trusted(`<nav><a href="/">Home</a><a href="/#plans">Plans</a><a href="/#reviews">Reviews</a><a href="/#contact">Contact</a></nav>`)))

	b.WriteString(`<div class="hero"><h1>` + businessName + `</h1>`)
	b.WriteString(`<p>Secure your family&#39;s future with trusted LIC policies. Personal guidance from proposal to claim.</p>`)
	if snap.RatingCount > 0 {
		b.WriteString(`<div class="rating"><span class="stars">` + Stars(snap.AverageRating) + `</span>`)
		fmt.Fprintf(&b, `<span>%s out of 5 (%d ratings)</span></div>`, snap.DisplayRating(), snap.RatingCount)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<section id="contact"><h2>Get in touch</h2>`)
	b.WriteString(`<p>Call <a href="tel:` + businessPhone + `">` + businessPhone + `</a> or visit us at ` +
		streetAddress + `, ` + localityName + `, ` + regionName + ` ` + postalCode + `.</p></section>`)

	b.WriteString(`<section id="reviews"><h2>What policyholders say</h2>`)
	if len(snap.Reviews) == 0 {
		b.WriteString(`<p>No reviews yet. Be the first to share your experience.</p>`)
	} else {
		for _, review := range snap.Reviews {
			b.WriteString(`<div class="review"><strong>` + string(EscapeText(review.Username)) + `</strong>`)
			b.WriteString(`<time datetime="` + review.CreatedAt.UTC().Format("2006-01-02") + `">` +
				review.CreatedAt.UTC().Format("2 January 2006") + `</time>`)
			b.WriteString(`<p>` + string(EscapeText(review.Comment)) + `</p></div>`)
		}
	}
	b.WriteString(`</section>`)

	b.WriteString(`<footer><p>&copy; ` + businessName + `. All rights reserved.</p></footer>`)

	return HTML(b.String())
}
