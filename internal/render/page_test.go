package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licportal/internal/dto"
)

func sampleSnapshot() dto.AggregateSnapshot {
	return dto.AggregateSnapshot{
		AverageRating: 4.7,
		RatingCount:   3,
		Reviews: []dto.ReviewItem{
			{
				Username:  "Ramesh",
				Comment:   "Very helpful with my Jeevan Anand policy.",
				CreatedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
			},
			{
				Username:  "Sunita",
				Comment:   "Quick claim settlement.",
				CreatedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestLanding_Deterministic(t *testing.T) {
	snap := sampleSnapshot()

	first, err := Landing(snap)
	require.NoError(t, err)
	second, err := Landing(snap)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical snapshots must render identical bytes")
}

func TestLanding_ContainsRatingBlock(t *testing.T) {
	html, err := Landing(sampleSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, "★★★★★")
	assert.Contains(t, html, "4.7 out of 5 (3 ratings)")
}

func TestLanding_OmitsRatingBlockWhenUnrated(t *testing.T) {
	html, err := Landing(dto.AggregateSnapshot{Reviews: []dto.ReviewItem{}})
	require.NoError(t, err)

	assert.NotContains(t, html, `class="rating"`)
	assert.NotContains(t, html, "out of 5")
	assert.NotContains(t, html, "aggregateRating")
}

func TestLanding_NoReviewsMessage(t *testing.T) {
	html, err := Landing(dto.AggregateSnapshot{Reviews: []dto.ReviewItem{}})
	require.NoError(t, err)

	assert.Contains(t, html, "No reviews yet")
}

func TestLanding_EscapesUserContent(t *testing.T) {
	snap := dto.AggregateSnapshot{
		AverageRating: 5,
		RatingCount:   1,
		Reviews: []dto.ReviewItem{
			{
				Username:  `<b>Evil & "Mean"</b>`,
				Comment:   "<script>alert('xss')</script>",
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	html, err := Landing(snap)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&lt;b&gt;Evil &amp;")
}

func TestLanding_HydrationPayload(t *testing.T) {
	html, err := Landing(sampleSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, "window.__INITIAL_DATA__ = ")
	assert.Contains(t, html, `"averageRating":4.7`)
	assert.Contains(t, html, `"ratingCount":3`)
}

func TestLanding_StructuredData(t *testing.T) {
	html, err := Landing(sampleSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, `<script type="application/ld+json">`)
	assert.Contains(t, html, `"@type":"InsuranceAgency"`)
	assert.Contains(t, html, `"ratingValue":"4.7"`)
	assert.Contains(t, html, `"reviewCount":3`)
	assert.Contains(t, html, `"datePublished":"2024-03-15"`)
}

func TestLanding_DataHTMLMirror(t *testing.T) {
	html, err := Landing(sampleSnapshot())
	require.NoError(t, err)

	idx := strings.Index(html, `data-html="`)
	require.Positive(t, idx, "root element should carry the escaped fragment")

	// The attribute value is the escaped fragment, so the raw nav markup
	// must appear both escaped (attribute) and unescaped (body).
	assert.Contains(t, html, "&lt;nav&gt;")
	assert.Contains(t, html, "<nav>")
}
