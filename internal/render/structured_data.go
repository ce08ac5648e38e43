package render

import (
	"encoding/json"
	"fmt"

	"licportal/internal/dto"
)

// Static business facts published in the JSON-LD block. These never change
// per request, so they live here rather than in config.
const (
	businessName  = "LIC Neemuch - Jitendra Rathore"
	businessPhone = "+91-9425975401"
	businessURL   = "https://www.licneemuch.space"
	streetAddress = "Vikas Nagar, Scheme No. 14-3"
	localityName  = "Neemuch"
	regionName    = "Madhya Pradesh"
	postalCode    = "458441"
	countryCode   = "IN"
	geoLatitude   = 24.4716
	geoLongitude  = 74.8742
)

type postalAddress struct {
	Type     string `json:"@type"`
	Street   string `json:"streetAddress"`
	Locality string `json:"addressLocality"`
	Region   string `json:"addressRegion"`
	Postal   string `json:"postalCode"`
	Country  string `json:"addressCountry"`
}

type geoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type aggregateRatingLD struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	ReviewCount int    `json:"reviewCount"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
}

type personLD struct {
	Type string `json:"@type"`
	Name HTML   `json:"name"`
}

type reviewLD struct {
	Type          string   `json:"@type"`
	Author        personLD `json:"author"`
	DatePublished string   `json:"datePublished"`
	ReviewBody    HTML     `json:"reviewBody"`
}

type businessLD struct {
	Context         string             `json:"@context"`
	Type            string             `json:"@type"`
	Name            string             `json:"name"`
	URL             string             `json:"url"`
	Telephone       string             `json:"telephone"`
	Address         postalAddress      `json:"address"`
	Geo             geoCoordinates     `json:"geo"`
	AggregateRating *aggregateRatingLD `json:"aggregateRating,omitempty"`
	Review          []reviewLD         `json:"review"`
}

// structuredData builds the JSON-LD payload for search engines. The
// aggregateRating block is omitted entirely when nothing has been rated.
func structuredData(snap dto.AggregateSnapshot) (string, error) {
	ld := businessLD{
		Context:   "https://schema.org",
		Type:      "InsuranceAgency",
		Name:      businessName,
		URL:       businessURL,
		Telephone: businessPhone,
		Address: postalAddress{
			Type:     "PostalAddress",
			Street:   streetAddress,
			Locality: localityName,
			Region:   regionName,
			Postal:   postalCode,
			Country:  countryCode,
		},
		Geo: geoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  geoLatitude,
			Longitude: geoLongitude,
		},
		Review: make([]reviewLD, 0, len(snap.Reviews)),
	}

	if snap.RatingCount > 0 {
		ld.AggregateRating = &aggregateRatingLD{
			Type:        "AggregateRating",
			RatingValue: snap.DisplayRating(),
			ReviewCount: snap.RatingCount,
			BestRating:  "5",
			WorstRating: "1",
		}
	}

	for _, review := range snap.Reviews {
		ld.Review = append(ld.Review, reviewLD{
			Type: "Review",
			Author: personLD{
				Type: "Person",
				Name: EscapeText(review.Username),
			},
			DatePublished: review.CreatedAt.UTC().Format("2006-01-02"),
			ReviewBody:    EscapeText(review.Comment),
		})
	}

	out, err := json.Marshal(ld)
	if err != nil {
		return "", fmt.Errorf("failed to marshal structured data: %w", err)
	}
	return string(out), nil
}
