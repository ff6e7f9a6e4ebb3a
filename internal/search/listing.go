package search

// JobListing is one posting as owned by the external index. The service
// only reads and forwards it.
type JobListing struct {
	ID                 string             `json:"id"`
	Headline           string             `json:"headline"`
	Employer           Employer           `json:"employer"`
	Description        Description        `json:"description"`
	WorkplaceAddress   WorkplaceAddress   `json:"workplace_address"`
	ApplicationDetails ApplicationDetails `json:"application_details"`
}

// Employer identifies the posting employer.
type Employer struct {
	Name string `json:"name"`
}

// Description carries the posting's full text.
type Description struct {
	Text string `json:"text"`
}

// WorkplaceAddress locates the workplace; City may be empty.
type WorkplaceAddress struct {
	Municipality string `json:"municipality"`
	City         string `json:"city,omitempty"`
}

// ApplicationDetails explains how to apply.
type ApplicationDetails struct {
	URL         string `json:"url,omitempty"`
	Email       string `json:"email,omitempty"`
	Information string `json:"information,omitempty"`
	Reference   string `json:"reference,omitempty"`
}
