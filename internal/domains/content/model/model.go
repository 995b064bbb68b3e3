package model

// Static marketing content served to the storefront. The copy lives here
// rather than in the database because it changes with the brand, not with
// the inventory.

type HomeContent struct {
	Headline      string         `json:"headline"`
	Tagline       string         `json:"tagline"`
	HeroImage     string         `json:"hero_image"`
	Logo          string         `json:"logo"`
	CallsToAction []CallToAction `json:"calls_to_action"`
}

type CallToAction struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type AboutContent struct {
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle"`
	Story      []string    `json:"story"`
	Owner      string      `json:"owner"`
	WhyUs      []string    `json:"why_us"`
	Commitment string      `json:"commitment"`
	Milestones []Milestone `json:"milestones"`
}

type Milestone struct {
	Figure string `json:"figure"`
	Label  string `json:"label"`
}

type ServicesContent struct {
	Title          string          `json:"title"`
	Subtitle       string          `json:"subtitle"`
	Services       []Service       `json:"services"`
	PaymentOptions []PaymentOption `json:"payment_options"`
	Warranty       []WarrantyItem  `json:"warranty"`
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PaymentOption struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WarrantyItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactContent struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Phone    string   `json:"phone"`
	WhatsApp string   `json:"whatsapp"`
	Email    string   `json:"email"`
	Address  string   `json:"address"`
	Hours    []string `json:"hours"`
}
