package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/models"
)

//go:embed content.yaml
var defaultContent []byte

// Catalog is the read-only marketing content served alongside the inquiry API.
type Catalog struct {
	services     []models.Service
	projects     []models.Project
	testimonials []models.Testimonial
	benefits     []models.Benefit
	contact      models.ContactInfo
}

type document struct {
	Services     []models.Service     `yaml:"services"`
	Projects     []models.Project     `yaml:"projects"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
	Benefits     []models.Benefit     `yaml:"benefits"`
	Contact      models.ContactInfo   `yaml:"contact"`
}

// Load parses the embedded content.
func Load() (*Catalog, error) {
	return Parse(defaultContent)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if len(doc.Services) == 0 {
		return nil, fmt.Errorf("content has no services")
	}

	return &Catalog{
		services:     doc.Services,
		projects:     doc.Projects,
		testimonials: doc.Testimonials,
		benefits:     doc.Benefits,
		contact:      doc.Contact,
	}, nil
}

func (c *Catalog) Services() []models.Service {
	return append([]models.Service(nil), c.services...)
}

// Projects returns the portfolio, optionally filtered by category
// (case-insensitive). An empty category returns everything.
func (c *Catalog) Projects(category string) []models.Project {
	category = strings.TrimSpace(category)

	projects := make([]models.Project, 0, len(c.projects))
	for _, p := range c.projects {
		if category == "" || strings.EqualFold(p.Category, category) {
			projects = append(projects, p)
		}
	}
	return projects
}

func (c *Catalog) Testimonials() []models.Testimonial {
	return append([]models.Testimonial(nil), c.testimonials...)
}

func (c *Catalog) Benefits() []models.Benefit {
	return append([]models.Benefit(nil), c.benefits...)
}

func (c *Catalog) Contact() models.ContactInfo {
	contact := c.contact
	contact.Headquarters = append([]string(nil), c.contact.Headquarters...)
	contact.Emails = append([]string(nil), c.contact.Emails...)
	return contact
}
