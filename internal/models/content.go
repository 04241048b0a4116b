package models

type Service struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

type Project struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	ImageURL string `json:"imageUrl" yaml:"image_url"`
	Location string `json:"location" yaml:"location"`
}

type Testimonial struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Quote   string `json:"quote" yaml:"quote"`
	Company string `json:"company" yaml:"company"`
}

type Benefit struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

type ContactInfo struct {
	Headquarters []string `json:"headquarters" yaml:"headquarters"`
	Phone        string   `json:"phone" yaml:"phone"`
	Hours        string   `json:"hours" yaml:"hours"`
	Emails       []string `json:"emails" yaml:"emails"`
}
