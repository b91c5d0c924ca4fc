// Package capability serves the company's manufacturing capabilities.
package capability

import "errors"

var ErrNotFound = errors.New("capability not found")

type Capability struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
}

func Seed() []Capability {
	return []Capability{
		{ID: 1, Title: "Precision Manufacturing", Description: "State-of-the-art equipment for high-precision manufacturing solutions", Icon: "Target", Category: "Manufacturing", Featured: true},
		{ID: 2, Title: "Quality Assurance", Description: "ISO 9001:2015 certified quality management systems", Icon: "Shield", Category: "Quality", Featured: true},
		{ID: 3, Title: "Fast Turnaround", Description: "Rapid prototyping and quick delivery for urgent projects", Icon: "Clock", Category: "Service", Featured: true},
		{ID: 4, Title: "Custom Solutions", Description: "Tailored manufacturing solutions for unique requirements", Icon: "Wrench", Category: "Custom", Featured: false},
		{ID: 5, Title: "Material Expertise", Description: "Wide range of materials and finishing options available", Icon: "Package", Category: "Materials", Featured: true},
		{ID: 6, Title: "Technical Support", Description: "Expert technical support throughout the project lifecycle", Icon: "HeadPhones", Category: "Support", Featured: true},
		{ID: 7, Title: "Cost Optimization", Description: "Value engineering to optimize costs without compromising quality", Icon: "DollarSign", Category: "Optimization", Featured: false},
		{ID: 8, Title: "Global Delivery", Description: "Worldwide shipping and logistics support", Icon: "Globe", Category: "Logistics", Featured: false},
	}
}
