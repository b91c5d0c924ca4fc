package catalog

// SeedProducts returns the built-in sample catalog. Every call returns fresh slices.
func SeedProducts() []Product {
	return []Product{
		{
			ID:           "1",
			Name:         "Precision CNC Machined Parts",
			Description:  "High-precision CNC machined components for aerospace and automotive applications. Manufactured to exact specifications with tight tolerances.",
			Category:     CategoryPrecision,
			Materials:    []string{"Aluminum", "Steel", "Titanium"},
			Applications: []string{"Aerospace", "Automotive", "Medical Devices"},
			Image:        "/images/products/cnc-parts.jpg",
			Specifications: map[string]string{
				"tolerance":     `±0.001"`,
				"surfaceFinish": "32 Ra",
				"materials":     "6061-T6 Aluminum, 4140 Steel, Ti-6Al-4V Titanium",
			},
			Features: []string{"High precision machining", "Tight tolerances", "Multiple material options", "Custom specifications"},
		},
		{
			ID:           "2",
			Name:         "Metal Fabrication Assemblies",
			Description:  "Custom metal fabrication assemblies including welding, forming, and finishing services for industrial applications.",
			Category:     CategoryMetal,
			Materials:    []string{"Steel", "Stainless Steel", "Aluminum"},
			Applications: []string{"Industrial Equipment", "Construction", "Marine"},
			Image:        "/images/products/metal-fab.jpg",
			Specifications: map[string]string{
				"processes": "TIG Welding, MIG Welding, Plasma Cutting",
				"materials": "Mild Steel, 316 Stainless Steel, 5052 Aluminum",
				"finishes":  "Powder Coating, Anodizing, Galvanizing",
			},
			Features: []string{"Custom fabrication", "Multiple welding processes", "Various finishing options", "Industrial grade quality"},
		},
		{
			ID:           "3",
			Name:         "Custom Manufacturing Solutions",
			Description:  "Tailored manufacturing solutions for unique requirements including prototyping, small batch production, and specialized components.",
			Category:     CategoryCustom,
			Materials:    []string{"Various", "Plastics", "Composites", "Metals"},
			Applications: []string{"Prototyping", "Research & Development", "Specialized Equipment"},
			Image:        "/images/products/custom-parts.jpg",
			Specifications: map[string]string{
				"services":     "Design Consultation, Prototyping, Production",
				"capabilities": "3D Printing, CNC Machining, Injection Molding",
				"materials":    "Engineering Plastics, Carbon Fiber, Exotic Alloys",
			},
			Features: []string{"Design to production", "Rapid prototyping", "Low to high volume", "Material expertise"},
		},
		{
			ID:           "4",
			Name:         "Automotive Components",
			Description:  "Precision automotive components including engine parts, transmission components, and suspension elements manufactured to OEM standards.",
			Category:     CategoryAutomotive,
			Materials:    []string{"Steel", "Aluminum", "Cast Iron"},
			Applications: []string{"Engine Components", "Transmission Parts", "Suspension Systems"},
			Image:        "/images/products/automotive.jpg",
			Specifications: map[string]string{
				"standards": "ISO/TS 16949, PPAP, SPC",
				"processes": "Forging, Machining, Heat Treatment",
				"testing":   "CMM Inspection, Material Testing, Functional Testing",
			},
			Features: []string{"OEM quality standards", "Automotive certifications", "High volume production", "Quality assurance"},
		},
		{
			ID:           "5",
			Name:         "Aerospace Grade Parts",
			Description:  "Mission-critical aerospace components manufactured to AS9100 standards with full traceability and certification.",
			Category:     CategoryAerospace,
			Materials:    []string{"Titanium", "Inconel", "Aluminum", "Steel"},
			Applications: []string{"Aircraft Engines", "Landing Gear", "Structural Components"},
			Image:        "/images/products/aerospace.jpg",
			Specifications: map[string]string{
				"standards": "AS9100, NADCAP, FAA Approved",
				"materials": "Ti-6Al-4V, Inconel 718, 7075-T6 Aluminum",
				"processes": "5-Axis Machining, EDM, Heat Treatment",
			},
			Features: []string{"AS9100 certified", "Full traceability", "Critical applications", "Aerospace materials"},
		},
		{
			ID:           "6",
			Name:         "Precision Tooling",
			Description:  "High-precision tooling and fixtures for manufacturing applications including jigs, fixtures, and specialized tooling.",
			Category:     CategoryPrecision,
			Materials:    []string{"Tool Steel", "Hardened Steel", "Carbide"},
			Applications: []string{"Manufacturing Tools", "Assembly Fixtures", "Quality Control"},
			Image:        "/images/products/tooling.jpg",
			Specifications: map[string]string{
				"hardness":  "HRC 58-62",
				"precision": `±0.0005"`,
				"materials": "A2 Tool Steel, D2 Tool Steel, Tungsten Carbide",
			},
			Features: []string{"High precision", "Hardened surfaces", "Long tool life", "Custom designs"},
		},
	}
}
