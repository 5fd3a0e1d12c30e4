package models

// DefaultDocument returns a deep copy of the built-in starter deck. Callers
// always get independent instances, never shared references.
func DefaultDocument() *Document {
	return defaultDocument.Clone()
}

var defaultDocument = &Document{
	Camera: DefaultCameraConfig(),
	Sections: []*Section{
		{ID: "sec1", Title: "Introduction"},
		{ID: "sec2", Title: "Technology"},
		{ID: "sec3", Title: "Impact"},
	},
	Slides: []*Slide{
		{
			ID:        "s1",
			SectionID: "sec1",
			Type:      SlideHero,
			Title:     "Introduction",
			Content:   "Radikal Vision",
			Subtitle:  "Redefining presentations with the power of the **spatial web**.",
			Style: &SlideStyle{
				FontFamily:     FontSerif,
				BackgroundType: BackgroundGradient,
				GradientColors: []string{"#0f172a", "#312e81"},
				TextColor:      "#e0e7ff",
				AccentColor:    "#6366f1",
				Animation:      AnimFadeIn,
			},
		},
		{
			ID:          "s2",
			SectionID:   "sec1",
			Type:        SlideContentImage,
			Title:       "Immersive Experiences",
			Content:     "Web technologies now allow for **cinema-grade 3D experiences** directly in the browser, accessible on any device without downloads.\n\n- No installation\n- High performance\n- Instant sharing",
			ImageURL:    "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?q=80&w=2070&auto=format&fit=crop",
			EnableImage: true,
			Style: &SlideStyle{
				ImageFitMode: FitCover,
			},
		},
		{
			ID:        "s3",
			SectionID: "sec2",
			Type:      SlideList,
			Title:     "Why It Matters",
			Bullets: []string{
				"Engage audiences instantly",
				"Break free from static slides",
				"Data-driven 3D visualizations",
				"Works on all modern devices",
			},
			ImageURL:    "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=2000&auto=format&fit=crop",
			EnableImage: true,
		},
		{
			ID:        "s4",
			SectionID: "sec2",
			Type:      SlideTimeline,
			Title:     "Evolution",
			Subtitle:  "The journey of presentation tech",
			Bullets: []string{
				"1987: PowerPoint Launched",
				"2006: Google Slides",
				"2011: Prezi Zooming UI",
				"2024: Spatial Web 3D",
			},
			Style: &SlideStyle{
				AccentColor: "#8b5cf6",
			},
		},
	},
}
