package deck

func traitsSlides() []Slide {
	return []Slide{
		{
			ID:         "intro",
			Title:      "Interstitial Lung Disease and Treatable Traits",
			Subtitle:   "An approach to comprehensive precision medicine",
			Background: BackgroundSky,
			Decoration: DecorationLung,
			Backdrop:   BackdropParticles,
			Lead:       "Key points for this talk:",
			Points: []string{
				"The limits of today's diagnosis and treatment",
				"What are Treatable Traits?",
				"The four key domains",
			},
		},
		{
			ID:         "problem",
			Title:      "Challenges in Current ILD Management",
			Background: BackgroundWhite,
			Decoration: DecorationAlert,
			Cards: []Card{
				{
					Title:      "Hard to diagnose",
					Text:       "ILD classification is complex, and many cases are difficult or even unclassifiable.",
					Decoration: DecorationSearch,
				},
				{
					Title:      "Limits of drug therapy",
					Text:       "Antifibrotics slow progression but often do little for cough, breathlessness or quality of life.",
					Decoration: DecorationPill,
				},
				{
					Title:      "Fragmented care",
					Text:       "Attention goes to the lungs while comorbidities, mental health and lifestyle are left behind.",
					Decoration: DecorationStethoscope,
				},
			},
			Note: "One-size-fits-all treatment by diagnosis alone cannot support the whole patient.",
		},
		{
			ID:         "solution",
			Title:      "The Answer: a Treatable Traits Approach",
			Background: BackgroundMint,
			Decoration: DecorationCheck,
			Lead: "Personalised medicine already used in asthma and COPD. Rather than leaning on the diagnostic label, " +
				"list each patient's treatable traits and address every one of them.",
			Sections: []Section{
				{
					Title: "Three criteria for a trait",
					Items: []string{
						"Clinically important: it affects prognosis or quality of life",
						"Identifiable and measurable, for example by a biomarker",
						"Treatable: an intervention exists",
					},
					Open: true,
				},
			},
		},
		{
			ID:         "domains",
			Title:      "Four Treatable Trait Domains",
			Subtitle:   "Open a domain to see example traits",
			Background: BackgroundMist,
			Decoration: DecorationActivity,
			Sections: []Section{
				{
					Title: "Aetiological",
					Items: []string{"Immune dysregulation and inflammation", "Progressive pulmonary fibrosis", "Autoantibodies", "Smoking", "Environmental antigen exposure", "Drug-induced disease"},
				},
				{
					Title: "Pulmonary",
					Items: []string{"Lung infection", "Emphysema (CPFE)", "Pulmonary hypertension", "Lung cancer", "Hypoxaemia", "Chronic cough", "Breathlessness"},
				},
				{
					Title: "Extra-pulmonary",
					Items: []string{"Obstructive sleep apnoea", "Gastro-oesophageal reflux", "Weight loss or obesity", "Anxiety and depression", "Ischaemic heart disease", "Physical deconditioning"},
				},
				{
					Title: "Behavioural",
					Items: []string{"Poor treatment adherence", "Physical inactivity", "Social isolation", "Polypharmacy", "Lack of family and social support"},
				},
			},
		},
		{
			ID:         "conclusion",
			Title:      "Looking Ahead",
			Background: BackgroundDawn,
			Decoration: DecorationUsers,
			Steps: []Step{
				{Label: "Stage 1", Title: "Identify traits", Text: "Establish clinical importance and how to measure them"},
				{Label: "Stage 2", Title: "Understand mechanisms", Text: "Develop biomarkers and interventions"},
				{Label: "Stage 3", Title: "Clinical trials", Text: "Bring them into practice and test the effect"},
			},
			Lead: "Treatable Traits is a framework for seeing the whole person, not just the ILD diagnosis. " +
				"Comprehensive multidisciplinary care improves both prognosis and quality of life.",
		},
	}
}
