package deck

func programSlides() []Slide {
	return []Slide{
		{
			ID:         "welcome",
			Title:      "ILD Clinical Program",
			Subtitle:   "Coordinated care for interstitial lung disease",
			Background: BackgroundNight,
			Decoration: DecorationLung,
			Backdrop:   BackdropParticles,
			Lead:       "A walk through how patients are referred, assessed, treated and followed up.",
		},
		{
			ID:         "about",
			Title:      "What Is ILD?",
			Background: BackgroundWhite,
			Decoration: DecorationSearch,
			Lead: "A group of more than two hundred disorders that inflame or scar the lung interstitium, " +
				"the tissue around the air sacs.",
			Sections: []Section{
				{
					Title: "Common forms",
					Items: []string{"Idiopathic pulmonary fibrosis", "Connective tissue disease associated ILD", "Hypersensitivity pneumonitis", "Sarcoidosis"},
				},
				{
					Title: "Typical symptoms",
					Items: []string{"Breathlessness on exertion", "Dry persistent cough", "Fatigue", "Finger clubbing"},
				},
				{
					Title: "Why early referral matters",
					Items: []string{"Fibrosis is largely irreversible", "Antifibrotics work best early", "Comorbidities are easier to manage"},
				},
			},
		},
		{
			ID:         "pathway",
			Title:      "Care Pathway",
			Background: BackgroundMist,
			Decoration: DecorationActivity,
			Steps: []Step{
				{Label: "Step 1", Title: "Referral", Text: "Primary care or specialist referral with imaging"},
				{Label: "Step 2", Title: "MDT diagnosis", Text: "Pulmonology, radiology and pathology agree on a diagnosis"},
				{Label: "Step 3", Title: "Treatment plan", Text: "Drug therapy plus every treatable trait found"},
				{Label: "Step 4", Title: "Follow-up", Text: "Lung function and symptom review every three to six months"},
			},
		},
		{
			ID:         "team",
			Title:      "The Multidisciplinary Team",
			Background: BackgroundMint,
			Decoration: DecorationUsers,
			Cards: []Card{
				{Title: "Physicians", Text: "Pulmonologists, rheumatologists and radiologists reach the diagnosis together.", Decoration: DecorationStethoscope},
				{Title: "Nurses", Text: "Specialist nurses coordinate care and answer day-to-day questions.", Decoration: DecorationHeart},
				{Title: "Rehabilitation", Text: "Physiotherapists run pulmonary rehabilitation and exercise programmes.", Decoration: DecorationActivity},
				{Title: "Pharmacists", Text: "Review medication, side effects and interactions.", Decoration: DecorationPill},
			},
		},
		{
			ID:         "summary",
			Title:      "Summary",
			Background: BackgroundDawn,
			Decoration: DecorationCheck,
			Points: []string{
				"Refer early and confirm the diagnosis in a multidisciplinary meeting",
				"Treat the disease and every treatable trait around it",
				"Follow up regularly and adapt the plan",
			},
			Note: "Questions are welcome.",
		},
	}
}
