package forms

const (
	ruleDate = "datetime=2006-01-02"
	ruleTime = "datetime=15:04"
)

func options(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

// Symptoms is the illness report checklist.
var Symptoms = []string{
	"Nausea", "Vomiting", "Diarrhea", "Stomach cramps", "Fever",
	"Headache", "Muscle aches", "Dehydration", "Loss of appetite", "Fatigue",
}

// EstablishmentTypes are the safety report establishment choices.
var EstablishmentTypes = []string{
	"Restaurant",
	"Fast food establishment",
	"Food truck",
	"Grocery store",
	"Market/Vendor",
	"Catering service",
	"School cafeteria",
	"Hospital/Healthcare food service",
	"Other",
}

// ConcernTypes are the safety report concern choices.
var ConcernTypes = []string{
	"Poor food handling practices",
	"Unsanitary conditions",
	"Temperature control issues",
	"Pest infestation",
	"Improper food storage",
	"Contaminated surfaces",
	"Inadequate handwashing facilities",
	"Employee hygiene issues",
	"Expired or spoiled food",
	"Cross-contamination",
	"Other",
}

// SuggestionCategories are the suggestion form categories.
var SuggestionCategories = []string{
	"Website/Portal Improvements",
	"New Features",
	"Food Safety Programs",
	"Educational Content",
	"Restaurant/Market Services",
	"Reporting System",
	"Community Outreach",
	"Other",
}

func notSelf(s State) bool { return s.Value("relationship") != "self" }

var illness = Definition{
	ID:    IllnessReport,
	Title: "Report Food-Related Illness",
	Intro: "Help us track and prevent foodborne illnesses by reporting your experience",
	Notices: []Notice{
		{
			Title: "Medical Emergency?",
			Body: "If you are experiencing severe symptoms such as persistent vomiting, high fever, " +
				"severe dehydration, or difficulty breathing, please call 911 or visit the nearest " +
				"emergency room immediately.",
			Alert: true,
		},
		{
			Title: "Privacy Notice",
			Body: "This information will be used by the Health Department to investigate potential " +
				"foodborne illness outbreaks. Your personal information will be kept confidential " +
				"and used only for public health purposes.",
		},
	},
	Fields: []Field{
		{Name: "reporterName", Label: "Your Name", Section: "Reporter Information", Kind: KindText, Rules: "required"},
		{Name: "reporterEmail", Label: "Email Address", Section: "Reporter Information", Kind: KindEmail, Rules: "required,email"},
		{Name: "reporterPhone", Label: "Phone Number", Section: "Reporter Information", Kind: KindPhone},
		{
			Name: "relationship", Label: "Relationship to Patient", Section: "Reporter Information",
			Kind: KindSelect, Rules: "required", Default: "self",
			Options: []Option{
				{"self", "Reporting for myself"},
				{"family", "Family member"},
				{"friend", "Friend"},
				{"other", "Other"},
			},
		},
		{Name: "patientName", Label: "Patient Name", Section: "Patient Information", Kind: KindText, Rules: "required", VisibleWhen: notSelf},
		{Name: "patientAge", Label: "Patient Age", Section: "Patient Information", Kind: KindNumber, Rules: "omitempty,number,max=3", VisibleWhen: notSelf},
		{Name: "symptomsStartDate", Label: "When did symptoms start?", Section: "Illness Information", Kind: KindDate, Rules: "required," + ruleDate, Placeholder: "YYYY-MM-DD"},
		{Name: "symptomsStartTime", Label: "Time symptoms started", Section: "Illness Information", Kind: KindTime, Rules: "omitempty," + ruleTime, Placeholder: "HH:MM"},
		{Name: "symptoms", Label: "Symptoms experienced (select all that apply)", Section: "Illness Information", Kind: KindChecklist, Rules: "min=1", Options: options(Symptoms...)},
		{
			Name: "severity", Label: "Severity of illness", Section: "Illness Information",
			Kind: KindSelect, Rules: "required", Default: "mild",
			Options: []Option{
				{"mild", "Mild - Symptoms manageable at home"},
				{"moderate", "Moderate - Interfered with daily activities"},
				{"severe", "Severe - Required medical attention"},
			},
		},
		{Name: "establishmentName", Label: "Restaurant/Establishment Name", Section: "Food Establishment Information", Kind: KindText},
		{Name: "establishmentAddress", Label: "Address", Section: "Food Establishment Information", Kind: KindText},
		{Name: "mealDate", Label: "Date of meal", Section: "Food Establishment Information", Kind: KindDate, Rules: "omitempty," + ruleDate, Placeholder: "YYYY-MM-DD"},
		{Name: "mealTime", Label: "Time of meal", Section: "Food Establishment Information", Kind: KindTime, Rules: "omitempty," + ruleTime, Placeholder: "HH:MM"},
		{Name: "foodsEaten", Label: "Foods eaten (be as specific as possible)", Section: "Food Establishment Information", Kind: KindTextArea, Placeholder: "List all foods and beverages consumed..."},
		{Name: "others", Label: "Did others eat the same food and get sick?", Section: "Food Establishment Information", Kind: KindTextArea, Placeholder: "Describe if others were affected..."},
		{Name: "additionalInfo", Label: "Any additional details that might be helpful", Section: "Additional Information", Kind: KindTextArea, Placeholder: "Include any other relevant information..."},
	},
	Submit:    "Submit Illness Report",
	Message:   "Thank you for your report. We will review it and follow up if necessary.",
	RefPrefix: "ILL",
}

var safety = Definition{
	ID:    SafetyReport,
	Title: "Report Food Safety Concern",
	Intro: "Help us maintain food safety standards by reporting violations or concerns",
	Notices: []Notice{
		{
			Title: "When to Report",
			Body: "Report any food safety violations or concerns you observe at restaurants, " +
				"markets, or other food establishments. Anonymous reporting is available.",
			Alert: true,
		},
		{
			Title: "Privacy & Follow-up",
			Body: "Reports are investigated by the Health Department. Your identity will be kept confidential " +
				"unless disclosure is required by law or for enforcement purposes. You will receive a case " +
				"number via email (if provided) that you can use to check the status of your report.",
		},
	},
	Fields: []Field{
		{Name: "reporterName", Label: "Your Name", Section: "Reporter Information (Optional)", Kind: KindText},
		{Name: "reporterEmail", Label: "Email Address", Section: "Reporter Information (Optional)", Kind: KindEmail, Rules: "omitempty,email"},
		{Name: "reporterPhone", Label: "Phone Number", Section: "Reporter Information (Optional)", Kind: KindPhone},
		{Name: "establishmentName", Label: "Establishment Name", Section: "Establishment Information", Kind: KindText, Rules: "required"},
		{Name: "establishmentType", Label: "Type of Establishment", Section: "Establishment Information", Kind: KindSelect, Rules: "required", Placeholder: "Select type", Options: options(EstablishmentTypes...)},
		{Name: "establishmentAddress", Label: "Address", Section: "Establishment Information", Kind: KindText, Rules: "required", Placeholder: "Street address, city, state, zip code"},
		{Name: "dateObserved", Label: "Date Observed", Section: "Incident Details", Kind: KindDate, Rules: "required," + ruleDate, Placeholder: "YYYY-MM-DD"},
		{Name: "timeObserved", Label: "Time Observed", Section: "Incident Details", Kind: KindTime, Rules: "omitempty," + ruleTime, Placeholder: "HH:MM"},
		{Name: "concernType", Label: "Type of Concern", Section: "Incident Details", Kind: KindSelect, Rules: "required", Placeholder: "Select concern type", Options: options(ConcernTypes...)},
		{
			Name: "urgency", Label: "Urgency Level", Section: "Incident Details",
			Kind: KindSelect, Rules: "required", Default: "medium",
			Options: []Option{
				{"low", "Low - Minor violation"},
				{"medium", "Medium - Moderate concern"},
				{"high", "High - Serious violation"},
				{"critical", "Critical - Immediate risk"},
			},
		},
		{Name: "description", Label: "Detailed Description", Section: "Incident Details", Kind: KindTextArea, Rules: "required", Placeholder: "Provide a detailed description of what you observed. Include specific locations, times, and behaviors if applicable."},
		{Name: "actionTaken", Label: "Action Taken (if any)", Section: "Incident Details", Kind: KindTextArea, Placeholder: "Did you speak with management? Did they address the issue? What was their response?"},
		{
			Name: "followUp", Label: "Would you like follow-up on this report?", Section: "Incident Details",
			Kind: KindRadio, Default: "yes",
			Options: []Option{{"yes", "Yes"}, {"no", "No"}},
		},
		{Name: "evidence", Label: "Evidence description", Section: "Supporting Evidence", Kind: KindTextArea, Placeholder: "Describe any photos, receipts, or other evidence you have..."},
	},
	Submit:    "Submit Safety Report",
	Message:   "Thank you for your report. We will investigate this matter and take appropriate action.",
	RefPrefix: "SAF",
}

var suggestion = Definition{
	ID:    Suggestion,
	Title: "Submit Suggestions",
	Intro: "Help us improve our food information portal by sharing your ideas and suggestions",
	Notices: []Notice{
		{
			Title: "Suggestion Guidelines",
			Body: "Be specific and detailed in your suggestions. Consider the feasibility and resources " +
				"required. Focus on improvements that benefit the community. Check if similar suggestions " +
				"have been made. Provide constructive feedback and solutions.",
		},
	},
	Fields: []Field{
		{Name: "name", Label: "Your Name", Section: "Share Your Idea", Kind: KindText},
		{Name: "email", Label: "Email Address", Section: "Share Your Idea", Kind: KindEmail, Rules: "omitempty,email"},
		{Name: "category", Label: "Category", Section: "Share Your Idea", Kind: KindSelect, Rules: "required", Placeholder: "Select a category", Options: options(SuggestionCategories...)},
		{
			Name: "priority", Label: "Priority Level", Section: "Share Your Idea",
			Kind: KindSelect, Default: "medium",
			Options: []Option{
				{"low", "Low - Nice to have"},
				{"medium", "Medium - Would be helpful"},
				{"high", "High - Important improvement"},
				{"critical", "Critical - Essential feature"},
			},
		},
		{Name: "title", Label: "Suggestion Title", Section: "Share Your Idea", Kind: KindText, Rules: "required", Placeholder: "Brief, descriptive title for your suggestion"},
		{Name: "description", Label: "Detailed Description", Section: "Share Your Idea", Kind: KindTextArea, Rules: "required", Placeholder: "Describe your suggestion in detail. What problem does it solve? How would it work?"},
		{Name: "implementation", Label: "Implementation Ideas", Section: "Share Your Idea", Kind: KindTextArea, Placeholder: "Do you have ideas on how this could be implemented? Any technical considerations?"},
		{Name: "benefits", Label: "Expected Benefits", Section: "Share Your Idea", Kind: KindTextArea, Placeholder: "What benefits would this provide to users, the city, or the community?"},
	},
	Submit:    "Submit Suggestion",
	Message:   "Thank you for your suggestion! We will review it and consider it for future improvements.",
	RefPrefix: "SUG",
}

// Definitions returns every form in page order.
func Definitions() []Definition {
	return []Definition{illness, safety, suggestion}
}

// Lookup returns the form with the given id.
func Lookup(id ID) (Definition, bool) {
	for _, d := range Definitions() {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
