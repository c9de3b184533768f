package engine

import "slices"

type QuestionType string

const (
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	ImageChoice  QuestionType = "image-choice"
	TextInput    QuestionType = "text-input"
)

type QuestionOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Dependency gates a question on an earlier answer. The question is shown
// when that answer equals one of Answers.
type Dependency struct {
	QuestionID string   `json:"questionId"`
	Answers    []string `json:"answer"`
}

type Validation struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

type Question struct {
	ID          string           `json:"id"`
	Type        QuestionType     `json:"type"`
	Prompt      string           `json:"question"`
	Description string           `json:"description,omitempty"`
	Options     []QuestionOption `json:"options"`
	Required    bool             `json:"required"`
	DependsOn   *Dependency      `json:"dependsOn,omitempty"`
	Validation  *Validation      `json:"validation,omitempty"`
}

func (q Question) hasOption(v string) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

func (q Question) visible(answers Answers) bool {
	if q.DependsOn == nil {
		return true
	}
	got, ok := answers.Value(q.DependsOn.QuestionID)
	return ok && slices.Contains(q.DependsOn.Answers, got)
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	if q.DependsOn != nil {
		d := *q.DependsOn
		d.Answers = slices.Clone(d.Answers)
		q.DependsOn = &d
	}
	if q.Validation != nil {
		v := *q.Validation
		q.Validation = &v
	}
	return q
}

const (
	QuestionHairType  = "hair_type"
	QuestionHairGoals = "hair_goals"
	QuestionBudget    = "budget"
)

// QuestionsFor returns the questions to present, in order: universal, the
// hair type block, then budget, minus any whose dependency is unmet. A missing
// hair_type answer is read as hairType for the dependency check.
func QuestionsFor(hairType HairType, current Answers) []Question {
	view := current
	if _, ok := current.Value(QuestionHairType); !ok && hairType != "" {
		view = make(Answers, len(current)+1)
		for k, v := range current {
			view[k] = v
		}
		view[QuestionHairType] = Single(string(hairType))
	}

	candidates := make([]Question, 0, len(universalQuestions)+6)
	candidates = append(candidates, universalQuestions...)
	candidates = append(candidates, typeQuestions[hairType]...)
	candidates = append(candidates, budgetQuestion)

	out := make([]Question, 0, len(candidates))
	for _, q := range candidates {
		if q.visible(view) {
			out = append(out, q.clone())
		}
	}
	return out
}

// AllQuestions returns every question in the bank.
func AllQuestions() []Question {
	var out []Question
	for _, q := range universalQuestions {
		out = append(out, q.clone())
	}
	for _, h := range []HairType{HairCurly, HairStraight, HairCoily, HairWavy} {
		for _, q := range typeQuestions[h] {
			out = append(out, q.clone())
		}
	}
	return append(out, budgetQuestion.clone())
}

func QuestionByID(id string) (Question, bool) {
	for _, q := range AllQuestions() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func intp(n int) *int { return &n }

func onHairType(h HairType) *Dependency {
	return &Dependency{QuestionID: QuestionHairType, Answers: []string{string(h)}}
}

var universalQuestions = []Question{
	{
		ID:          QuestionHairType,
		Type:        ImageChoice,
		Prompt:      "What's your hair type?",
		Description: "Not sure? Pick the one that looks closest to your natural hair",
		Options: []QuestionOption{
			{Value: "straight", Label: "Straight", Image: "/images/hair-straight.jpg", Description: "Falls flat, no natural curl pattern"},
			{Value: "wavy", Label: "Wavy", Image: "/images/hair-wavy.jpg", Description: "S-shaped pattern, some texture"},
			{Value: "curly", Label: "Curly", Image: "/images/hair-curly.jpg", Description: "Spiral curls, defined ringlets"},
			{Value: "coily", Label: "Coily", Image: "/images/hair-coily.jpg", Description: "Tight coils, Z-pattern"},
		},
		Required: true,
	},
	{
		ID:          QuestionHairGoals,
		Type:        MultiChoice,
		Prompt:      "What are your hair goals?",
		Description: "Select all that apply",
		Options: []QuestionOption{
			{Value: "growth", Label: "Growth/length retention"},
			{Value: "moisture", Label: "Moisture/hydration"},
			{Value: "volume", Label: "Volume/thickness"},
			{Value: "frizz", Label: "Frizz control"},
			{Value: "definition", Label: "Definition"},
			{Value: "low_maintenance", Label: "Low maintenance"},
			{Value: "damage_repair", Label: "Damage repair"},
			{Value: "scalp_health", Label: "Scalp health"},
		},
		Required:   true,
		Validation: &Validation{Min: intp(1), Max: intp(4)},
	},
}

var typeQuestions = map[HairType][]Question{
	HairCurly: {
		{
			ID:        "curl_pattern",
			Type:      SingleChoice,
			Prompt:    "How would you describe your curl pattern?",
			DependsOn: onHairType(HairCurly),
			Options: []QuestionOption{
				{Value: "loose", Label: "Loose curls (2C-3A)", Description: "Could almost pass as wavy, looser spirals"},
				{Value: "medium", Label: "Medium curls (3B)", Description: "Definite spirals, springy"},
				{Value: "tight", Label: "Tight curls (3C)", Description: "Small ringlets, corkscrew pattern"},
			},
			Required: true,
		},
		{
			ID:          "porosity",
			Type:        SingleChoice,
			Prompt:      "Porosity test: Drop a clean hair strand in water. What happens?",
			Description: "This tells us how your hair absorbs moisture",
			DependsOn:   onHairType(HairCurly),
			Options: []QuestionOption{
				{Value: "low", Label: "Floats on top", Description: "Low porosity - cuticles are tight"},
				{Value: "normal", Label: "Sinks slowly", Description: "Normal porosity - balanced"},
				{Value: "high", Label: "Sinks immediately", Description: "High porosity - absorbs water fast"},
			},
			Required: true,
		},
		{
			ID:        "activity_level",
			Type:      SingleChoice,
			Prompt:    "What's your typical week at WSU like?",
			DependsOn: onHairType(HairCurly),
			Options: []QuestionOption{
				{Value: "very_active", Label: "5+ gym sessions/workouts per week"},
				{Value: "active", Label: "2-4 gym sessions, moderately active"},
				{Value: "minimal", Label: "Minimal workouts, mostly in class/studying"},
				{Value: "athlete", Label: "Athlete/ROTC (daily intense physical activity)"},
			},
			Required: true,
		},
		{
			ID:        "curl_frustration",
			Type:      SingleChoice,
			Prompt:    "What's your biggest hair frustration right now?",
			DependsOn: onHairType(HairCurly),
			Options: []QuestionOption{
				{Value: "falls_flat", Label: "Curls fall flat by midday"},
				{Value: "frizz", Label: "Extreme frizz/halo effect"},
				{Value: "tangles", Label: "Tangles and knots constantly"},
				{Value: "dry_breaking", Label: "Dry, brittle, breaking"},
				{Value: "greasy_roots", Label: "Greasy roots but dry ends"},
			},
			Required: true,
		},
		{
			ID:        "morning_time",
			Type:      SingleChoice,
			Prompt:    "How much time can you realistically spend on hair in the morning?",
			DependsOn: onHairType(HairCurly),
			Options: []QuestionOption{
				{Value: "3", Label: "3 minutes max (literally rolling out of bed)"},
				{Value: "5", Label: "5-7 minutes (quick but intentional)"},
				{Value: "10", Label: "10-15 minutes (I care about my hair)"},
				{Value: "20", Label: "20+ minutes (hair is a priority)"},
			},
			Required: true,
		},
	},
	HairStraight: {
		{
			ID:        "texture_thickness",
			Type:      SingleChoice,
			Prompt:    "How would you describe your hair texture and thickness?",
			DependsOn: onHairType(HairStraight),
			Options: []QuestionOption{
				{Value: "fine", Label: "Fine/thin - you can see scalp easily"},
				{Value: "medium", Label: "Medium - normal density"},
				{Value: "thick", Label: "Thick/coarse - lots of hair"},
			},
			Required: true,
		},
		{
			ID:        "oil_production",
			Type:      SingleChoice,
			Prompt:    "How quickly does your hair get greasy?",
			DependsOn: onHairType(HairStraight),
			Options: []QuestionOption{
				{Value: "day_1", Label: "Gets greasy by end of day one"},
				{Value: "day_2", Label: "Greasy by day 2"},
				{Value: "day_3_4", Label: "Can go 3-4 days before getting oily"},
				{Value: "rarely", Label: "Rarely gets oily, tends toward dry"},
			},
			Required: true,
		},
		{
			ID:        "hair_condition",
			Type:      SingleChoice,
			Prompt:    "What's your current hair condition?",
			DependsOn: onHairType(HairStraight),
			Options: []QuestionOption{
				{Value: "healthy", Label: "Healthy, just want to maintain"},
				{Value: "heat_damage", Label: "Some damage from heat styling"},
				{Value: "bleached", Label: "Bleached/colored - chemically treated"},
				{Value: "breaking", Label: "Breaking/thinning"},
			},
			Required: true,
		},
		{
			ID:        "styling_frequency",
			Type:      SingleChoice,
			Prompt:    "How often do you heat style?",
			DependsOn: onHairType(HairStraight),
			Options: []QuestionOption{
				{Value: "daily", Label: "Heat style daily (straightener, curling iron, blow dry)"},
				{Value: "frequent", Label: "Heat style 2-3x per week"},
				{Value: "occasional", Label: "Occasional heat styling"},
				{Value: "never", Label: "Never heat style, air dry only"},
			},
			Required: true,
		},
		{
			ID:        "straight_concern",
			Type:      SingleChoice,
			Prompt:    "What's your main concern?",
			DependsOn: onHairType(HairStraight),
			Options: []QuestionOption{
				{Value: "no_volume", Label: "No volume, falls flat"},
				{Value: "greasy_roots", Label: "Greasy roots, dry ends"},
				{Value: "damage", Label: "Damage and split ends"},
				{Value: "frizz", Label: "Frizz and flyaways"},
				{Value: "growth", Label: "Just want it to grow faster"},
			},
			Required: true,
		},
	},
	HairCoily: {
		{
			ID:        "coil_tightness",
			Type:      SingleChoice,
			Prompt:    "How would you describe your coil pattern?",
			DependsOn: onHairType(HairCoily),
			Options: []QuestionOption{
				{Value: "4a", Label: "4A - S-pattern coils, defined"},
				{Value: "4b", Label: "4B - Z-pattern, less definition"},
				{Value: "4c", Label: "4C - Tightest coils, minimal visible pattern"},
			},
			Required: true,
		},
		{
			ID:        "shrinkage",
			Type:      SingleChoice,
			Prompt:    "How much does your hair shrink when dry?",
			DependsOn: onHairType(HairCoily),
			Options: []QuestionOption{
				{Value: "30_50", Label: "30-50% shrinkage (hair looks half its real length)"},
				{Value: "50_75", Label: "50-75% shrinkage"},
				{Value: "75_plus", Label: "75%+ shrinkage (hair shrinks dramatically when dry)"},
			},
			Required: true,
		},
		{
			ID:        "moisture_retention",
			Type:      SingleChoice,
			Prompt:    "How long does moisture last in your hair?",
			DependsOn: onHairType(HairCoily),
			Options: []QuestionOption{
				{Value: "hours", Label: "Hair feels dry within hours of moisturizing"},
				{Value: "1_2_days", Label: "Stays moisturized for 1-2 days"},
				{Value: "3_4_days", Label: "Can go 3-4 days before re-moisturizing"},
			},
			Required: true,
		},
		{
			ID:          "protective_styling",
			Type:        SingleChoice,
			Prompt:      "How often do you wear protective styles?",
			Description: "Braids, twists, wigs, etc.",
			DependsOn:   onHairType(HairCoily),
			Options: []QuestionOption{
				{Value: "always", Label: "Wear protective styles 75%+ of the time"},
				{Value: "sometimes", Label: "Protective styles sometimes (50/50)"},
				{Value: "mostly_out", Label: "Mostly wear hair out/natural"},
				{Value: "never", Label: "Always wear hair out, no protective styles"},
			},
			Required: true,
		},
		{
			ID:        "coily_goals",
			Type:      SingleChoice,
			Prompt:    "What's your #1 hair goal?",
			DependsOn: onHairType(HairCoily),
			Options: []QuestionOption{
				{Value: "length", Label: "Length retention (growth)"},
				{Value: "definition", Label: "Definition and shine"},
				{Value: "moisture", Label: "Moisture and softness"},
				{Value: "volume", Label: "Volume and fullness"},
				{Value: "low_manipulation", Label: "Low manipulation/protective styling"},
			},
			Required: true,
		},
	},
	HairWavy: {
		{
			ID:        "wave_pattern",
			Type:      SingleChoice,
			Prompt:    "Which wave pattern matches yours?",
			DependsOn: onHairType(HairWavy),
			Options: []QuestionOption{
				{Value: "2a", Label: "2A - Subtle S-waves, mostly straight"},
				{Value: "2b", Label: "2B - Defined S-waves"},
				{Value: "2c", Label: "2C - Strong waves, almost curly"},
			},
			Required: true,
		},
		{
			ID:        "frizz_level",
			Type:      SingleChoice,
			Prompt:    "How's your frizz situation?",
			DependsOn: onHairType(HairWavy),
			Options: []QuestionOption{
				{Value: "minimal", Label: "Minimal frizz, waves hold smooth"},
				{Value: "moderate", Label: "Moderate frizz halo"},
				{Value: "extreme", Label: "Extreme frizz, looks messy"},
				{Value: "no_frizz_flat", Label: "No frizz but waves fall flat"},
			},
			Required: true,
		},
		{
			ID:        "density",
			Type:      SingleChoice,
			Prompt:    "How much hair do you have?",
			DependsOn: onHairType(HairWavy),
			Options: []QuestionOption{
				{Value: "fine", Label: "Fine hair, see scalp easily"},
				{Value: "medium", Label: "Medium density"},
				{Value: "thick", Label: "Thick, lots of hair"},
			},
			Required: true,
		},
		{
			ID:        "wash_frequency",
			Type:      SingleChoice,
			Prompt:    "How often do you prefer to wash your hair?",
			DependsOn: onHairType(HairWavy),
			Options: []QuestionOption{
				{Value: "daily", Label: "Daily washer (can't function without it)"},
				{Value: "every_other", Label: "Every other day"},
				{Value: "every_3_4", Label: "Every 3-4 days"},
				{Value: "weekly", Label: "Once a week or less"},
			},
			Required: true,
		},
		{
			ID:        "desired_outcome",
			Type:      SingleChoice,
			Prompt:    "What's your ideal hair look?",
			DependsOn: onHairType(HairWavy),
			Options: []QuestionOption{
				{Value: "beachy", Label: "Beachy, effortless texture"},
				{Value: "polished", Label: "Polished, defined waves"},
				{Value: "volume", Label: "Maximum volume"},
				{Value: "sleek", Label: "Sleek with slight movement"},
				{Value: "low_maintenance", Label: "Low-maintenance air dry"},
			},
			Required: true,
		},
	},
}

var budgetQuestion = Question{
	ID:          QuestionBudget,
	Type:        SingleChoice,
	Prompt:      "What's your realistic monthly budget for hair products?",
	Description: "Be honest - we'll recommend options that fit",
	Options: []QuestionOption{
		{Value: "low", Label: "Under $30/month", Description: "Budget-friendly drugstore options"},
		{Value: "mid", Label: "$30-70/month", Description: "Quality mid-range products"},
		{Value: "premium", Label: "$70+/month", Description: "Premium salon-quality products"},
	},
	Required: true,
}
