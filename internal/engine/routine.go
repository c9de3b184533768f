package engine

import (
	"math"
	"strconv"
	"strings"
)

type RoutineStep struct {
	Step    string `json:"step"`
	Tip     string `json:"tip,omitempty"`
	Product string `json:"product,omitempty"`
}

type EstimatedTime struct {
	Morning int `json:"morning"`
	WashDay int `json:"washDay"`
}

const (
	morningMinutesPerStep = 1.5
	washDayMinutesPerStep = 3.0

	// defaultMorningMinutes applies when morning_time is absent, not a
	// number, or zero.
	defaultMorningMinutes = 10
)

// EstimateTime applies the fixed per-step durations.
func EstimateTime(morning, washDay []RoutineStep) EstimatedTime {
	return EstimatedTime{
		Morning: int(math.Round(float64(len(morning)) * morningMinutesPerStep)),
		WashDay: int(math.Round(float64(len(washDay)) * washDayMinutesPerStep)),
	}
}

// morningBranch selects a canned sequence when its predicate holds.
type morningBranch struct {
	when  func(Answers) bool
	steps []RoutineStep
}

type morningTable struct {
	branches []morningBranch
	fallback []RoutineStep
}

func answerIs(key, value string) func(Answers) bool {
	return func(a Answers) bool { return a.Is(key, value) }
}

func morningTimeAtMost(limit int) func(Answers) bool {
	return func(a Answers) bool { return MorningMinutes(a) <= limit }
}

// MorningMinutes reads the morning_time answer the way a leading-integer
// parse would ("5-7" is 5), defaulting to 10.
func MorningMinutes(a Answers) int {
	v, ok := a.Value("morning_time")
	if !ok {
		return defaultMorningMinutes
	}
	n, ok := leadingInt(v)
	if !ok || n == 0 {
		return defaultMorningMinutes
	}
	return n
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

var (
	curlyQuickMorning = []RoutineStep{
		{Step: "Spray hair with water until damp (not soaking)"},
		{Step: "Apply small amount of leave-in or curl cream", Tip: "Focus on ends, avoid roots"},
		{Step: "Scrunch upward and go", Tip: "Done in 2 min"},
	}
	curlyStandardMorning = []RoutineStep{
		{Step: "Wet hands, scrunch water into hair"},
		{Step: "Apply leave-in cream section by section"},
		{Step: "Apply gel with praying hands method"},
		{Step: "Scrunch upward, let air dry or diffuse briefly"},
		{Step: "Optional: Diffuse roots for 2 min for volume"},
	}
	curlyFullMorning = []RoutineStep{
		{Step: "Fully wet hair in shower or with spray bottle"},
		{Step: "Apply leave-in conditioner, detangle with fingers"},
		{Step: "Section hair, apply curl cream"},
		{Step: "Apply gel using praying hands + scrunch"},
		{Step: "Diffuse on medium heat for 10-15 min or air dry", Tip: "Hover diffuse - don't touch hair"},
		{Step: "Once 100% dry, scrunch out the crunch"},
	}
)

var morningTables = map[HairType]morningTable{
	HairCurly: {
		branches: []morningBranch{
			{when: morningTimeAtMost(3), steps: curlyQuickMorning},
			{when: morningTimeAtMost(7), steps: curlyStandardMorning},
		},
		fallback: curlyFullMorning,
	},
	HairStraight: {
		branches: []morningBranch{
			{
				when: answerIs("straight_concern", "no_volume"),
				steps: []RoutineStep{
					{Step: "Flip head upside down, spray dry shampoo at roots"},
					{Step: "Massage into scalp for 30 sec"},
					{Step: "Flip back up, tease roots slightly with fingers"},
					{Step: "Optional: Use 1-2 drops of oil on ends only"},
				},
			},
			{
				when: answerIs("styling_frequency", "daily"),
				steps: []RoutineStep{
					{Step: "Apply heat protectant to damp hair"},
					{Step: "Blow dry with round brush, pulling at roots for volume"},
					{Step: "Straighten or curl as desired"},
					{Step: "Finish with light oil or serum on ends"},
				},
			},
		},
		fallback: []RoutineStep{
			{Step: "Brush through hair"},
			{Step: "Apply dry shampoo if needed (day 2+)"},
			{Step: "Style as desired - air dried or touch up with heat"},
		},
	},
	HairCoily: {
		branches: []morningBranch{
			{
				when: answerIs("protective_styling", "always"),
				steps: []RoutineStep{
					{Step: "Spray edges with water"},
					{Step: "Apply edge control or gel to smooth edges"},
					{Step: "Tie down with silk scarf for 5 min while you get ready"},
					{Step: "Remove scarf, you're done"},
				},
			},
		},
		fallback: []RoutineStep{
			{Step: "Spray hair with water-leave-in mix (pre-made in spray bottle)"},
			{Step: "Apply oil to seal moisture (focus on ends)"},
			{Step: "Fluff with pick or fingers"},
			{Step: "Go - your hair is set from yesterday's styling"},
		},
	},
	HairWavy: {
		branches: []morningBranch{
			{
				when: answerIs("desired_outcome", "beachy"),
				steps: []RoutineStep{
					{Step: "Spray sea salt spray throughout hair"},
					{Step: "Scrunch upward"},
					{Step: "Air dry or diffuse for 5 min"},
				},
			},
			{
				when: answerIs("desired_outcome", "polished"),
				steps: []RoutineStep{
					{Step: "Refresh waves with water spray"},
					{Step: "Apply small amount of wave cream"},
					{Step: "Use diffuser on low to set waves"},
					{Step: "Finish with light hold hairspray"},
				},
			},
		},
		fallback: []RoutineStep{
			{Step: "Refresh with water or leave-in spray"},
			{Step: "Scrunch in mousse or cream"},
			{Step: "Air dry or diffuse briefly"},
		},
	},
}

// BuildMorningRoutine returns the morning steps for the hair type. Unknown
// hair types get no steps.
func BuildMorningRoutine(hairType HairType, answers Answers) []RoutineStep {
	table, ok := morningTables[hairType]
	if !ok {
		return []RoutineStep{}
	}
	for _, b := range table.branches {
		if b.when(answers) {
			return copySteps(b.steps)
		}
	}
	return copySteps(table.fallback)
}

// washDayExtra is appended to a wash-day sequence when when holds.
type washDayExtra struct {
	when func(Answers) bool
	step RoutineStep
}

type washDayTable struct {
	steps  []RoutineStep
	extras []washDayExtra
}

func answerIn(key string, values ...string) func(Answers) bool {
	return func(a Answers) bool {
		for _, v := range values {
			if a.Is(key, v) {
				return true
			}
		}
		return false
	}
}

var washDayTables = map[HairType]washDayTable{
	HairCurly: {
		steps: []RoutineStep{
			{Step: "Pre-poo: Apply oil to hair before shower (optional but recommended)", Tip: "Coconut, olive, or argan oil. Protects from water damage."},
			{Step: "Wet hair thoroughly with warm water"},
			{Step: "Apply sulfate-free shampoo to SCALP only, massage 2 min", Tip: "Don't scrub hair itself, just scalp"},
			{Step: "Rinse with warm water"},
			{Step: "Apply generous conditioner from ears down", Tip: "Never on scalp/roots"},
			{Step: "Detangle with wide-tooth comb or fingers while conditioner is in"},
			{Step: "Leave conditioner 3-5 min"},
			{Step: "Rinse with COLD water (seals cuticle)", Tip: "This is non-negotiable for frizz control"},
			{Step: "Squeeze excess water - DON'T rub with towel"},
			{Step: "Apply leave-in conditioner while soaking wet"},
			{Step: "Section hair, apply curl cream with praying hands"},
			{Step: "Apply gel with praying hands, then scrunch"},
			{Step: "Plop in microfiber towel for 10-20 min"},
			{Step: "Air dry or diffuse"},
		},
	},
	HairStraight: {
		steps: []RoutineStep{
			{Step: "Wet hair with warm water"},
			{Step: "Apply shampoo, focus on scalp and roots", Tip: "Massage scalp for 1-2 min"},
			{Step: "Rinse thoroughly"},
			{Step: "Apply conditioner mid-length to ends (avoid roots if hair gets oily)"},
			{Step: "Leave 2-3 min, rinse with cool water"},
			{Step: "Gently squeeze out excess water"},
			{Step: "Apply heat protectant if blow drying"},
			{Step: "Blow dry with cool shot at end to seal cuticle"},
		},
		extras: []washDayExtra{
			{
				when: answerIn("hair_condition", "bleached", "heat_damage"),
				step: RoutineStep{Step: "Weekly: Apply deep conditioning treatment or hair mask", Tip: "Leave for 15-30 min before regular shampoo"},
			},
		},
	},
	HairCoily: {
		steps: []RoutineStep{
			{Step: "Pre-poo with oil for at least 30 min (overnight is best)", Tip: "This prevents hygral fatigue"},
			{Step: "Section hair into 4-6 sections, twist or braid each"},
			{Step: "Wet hair in shower"},
			{Step: "Apply shampoo to scalp only, work through each section"},
			{Step: "Rinse thoroughly"},
			{Step: "Apply deep conditioner to each section"},
			{Step: "Detangle ONE section at a time with wide-tooth comb, re-twist when done"},
			{Step: "Leave conditioner 15-30 min (sit under hooded dryer or use heat cap)"},
			{Step: "Rinse with cool water"},
			{Step: "Apply leave-in conditioner to each section"},
			{Step: "Apply styling cream or butter"},
			{Step: "Apply gel or custard for hold"},
			{Step: "Style as desired (twist-out, braid-out, wash-n-go)"},
			{Step: "Let air dry or sit under hooded dryer"},
		},
	},
	HairWavy: {
		steps: []RoutineStep{
			{Step: "Wet hair with warm water"},
			{Step: "Apply shampoo to scalp, massage, rinse"},
			{Step: "Apply conditioner mid-length to ends"},
			{Step: "Detangle with fingers or wide-tooth comb"},
			{Step: "Rinse with cool water"},
			{Step: "Squeeze out excess water"},
			{Step: "Apply wave cream or mousse to soaking wet hair"},
			{Step: "Scrunch upward to encourage wave pattern"},
			{Step: "Plop in microfiber towel for 10 min"},
			{Step: "Air dry or diffuse on low"},
			{Step: "Optional: Scrunch in light gel for hold"},
		},
	},
}

// BuildWashDayRoutine returns the fixed wash-day sequence for the hair type
// plus any conditional extras.
func BuildWashDayRoutine(hairType HairType, answers Answers) []RoutineStep {
	table, ok := washDayTables[hairType]
	if !ok {
		return []RoutineStep{}
	}
	out := copySteps(table.steps)
	for _, x := range table.extras {
		if x.when(answers) {
			out = append(out, x.step)
		}
	}
	return out
}

func copySteps(steps []RoutineStep) []RoutineStep {
	out := make([]RoutineStep, len(steps), len(steps)+1)
	copy(out, steps)
	return out
}
