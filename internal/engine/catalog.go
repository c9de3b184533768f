package engine

import "slices"

type HairType string

const (
	HairStraight HairType = "straight"
	HairWavy     HairType = "wavy"
	HairCurly    HairType = "curly"
	HairCoily    HairType = "coily"
)

var HairTypes = []HairType{HairStraight, HairWavy, HairCurly, HairCoily}

// ParseHairType reports whether s names one of the four hair types.
func ParseHairType(s string) (HairType, bool) {
	h := HairType(s)
	return h, slices.Contains(HairTypes, h)
}

type Tier string

const (
	TierLow     Tier = "low"
	TierMid     Tier = "mid"
	TierPremium Tier = "premium"
)

var Tiers = []Tier{TierLow, TierMid, TierPremium}

// ParseTier reports whether s is a known budget tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(s)
	return t, slices.Contains(Tiers, t)
}

type Category string

const (
	CategoryShampoo     Category = "shampoo"
	CategoryConditioner Category = "conditioner"
	CategoryTreatment   Category = "treatment"
	CategoryStyler      Category = "styler"
	CategoryOil         Category = "oil"
	CategoryTool        Category = "tool"
)

type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Brand       string     `json:"brand"`
	Category    Category   `json:"category"`
	Price       float64    `json:"price"`
	BuyLink     string     `json:"buyLink"`
	Tier        Tier       `json:"tier"`
	HairTypes   []HairType `json:"hairTypes"`
	Concerns    []string   `json:"concerns"`
	Description string     `json:"description"`
	Usage       string     `json:"usage"`
	LastingTime float64    `json:"lastingTime"` // months one unit lasts
}

func (p Product) suits(h HairType) bool { return slices.Contains(p.HairTypes, h) }

func (p Product) addresses(concerns []string) bool {
	for _, c := range concerns {
		if slices.Contains(p.Concerns, c) {
			return true
		}
	}
	return false
}

func (p Product) clone() Product {
	p.HairTypes = slices.Clone(p.HairTypes)
	p.Concerns = slices.Clone(p.Concerns)
	return p
}

// Catalog returns a copy of every product in declared order. Declared order
// is the recommendation priority.
func Catalog() []Product {
	out := make([]Product, len(catalog))
	for i, p := range catalog {
		out[i] = p.clone()
	}
	return out
}

// ProductByID returns a copy of the catalog product with the given id.
func ProductByID(id string) (Product, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Product{}, false
	}
	return catalog[i].clone(), true
}

// ProductsByCriteria filters the catalog on hair type, tier and concern
// intersection. An empty category matches every category.
func ProductsByCriteria(hairType HairType, concerns []string, tier Tier, category Category) []Product {
	var out []Product
	for _, p := range catalog {
		if !p.suits(hairType) || p.Tier != tier || !p.addresses(concerns) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p.clone())
	}
	return out
}

// Concerns lists every concern tag used by the catalog, first-seen order.
func Concerns() []string {
	var out []string
	for _, p := range catalog {
		for _, c := range p.Concerns {
			if !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	return out
}

const (
	MicrofiberTowelID = "microfiber_towel"
	WideToothCombID   = "wide_tooth_comb"
)

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, p := range catalog {
		idx[p.ID] = i
	}
	return idx
}()

var allHairTypes = []HairType{HairStraight, HairWavy, HairCurly, HairCoily}

var catalog = []Product{
	// curly, low
	{
		ID: "nymct_shampoo", Name: "Not Your Mother's Curl Talk Shampoo", Brand: "Not Your Mother's",
		Category: CategoryShampoo, Price: 6.99, BuyLink: "https://amazon.com/dp/B07L8QXJVL", Tier: TierLow,
		HairTypes: []HairType{HairCurly, HairWavy}, Concerns: []string{"definition", "frizz"},
		Description: "Sulfate-free gentle cleansing shampoo",
		Usage:       "Apply to scalp, massage gently, rinse thoroughly. Use 2-3x per week.",
		LastingTime: 2,
	},
	{
		ID: "nymct_conditioner", Name: "Not Your Mother's Curl Talk Conditioner", Brand: "Not Your Mother's",
		Category: CategoryConditioner, Price: 6.99, BuyLink: "https://amazon.com/dp/B07L8QXKPL", Tier: TierLow,
		HairTypes: []HairType{HairCurly, HairWavy}, Concerns: []string{"moisture", "frizz", "definition"},
		Description: "Moisturizing conditioner for defined curls",
		Usage:       "Apply from mid-length to ends, detangle with fingers, leave 3-5 min, rinse.",
		LastingTime: 2,
	},
	{
		ID: "shea_moisture_curl_mousse", Name: "Shea Moisture Curl Mousse", Brand: "Shea Moisture",
		Category: CategoryStyler, Price: 9.99, BuyLink: "https://amazon.com/dp/B00UGGUHMG", Tier: TierLow,
		HairTypes: []HairType{HairCurly}, Concerns: []string{"definition", "frizz", "volume"},
		Description: "Coconut & hibiscus curl enhancing mousse",
		Usage:       "Apply to damp hair, scrunch upward. Air dry or diffuse.",
		LastingTime: 3,
	},
	{
		ID: "la_looks_gel", Name: "LA Looks Extreme Sport Gel", Brand: "LA Looks",
		Category: CategoryStyler, Price: 3.49, BuyLink: "https://amazon.com/dp/B000V39K00", Tier: TierLow,
		HairTypes: []HairType{HairCurly, HairWavy}, Concerns: []string{"frizz", "definition"},
		Description: "Strong hold gel for curl definition",
		Usage:       "Apply to soaking wet hair, scrunch. Let dry completely, then scrunch out the crunch.",
		LastingTime: 3,
	},

	// curly, mid
	{
		ID: "ouidad_shampoo", Name: "Ouidad VitalCurl+ Shampoo", Brand: "Ouidad",
		Category: CategoryShampoo, Price: 26.00, BuyLink: "https://amazon.com/dp/B01N0YVZQ9", Tier: TierMid,
		HairTypes: []HairType{HairCurly}, Concerns: []string{"moisture", "definition"},
		Description: "Curl-specific gentle cleansing shampoo",
		Usage:       "Massage into scalp, let sit 1 minute, rinse. Use 1-2x per week.",
		LastingTime: 3,
	},
	{
		ID: "curlsmith_conditioner", Name: "Curlsmith Curl Quenching Conditioning Wash", Brand: "Curlsmith",
		Category: CategoryConditioner, Price: 28.00, BuyLink: "https://amazon.com/dp/B07Q2QKLXW", Tier: TierMid,
		HairTypes: []HairType{HairCurly, HairCoily}, Concerns: []string{"moisture", "frizz"},
		Description: "Co-wash that cleanses and conditions",
		Usage:       "Use as shampoo alternative. Massage into scalp and hair, detangle, rinse.",
		LastingTime: 2,
	},
	{
		ID: "kinky_curly_custard", Name: "Kinky-Curly Curling Custard", Brand: "Kinky-Curly",
		Category: CategoryStyler, Price: 18.00, BuyLink: "https://amazon.com/dp/B001AWDKWU", Tier: TierMid,
		HairTypes: []HairType{HairCurly, HairCoily}, Concerns: []string{"definition", "frizz"},
		Description: "Natural curl defining gel",
		Usage:       "Apply to soaking wet hair in sections. Air dry or diffuse.",
		LastingTime: 2.5,
	},

	// curly, premium
	{
		ID: "devacurl_shampoo", Name: "DevaCurl No-Poo Cleanser", Brand: "DevaCurl",
		Category: CategoryShampoo, Price: 28.00, BuyLink: "https://amazon.com/dp/B000PKEJGQ", Tier: TierPremium,
		HairTypes: []HairType{HairCurly}, Concerns: []string{"moisture", "frizz"},
		Description: "Zero-lather conditioning cleanser",
		Usage:       "Massage into scalp and roots, rinse thoroughly. Weekly use.",
		LastingTime: 3,
	},

	// straight, low
	{
		ID: "dove_shampoo_volume", Name: "Dove Volume & Fullness Shampoo", Brand: "Dove",
		Category: CategoryShampoo, Price: 5.99, BuyLink: "https://amazon.com/dp/B005VM5ZDO", Tier: TierLow,
		HairTypes: []HairType{HairStraight}, Concerns: []string{"volume", "no_volume"},
		Description: "Lightweight volumizing shampoo",
		Usage:       "Use daily or as needed. Focus on roots, rinse well.",
		LastingTime: 2,
	},
	{
		ID: "tresemme_heat_protect", Name: "TRESemmé Thermal Creations Heat Tamer Spray", Brand: "TRESemmé",
		Category: CategoryTreatment, Price: 5.49, BuyLink: "https://amazon.com/dp/B001ECQ4XQ", Tier: TierLow,
		HairTypes: []HairType{HairStraight, HairWavy}, Concerns: []string{"damage", "heat_damage"},
		Description: "Heat protection up to 450°F",
		Usage:       "Spray on damp hair before blow drying or heat styling.",
		LastingTime: 3,
	},
	{
		ID: "ogx_argan_oil", Name: "OGX Renewing Argan Oil of Morocco", Brand: "OGX",
		Category: CategoryOil, Price: 7.99, BuyLink: "https://amazon.com/dp/B004FEEJ1E", Tier: TierLow,
		HairTypes: []HairType{HairStraight, HairWavy}, Concerns: []string{"damage", "frizz"},
		Description: "Lightweight argan oil for shine",
		Usage:       "Apply 1-2 drops to ends when damp or dry.",
		LastingTime: 4,
	},

	// straight, mid
	{
		ID: "olaplex_no4_shampoo", Name: "Olaplex No. 4 Bond Maintenance Shampoo", Brand: "Olaplex",
		Category: CategoryShampoo, Price: 30.00, BuyLink: "https://amazon.com/dp/B07RPRN8RK", Tier: TierMid,
		HairTypes: []HairType{HairStraight, HairWavy}, Concerns: []string{"damage", "bleached", "breaking"},
		Description: "Bond-building repair shampoo",
		Usage:       "Use 2-3x per week. Lather, leave 2 min, rinse.",
		LastingTime: 3,
	},
	{
		ID: "living_proof_dry_shampoo", Name: "Living Proof Perfect Hair Day Dry Shampoo", Brand: "Living Proof",
		Category: CategoryTreatment, Price: 25.00, BuyLink: "https://amazon.com/dp/B00I3EFXDC", Tier: TierMid,
		HairTypes: []HairType{HairStraight, HairWavy}, Concerns: []string{"greasy_roots", "volume"},
		Description: "Triple-action dry shampoo",
		Usage:       "Shake well, spray on roots, wait 30 sec, massage in.",
		LastingTime: 3,
	},

	// straight, premium
	{
		ID: "kerastase_resistance", Name: "Kérastase Resistance Bain Force Architecte", Brand: "Kérastase",
		Category: CategoryShampoo, Price: 38.00, BuyLink: "https://amazon.com/dp/B00AYL8A52", Tier: TierPremium,
		HairTypes: []HairType{HairStraight}, Concerns: []string{"damage", "breaking"},
		Description: "Reconstructing shampoo for damaged hair",
		Usage:       "Apply to wet hair, massage, rinse. Use 2-3x per week.",
		LastingTime: 3,
	},

	// coily, low
	{
		ID: "cantu_shampoo", Name: "Cantu Shea Butter Sulfate-Free Cleansing Cream Shampoo", Brand: "Cantu",
		Category: CategoryShampoo, Price: 5.99, BuyLink: "https://amazon.com/dp/B01LTIAWE6", Tier: TierLow,
		HairTypes: []HairType{HairCoily, HairCurly}, Concerns: []string{"moisture", "frizz"},
		Description: "Gentle sulfate-free cleanser",
		Usage:       "Massage into wet hair and scalp. Rinse thoroughly.",
		LastingTime: 2,
	},
	{
		ID: "shea_moisture_jbco_masque", Name: "Shea Moisture Jamaican Black Castor Oil Strengthen & Restore Treatment Masque", Brand: "Shea Moisture",
		Category: CategoryTreatment, Price: 11.99, BuyLink: "https://amazon.com/dp/B00PKHSH76", Tier: TierLow,
		HairTypes: []HairType{HairCoily, HairCurly}, Concerns: []string{"damage_repair", "breaking", "moisture"},
		Description: "Deep conditioning treatment",
		Usage:       "Apply to clean, damp hair. Leave 15-30 min. Rinse.",
		LastingTime: 2,
	},
	{
		ID: "eco_styler_gel", Name: "Eco Styler Olive Oil Gel", Brand: "Eco Styler",
		Category: CategoryStyler, Price: 4.99, BuyLink: "https://amazon.com/dp/B0000AZMAY", Tier: TierLow,
		HairTypes: []HairType{HairCoily, HairCurly}, Concerns: []string{"definition", "frizz"},
		Description: "Maximum hold styling gel",
		Usage:       "Apply to damp hair for slicked styles or definition.",
		LastingTime: 4,
	},

	// coily, mid
	{
		ID: "mielle_babassu_shampoo", Name: "Mielle Organics Babassu Oil Mint Deep Conditioning Shampoo", Brand: "Mielle Organics",
		Category: CategoryShampoo, Price: 12.99, BuyLink: "https://amazon.com/dp/B01MRZWHWH", Tier: TierMid,
		HairTypes: []HairType{HairCoily}, Concerns: []string{"scalp_health", "moisture"},
		Description: "Cleansing and conditioning shampoo",
		Usage:       "Massage into scalp, work through hair, rinse.",
		LastingTime: 2.5,
	},
	{
		ID: "camille_rose_moisture_milk", Name: "Camille Rose Almond Jai Twisting Butter", Brand: "Camille Rose",
		Category: CategoryStyler, Price: 18.99, BuyLink: "https://amazon.com/dp/B00HQ3VJNQ", Tier: TierMid,
		HairTypes: []HairType{HairCoily, HairCurly}, Concerns: []string{"moisture", "definition"},
		Description: "Rich twisting and styling butter",
		Usage:       "Apply to damp hair in sections for twist-outs or wash-n-gos.",
		LastingTime: 2,
	},

	// coily, premium
	{
		ID: "pattern_treatment_mask", Name: "Pattern Intensive Conditioner", Brand: "Pattern Beauty",
		Category: CategoryTreatment, Price: 25.00, BuyLink: "https://amazon.com/dp/B083XQR1PF", Tier: TierPremium,
		HairTypes: []HairType{HairCoily, HairCurly}, Concerns: []string{"moisture", "damage_repair"},
		Description: "Deep conditioning treatment",
		Usage:       "Apply to clean hair. Leave 20-30 min. Rinse thoroughly.",
		LastingTime: 2,
	},

	// wavy, low
	{
		ID: "garnier_fructis_curl_mousse", Name: "Garnier Fructis Curl Construct Mousse", Brand: "Garnier Fructis",
		Category: CategoryStyler, Price: 4.99, BuyLink: "https://amazon.com/dp/B001ET76EY", Tier: TierLow,
		HairTypes: []HairType{HairWavy}, Concerns: []string{"definition", "frizz"},
		Description: "Curl enhancing mousse",
		Usage:       "Apply to damp hair, scrunch. Air dry or diffuse.",
		LastingTime: 3,
	},
	{
		ID: "aussie_sea_spray", Name: "Aussie Beach Mate Sea Salt Spray", Brand: "Aussie",
		Category: CategoryStyler, Price: 5.99, BuyLink: "https://amazon.com/dp/B01NCOSDD1", Tier: TierLow,
		HairTypes: []HairType{HairWavy, HairStraight}, Concerns: []string{"volume", "beachy"},
		Description: "Texturizing sea salt spray",
		Usage:       "Spray on damp or dry hair. Scrunch for texture.",
		LastingTime: 3,
	},

	// wavy, mid
	{
		ID: "bumble_surf_spray", Name: "Bumble and bumble Surf Spray", Brand: "Bumble and bumble",
		Category: CategoryStyler, Price: 27.00, BuyLink: "https://amazon.com/dp/B000RI5EXM", Tier: TierMid,
		HairTypes: []HairType{HairWavy}, Concerns: []string{"beachy", "volume", "definition"},
		Description: "Beach wave texturizing spray",
		Usage:       "Spray throughout damp hair. Air dry or diffuse.",
		LastingTime: 3,
	},
	{
		ID: "curlsmith_wave_gel", Name: "Curlsmith Weightless Air Dry Cream", Brand: "Curlsmith",
		Category: CategoryStyler, Price: 26.00, BuyLink: "https://amazon.com/dp/B084RGKQRW", Tier: TierMid,
		HairTypes: []HairType{HairWavy, HairCurly}, Concerns: []string{"frizz", "definition", "low_maintenance"},
		Description: "Lightweight wave enhancing cream",
		Usage:       "Apply to soaking wet hair. Air dry for best results.",
		LastingTime: 2.5,
	},

	// wavy, premium
	{
		ID: "ouai_wave_spray", Name: "OUAI Wave Spray", Brand: "OUAI",
		Category: CategoryStyler, Price: 28.00, BuyLink: "https://amazon.com/dp/B01N4N8XCC", Tier: TierPremium,
		HairTypes: []HairType{HairWavy}, Concerns: []string{"beachy", "volume", "polished"},
		Description: "Rice protein wave spray",
		Usage:       "Spray on damp hair. Scrunch or braid for waves.",
		LastingTime: 3,
	},

	// every hair type
	{
		ID: "olaplex_no3", Name: "Olaplex No. 3 Hair Perfector", Brand: "Olaplex",
		Category: CategoryTreatment, Price: 30.00, BuyLink: "https://amazon.com/dp/B00SNM5US4", Tier: TierMid,
		HairTypes: allHairTypes, Concerns: []string{"damage_repair", "breaking", "bleached"},
		Description: "At-home bond building treatment",
		Usage:       "Apply to damp hair before shampooing. Leave 10+ min. Shampoo and condition.",
		LastingTime: 3,
	},
	{
		ID: "the_ordinary_hair_serum", Name: "The Ordinary Multi-Peptide Serum for Hair Density", Brand: "The Ordinary",
		Category: CategoryTreatment, Price: 15.90, BuyLink: "https://amazon.com/dp/B07ZPZWJ5G", Tier: TierMid,
		HairTypes: allHairTypes, Concerns: []string{"growth", "scalp_health"},
		Description: "Hair density serum",
		Usage:       "Apply directly to scalp daily. Massage in. Do not rinse.",
		LastingTime: 2,
	},
	{
		ID: MicrofiberTowelID, Name: "Turbie Twist Microfiber Hair Towel", Brand: "Turbie Twist",
		Category: CategoryTool, Price: 7.99, BuyLink: "https://amazon.com/dp/B000FLDCHS", Tier: TierLow,
		HairTypes: allHairTypes, Concerns: []string{"frizz", "damage"},
		Description: "Microfiber hair drying towel",
		Usage:       "After washing, wrap hair to absorb excess water without friction.",
		LastingTime: 24,
	},
	{
		ID: WideToothCombID, Name: "Wide Tooth Detangling Comb", Brand: "Generic",
		Category: CategoryTool, Price: 4.99, BuyLink: "https://amazon.com/dp/B075ZPQQRV", Tier: TierLow,
		HairTypes: []HairType{HairWavy, HairCurly, HairCoily}, Concerns: []string{"tangles", "damage"},
		Description: "Gentle detangling comb",
		Usage:       "Use on wet, conditioned hair to detangle gently from ends to roots.",
		LastingTime: 24,
	},
	{
		ID: "silk_pillowcase", Name: "Mulberry Silk Pillowcase", Brand: "Various",
		Category: CategoryTool, Price: 19.99, BuyLink: "https://amazon.com/dp/B07VQBFKBM", Tier: TierMid,
		HairTypes: allHairTypes, Concerns: []string{"frizz", "damage"},
		Description: "Silk pillowcase to reduce friction",
		Usage:       "Sleep on silk to prevent breakage and frizz. Wash weekly.",
		LastingTime: 36,
	},
}
