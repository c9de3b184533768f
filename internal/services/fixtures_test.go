package services

import (
	"github.com/google/uuid"

	"cougcuts/internal/engine"
	"cougcuts/internal/models/db_models"
)

func testLead() *db_models.Lead {
	return &db_models.Lead{
		BaseModel: db_models.BaseModel{ID: uuid.MustParse("3f1c7a52-9a3e-4c55-8d0c-6f0e3a1b2c4d")},
		Email:     "butch@wsu.edu",
		Name:      "Butch",
		HairType:  "curly",
	}
}

func testRoutine() engine.GeneratedRoutine {
	return engine.GeneratedRoutine{
		ProfileID: "curly_tight_low_mid",
		Challenge: "Low porosity curls need lightweight moisture",
		MorningRoutine: []engine.RoutineStep{
			{Step: "Mist with water", Tip: "Use a spray bottle"},
			{Step: "Scrunch in leave-in"},
			{Step: "Apply gel"},
			{Step: "Diffuse on low"},
		},
		WashDayRoutine: []engine.RoutineStep{
			{Step: "Clarify monthly"},
			{Step: "Deep condition 20 minutes", Tip: "Add heat"},
		},
		Products: []engine.Product{
			{ID: "p1", Name: "Cantu Shampoo", Category: engine.CategoryShampoo, Price: 5.99, Description: "Sulfate free", Usage: "Massage into scalp"},
			{ID: "p2", Name: "NYMCT Conditioner", Category: engine.CategoryConditioner, Price: 8.99, Description: "Slip for detangling", Usage: "Leave on 3 minutes"},
			{ID: "p3", Name: "LA Looks Gel", Category: engine.CategoryStyler, Price: 4, Description: "Strong hold", Usage: "Rake through wet hair"},
			{ID: "p4", Name: "Microfiber Towel", Category: engine.CategoryTool, Price: 12, Description: "Less frizz", Usage: "Scrunch, do not rub"},
		},
		Hacks:         []string{"Sleep on satin"},
		WSUTips:       []string{"Wear a beanie on windy days"},
		EstimatedTime: engine.EstimatedTime{Morning: 8, WashDay: 40},
		MonthlyCost:   19,
	}
}
