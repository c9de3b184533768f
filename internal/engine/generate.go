// Package engine turns quiz answers into a personalized hair care routine.
//
// Everything here is a pure function of its arguments and the static catalog
// and question bank, so it is safe to call from concurrent requests.
package engine

import "slices"

type Input struct {
	HairType    HairType `json:"hairType"`
	HairGoals   []string `json:"hairGoals"`
	QuizAnswers Answers  `json:"quizAnswers"`
	Budget      Tier     `json:"budget"`
}

type GeneratedRoutine struct {
	ProfileID      string        `json:"profileId"`
	Challenge      string        `json:"challenge"`
	MorningRoutine []RoutineStep `json:"morningRoutine"`
	WashDayRoutine []RoutineStep `json:"washDayRoutine"`
	Products       []Product     `json:"products"`
	Hacks          []string      `json:"hacks"`
	WSUTips        []string      `json:"wsuTips"`
	EstimatedTime  EstimatedTime `json:"estimatedTime"`
	MonthlyCost    float64       `json:"monthlyCost"`
}

// Generate runs every stage of the engine and merges the results.
func Generate(in Input) GeneratedRoutine {
	goals := slices.Clone(in.HairGoals)

	morning := BuildMorningRoutine(in.HairType, in.QuizAnswers)
	washDay := BuildWashDayRoutine(in.HairType, in.QuizAnswers)
	products := Recommend(in.HairType, goals, in.Budget)

	return GeneratedRoutine{
		ProfileID:      ResolveProfileID(in.HairType, in.QuizAnswers, in.Budget),
		Challenge:      Diagnose(in.HairType, in.QuizAnswers),
		MorningRoutine: morning,
		WashDayRoutine: washDay,
		Products:       products,
		Hacks:          Hacks(in.HairType, in.QuizAnswers),
		WSUTips:        CampusTips(in.QuizAnswers),
		EstimatedTime:  EstimateTime(morning, washDay),
		MonthlyCost:    MonthlyCost(products),
	}
}

// FirstMorningSteps returns at most n morning steps.
func (r GeneratedRoutine) FirstMorningSteps(n int) []RoutineStep {
	return r.MorningRoutine[:max(0, min(n, len(r.MorningRoutine)))]
}

// FirstProducts returns at most n products.
func (r GeneratedRoutine) FirstProducts(n int) []Product {
	return r.Products[:max(0, min(n, len(r.Products)))]
}
