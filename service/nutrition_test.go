package service_test

import (
	"testing"

	"github.com/sanyokkme/fiyouai/service"
)

func TestCalculateBMRTDEE(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   string
		activity string
		want     float64
	}{
		{"male sedentary", 70, 175, 30, "male", "sedentary", 1978.5},
		{"male localized", 70, 175, 30, "Чоловік", "Сидячий", 1978.5},
		{"female sedentary", 70, 175, 30, "female", "sedentary", 1779.3},
		{"unknown gender uses female constant", 70, 175, 30, "other", "sedentary", 1779.3},
		{"unknown activity falls back to sedentary", 70, 175, 30, "male", "extreme", 1978.5},
		{"moderate activity", 70, 175, 30, "male", "Середня активність", 1648.75 * 1.55},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := service.CalculateBMRTDEE(tt.weight, tt.height, tt.age, tt.gender, tt.activity)
			if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
				t.Fatalf("CalculateBMRTDEE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetCalories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tdee float64
		goal string
		want int
	}{
		{"lose english", 2000, "I want to lose weight", 1500},
		{"lose localized", 2000, "Схуднення", 1500},
		{"gain english", 2000, "gain muscle", 2500},
		{"gain localized", 2000, "набрати масу", 2500},
		{"maintain empty", 2000, "", 2000},
		{"maintain unrelated", 2000, "підтримка форми", 2000},
		{"result truncates", 1978.5, "", 1978},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := service.TargetCalories(tt.tdee, tt.goal); got != tt.want {
				t.Fatalf("TargetCalories(%v, %q) = %d, want %d", tt.tdee, tt.goal, got, tt.want)
			}
		})
	}
}

func TestClassifyGoal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goal string
		want service.Goal
	}{
		{"lose weight fast", service.GoalLose},
		{"хочу скинути 5 кг", service.GoalLose},
		{"схуднення", service.GoalLose},
		{"gain muscle", service.GoalGain},
		{"набрати вагу", service.GoalGain},
		{"", service.GoalMaintain},
		{"stay healthy", service.GoalMaintain},
	}

	for _, tt := range tests {
		if got := service.ClassifyGoal(tt.goal); got != tt.want {
			t.Fatalf("ClassifyGoal(%q) = %v, want %v", tt.goal, got, tt.want)
		}
	}
}

func TestCalculateMacros(t *testing.T) {
	t.Parallel()

	macros := service.CalculateMacros(2000)
	if macros.Protein != 150 {
		t.Errorf("Protein = %d, want 150", macros.Protein)
	}
	if macros.Fat != 66 {
		t.Errorf("Fat = %d, want 66", macros.Fat)
	}
	if macros.Carbs != 200 {
		t.Errorf("Carbs = %d, want 200", macros.Carbs)
	}
}
