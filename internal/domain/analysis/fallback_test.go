package analysis

import "testing"

func TestClassifyFilename(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantCode Code
	}{
		{"tire keyword", "Tire_Pressure.jpg", CodeTPMS},
		{"tpms keyword", "my-TPMS-light.png", CodeTPMS},
		{"battery keyword", "battery_warning.jpg", CodeBattery},
		{"engine keyword", "engine-light.jpeg", CodeEngine},
		{"check keyword", "Check_Engine_2024.jpg", CodeEngine},
		{"no keyword", "random.png", CodeInfo},
		{"empty name", "", CodeInfo},
		// tire wins over battery because rules are checked in order
		{"precedence", "tire-and-battery.jpg", CodeTPMS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFilename(tt.fileName)
			if got.Code != tt.wantCode {
				t.Errorf("ClassifyFilename(%q).Code = %q, want %q", tt.fileName, got.Code, tt.wantCode)
			}
			if got.Source != SourceLocal {
				t.Errorf("source = %q, want %q", got.Source, SourceLocal)
			}
			if len(got.Steps) != StepCount {
				t.Errorf("steps length = %d, want %d", len(got.Steps), StepCount)
			}
			if got.Title == "" {
				t.Error("title must not be empty")
			}
		})
	}
}
