package config

import "testing"

func TestValidateCronSchedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{name: "every five minutes", schedule: "*/5 * * * *", wantErr: false},
		{name: "weekdays at 5:30", schedule: "30 5 * * 1-5", wantErr: false},
		{name: "every six hours", schedule: "0 */6 * * *", wantErr: false},
		{name: "empty", schedule: "", wantErr: true},
		{name: "too few fields", schedule: "* * *", wantErr: true},
		{name: "not a cron expression", schedule: "every five minutes", wantErr: true},
		{name: "minute out of range", schedule: "61 * * * *", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCronSchedule(tt.schedule)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCronSchedule(%q) error = %v, wantErr %v", tt.schedule, err, tt.wantErr)
			}
		})
	}
}
