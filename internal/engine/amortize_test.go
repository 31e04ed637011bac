package engine

import (
	"testing"
)

func TestAmortizationSchedule_FirstMonth(t *testing.T) {
	schedule := AmortizationSchedule(5000, 18, 200, day(2026, 1, 1))

	if len(schedule) == 0 {
		t.Fatal("empty schedule")
	}

	first := schedule[0]
	if first.Month != 1 {
		t.Errorf("Month = %d, want 1", first.Month)
	}
	if first.Interest != 75.00 {
		t.Errorf("Interest = %v, want 75.00", first.Interest)
	}
	if first.Principal != 125.00 {
		t.Errorf("Principal = %v, want 125.00", first.Principal)
	}
	if first.Balance != 4875.00 {
		t.Errorf("Balance = %v, want 4875.00", first.Balance)
	}
	if first.Date != day(2026, 2, 1) {
		t.Errorf("Date = %v, want %v", first.Date, day(2026, 2, 1))
	}
}

func TestAmortizationSchedule_EndsAtZero(t *testing.T) {
	schedule := AmortizationSchedule(1000, 12, 300, day(2026, 1, 1))

	if len(schedule) == 0 {
		t.Fatal("empty schedule")
	}

	last := schedule[len(schedule)-1]
	if last.Balance != 0 {
		t.Errorf("final Balance = %v, want exactly 0", last.Balance)
	}
	// The final payment covers only what is left, never more.
	if last.Payment > 300 {
		t.Errorf("final Payment = %v, want <= 300", last.Payment)
	}
}

func TestAmortizationSchedule_ZeroRate(t *testing.T) {
	schedule := AmortizationSchedule(1000, 0, 250, day(2026, 1, 1))

	if len(schedule) != 4 {
		t.Fatalf("len(schedule) = %d, want 4", len(schedule))
	}
	for i, entry := range schedule {
		if entry.Interest != 0 {
			t.Errorf("Interest[%d] = %v, want 0", i, entry.Interest)
		}
	}
	if schedule[3].Balance != 0 {
		t.Errorf("final Balance = %v, want 0", schedule[3].Balance)
	}
}

func TestAmortizationSchedule_PaymentBelowInterest(t *testing.T) {
	// 18% on 5000 accrues 75/month; a 50 payment never reduces the balance.
	schedule := AmortizationSchedule(5000, 18, 50, day(2026, 1, 1))

	if len(schedule) != 1 {
		t.Fatalf("len(schedule) = %d, want 1 (stops once no principal is paid)", len(schedule))
	}
	if schedule[0].Principal != 0 {
		t.Errorf("Principal = %v, want 0", schedule[0].Principal)
	}
	if schedule[0].Balance != 5000 {
		t.Errorf("Balance = %v, want unchanged 5000", schedule[0].Balance)
	}
}

func TestMinimumPayment(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		rate    float64
		months  int
		want    float64
	}{
		{"zero rate", 1200, 0, 12, 100},
		{"standard", 5000, 18, 12, 458.40},
		{"zero months", 1000, 10, 0, 0},
		{"negative months", 1000, 10, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimumPayment(tt.balance, tt.rate, tt.months)
			if !approx(got, tt.want) {
				t.Errorf("MinimumPayment(%v, %v, %d) = %v, want %v",
					tt.balance, tt.rate, tt.months, got, tt.want)
			}
		})
	}
}

func TestMinimumPayment_RetiresBalance(t *testing.T) {
	payment := MinimumPayment(5000, 18, 12)
	schedule := AmortizationSchedule(5000, 18, payment, day(2026, 1, 1))

	// The cent-rounded payment may leave a fractional residual for one
	// extra month.
	if len(schedule) < 12 || len(schedule) > 13 {
		t.Errorf("len(schedule) = %d, want 12 or 13", len(schedule))
	}
	if last := schedule[len(schedule)-1]; last.Balance != 0 {
		t.Errorf("final Balance = %v, want 0", last.Balance)
	}
}
