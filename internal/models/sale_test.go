package models

import "testing"

func TestPaymentStatusToggled(t *testing.T) {
	tests := []struct {
		name string
		in   PaymentStatus
		want PaymentStatus
	}{
		{"Lunas jadi Tempo", StatusLunas, StatusTempo},
		{"Tempo jadi Lunas", StatusTempo, StatusLunas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Toggled(); got != tt.want {
				t.Errorf("Toggled() = %v, want %v", got, tt.want)
			}
			// dua kali toggle harus kembali ke status awal
			if got := tt.in.Toggled().Toggled(); got != tt.in {
				t.Errorf("Toggled().Toggled() = %v, want %v", got, tt.in)
			}
		})
	}
}

func TestValidExpenseCategory(t *testing.T) {
	for _, c := range []ExpenseCategory{ExpenseKedelai, ExpensePlastik, ExpenseRagi, ExpenseAir, ExpenseListrik, ExpenseGaji} {
		if !ValidExpenseCategory(c) {
			t.Errorf("ValidExpenseCategory(%q) = false, want true", c)
		}
	}
	if ValidExpenseCategory("bensin") {
		t.Error(`ValidExpenseCategory("bensin") = true, want false`)
	}
}
