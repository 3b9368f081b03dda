package types

import "testing"

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "new_to_contacted", from: LeadStatusNew, to: LeadStatusContacted, want: true},
		{name: "contacted_to_qualified", from: LeadStatusContacted, to: LeadStatusQualified, want: true},
		{name: "qualified_to_converted", from: LeadStatusQualified, to: LeadStatusConverted, want: true},
		{name: "new_to_closed", from: LeadStatusNew, to: LeadStatusClosed, want: true},
		{name: "qualified_to_closed", from: LeadStatusQualified, to: LeadStatusClosed, want: true},
		{name: "new_skips_to_qualified", from: LeadStatusNew, to: LeadStatusQualified, want: false},
		{name: "converted_is_terminal", from: LeadStatusConverted, to: LeadStatusClosed, want: false},
		{name: "closed_is_terminal", from: LeadStatusClosed, to: LeadStatusNew, want: false},
		{name: "no_backwards_move", from: LeadStatusQualified, to: LeadStatusContacted, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidStatusTransition(tc.from, tc.to)
			if got != tc.want {
				t.Fatalf("ValidStatusTransition(%q, %q)=%v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}
