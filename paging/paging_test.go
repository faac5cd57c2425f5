package paging

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		skip, limit string
		max         int
		want        Params
		wantErr     bool
	}{
		{name: "defaults", want: Params{Skip: 0, Limit: DefaultLimit}},
		{name: "explicit", skip: "5", limit: "10", want: Params{Skip: 5, Limit: 10}},
		{name: "zero limit", limit: "0", want: Params{Limit: 0}},
		{name: "unbounded", limit: "5000", want: Params{Limit: 5000}},
		{name: "clamped", limit: "5000", max: 500, want: Params{Limit: 500}},
		{name: "negative skip", skip: "-1", wantErr: true},
		{name: "negative limit", limit: "-3", wantErr: true},
		{name: "not a number", skip: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.skip, tt.limit, tt.max)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParams) {
					t.Fatalf("Parse() error = %v, want ErrInvalidParams", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
