package cli

import (
	"reflect"
	"testing"

	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/planner"
)

func TestParseWidths(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"Empty", "", nil, false},
		{"Whitespace", "   ", nil, false},
		{"AllFixed", "4,10,8", []int{4, 10, 8}, false},
		{"AllAuto", "*,*", []int{planner.Auto, planner.Auto}, false},
		{"Mixed", "4,*,8", []int{4, planner.Auto, 8}, false},
		{"Zero", "0,*", []int{0, planner.Auto}, false},
		{"SpacesAroundEntries", " 4 , * , 8 ", []int{4, planner.Auto, 8}, false},
		{"Negative", "-1,*", nil, true},
		{"NotANumber", "4,x", nil, true},
		{"EmptyEntry", "4,,8", nil, true},
		{"Float", "4.5", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWidths(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWidths(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidWidths) {
					t.Errorf("parseWidths(%q) code = %v, want %v",
						tt.in, errors.GetCode(err), errors.ErrCodeInvalidWidths)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseWidths(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
