package util_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hbsc-go/packages/compiler/src/util"
)

func TestDidYouMean(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		candidates []string
		want       string
	}{
		{
			name:       "should suggest a candidate containing the typo",
			target:     "Buton",
			candidates: []string{"Button", "Card"},
			want:       " (did you mean 'Button'?)",
		},
		{
			name:       "should ignore case",
			target:     "insertbefore",
			candidates: []string{"insertBefore"},
			want:       " (did you mean 'insertBefore'?)",
		},
		{
			name:       "should suggest a candidate missing a typed letter",
			target:     "fooo",
			candidates: []string{"foo"},
			want:       " (did you mean 'foo'?)",
		},
		{
			name:       "should suggest a shorter candidate",
			target:     "too",
			candidates: []string{"to"},
			want:       " (did you mean 'to'?)",
		},
		{
			name:       "should suggest a candidate with swapped letters",
			target:     "kye",
			candidates: []string{"key"},
			want:       " (did you mean 'key'?)",
		},
		{
			name:       "should prefer the candidate with the fewest edits",
			target:     "itme",
			candidates: []string{"items", "item"},
			want:       " (did you mean 'item'?)",
		},
		{
			name:       "should fall back to candidates containing the letters",
			target:     "btn",
			candidates: []string{"Card", "PrimaryButton"},
			want:       " (did you mean 'PrimaryButton'?)",
		},
		{
			name:       "should not swap one-letter names",
			target:     "x",
			candidates: []string{"t"},
			want:       "",
		},
		{
			name:       "should not suggest unrelated names",
			target:     "index",
			candidates: []string{"key"},
			want:       "",
		},
		{
			name:       "should not suggest the name itself",
			target:     "key",
			candidates: []string{"key"},
			want:       "",
		},
		{
			name:   "should not suggest without candidates",
			target: "key",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := util.DidYouMean(tt.target, tt.candidates)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DidYouMean() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
