package models

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		list *ModelList
		want string
	}{
		{
			name: "sorted",
			list: &ModelList{
				Models: Sorted([]Model{{ID: "b"}, {ID: "a"}, {ID: "c"}}),
				Total:  3,
			},
			want: "\nAvailable models:\n\na\nb\nc\n\nTotal: 3 models\n",
		},
		{
			name: "empty",
			list: &ModelList{},
			want: "\nAvailable models:\n\n\nTotal: 0 models\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder

			require.NoError(t, Render(&out, tt.list))

			if got := out.String(); got != tt.want {
				t.Errorf("Render() output differs (-want +got):\n%s", diff.Diff(tt.want, got))
			}
		})
	}
}

type countingWriter struct {
	writes int
}

func (w *countingWriter) WriteString(s string) (int, error) {
	w.writes++
	return len(s), nil
}

func TestRenderWritesOnce(t *testing.T) {
	var w countingWriter

	require.NoError(t, Render(&w, &ModelList{Models: []Model{{ID: "a"}, {ID: "b"}}, Total: 2}))
	require.Equal(t, 1, w.writes)
}
