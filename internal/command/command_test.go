package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		want    Command
		wantErr error
	}{
		{
			name: "create",
			line: "CREATE fruits/apples",
			want: Command{Name: NameCreate, Args: map[string]string{ArgumentPath: "fruits/apples"}},
		},
		{
			name: "move",
			line: "MOVE fruits/apples foods",
			want: Command{Name: NameMove, Args: map[string]string{
				ArgumentSourcePath: "fruits/apples",
				ArgumentTargetPath: "foods",
			}},
		},
		{
			name: "delete",
			line: "DELETE fruits",
			want: Command{Name: NameDelete, Args: map[string]string{ArgumentPath: "fruits"}},
		},
		{
			name: "list",
			line: "LIST",
			want: Command{Name: NameList, Args: map[string]string{}},
		},
		{name: "an unknown command", line: "COPY a b", wantErr: ErrInvalidCommand},
		{name: "a command name is case sensitive", line: "list", wantErr: ErrInvalidCommand},
		{name: "an empty line", line: "", wantErr: ErrInvalidCommand},
		{name: "too few arguments", line: "MOVE a", wantErr: ErrInvalidCommand},
		{name: "too many arguments", line: "CREATE a b", wantErr: ErrInvalidCommand},
		{name: "arguments for list", line: "LIST a", wantErr: ErrInvalidCommand},
		{name: "an empty argument", line: "MOVE a  b", wantErr: ErrInvalidCommand},
		{name: "a trailing space", line: "CREATE ", wantErr: ErrInvalidCommand},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, gotErr := Parse(tc.line)
			assert.ErrorIs(t, gotErr, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
