package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "Should parse add with a mention",
			text:     "add <@U123456789|testuser>",
			wantType: CmdAdd,
			wantArgs: []string{"<@U123456789|testuser>"},
		},
		{
			name:     "Should parse remove alias rm",
			text:     "rm <@U123456789|testuser>",
			wantType: CmdRemove,
			wantArgs: []string{"<@U123456789|testuser>"},
		},
		{
			name:     "Should parse list alias ls",
			text:     "ls",
			wantType: CmdList,
		},
		{
			name:     "Should parse status with an optional mention",
			text:     "status <@U123456789|testuser>",
			wantType: CmdStatus,
			wantArgs: []string{"<@U123456789|testuser>"},
		},
		{
			name:     "Should parse check",
			text:     "check",
			wantType: CmdCheck,
		},
		{
			name:     "Should parse pause and resume",
			text:     "pause",
			wantType: CmdPause,
		},
		{
			name:     "Should default empty text to help",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:    "Should reject unknown commands",
			text:    "frobnicate",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cmd)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cmd)

			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}
