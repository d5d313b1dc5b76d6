package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd    CommandType = "add"
	CmdRemove CommandType = "remove"
	CmdList   CommandType = "list"
	CmdStatus CommandType = "status"
	CmdCheck  CommandType = "check"
	CmdPause  CommandType = "pause"
	CmdResume CommandType = "resume"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "add":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "remove", "rm":
		cmd.Type = CmdRemove
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "status":
		cmd.Type = CmdStatus
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "check":
		cmd.Type = CmdCheck
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Enrollment:*
• ` + "`/wfo add @user`" + ` - Enroll a user in office-day collection
• ` + "`/wfo remove @user`" + ` - Remove a user from collection
• ` + "`/wfo list`" + ` - List enrolled users
• ` + "`/wfo pause`" + ` / ` + "`/wfo resume`" + ` - Pause or resume your own prompts

*Schedules:*
• ` + "`/wfo status [@user]`" + ` - Show the office plan for the current week
• ` + "`/wfo check [@user]`" + ` - Show whether more collection is needed

You can also just DM me your plan, e.g. _"Monday to Wednesday"_ or _"Mon, Wed, Fri"_.`
}
