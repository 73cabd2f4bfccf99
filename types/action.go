package types

import "fmt"

type Action string

const (
	ActionStart Action = "start"
	ActionStop  Action = "stop"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionStart, ActionStop:
		return Action(s), nil
	default:
		return "", fmt.Errorf("invalid action %q: use 'start' or 'stop'", s)
	}
}

// Gerund returns the -ing form used in log and result messages.
func (a Action) Gerund() string {
	switch a {
	case ActionStart:
		return "starting"
	case ActionStop:
		return "stopping"
	}
	return string(a) + "ing"
}

func (a Action) PastTense() string {
	switch a {
	case ActionStart:
		return "started"
	case ActionStop:
		return "stopped"
	}
	return string(a) + "ed"
}

// TargetState is the instance state the action converges on.
func (a Action) TargetState() string {
	if a == ActionStart {
		return "running"
	}
	return "stopped"
}
