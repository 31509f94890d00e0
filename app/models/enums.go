package models

// Theme defines the colour scheme of the page.
type Theme string

const (
	LightTheme Theme = "light"
	DarkTheme  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == DarkTheme {
		return LightTheme
	}
	return DarkTheme
}

// ParseTheme falls back to the light theme for unknown values.
func ParseTheme(s string) Theme {
	if Theme(s) == DarkTheme {
		return DarkTheme
	}
	return LightTheme
}

// NeededStatus describes how a needed grade should be read.
type NeededStatus string

const (
	NeededInvalidGoal       NeededStatus = "invalid_goal"
	NeededNoRemainingWeight NeededStatus = "no_remaining_weight"
	NeededUnachievable      NeededStatus = "unachievable"
	NeededAlreadyMet        NeededStatus = "already_met"
	NeededAchievable        NeededStatus = "achievable"
)
