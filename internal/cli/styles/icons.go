package styles

// Nerd Font glyphs; without a Nerd Font they show as boxes.
const (
	IconVersion   = ""
	IconGitBranch = ""
	IconCalendar  = ""
	IconGithub    = ""
	IconGo        = ""

	IconCheck   = ""
	IconX       = ""
	IconWarning = ""
	IconCursor  = "" // chevron

	// paths
	IconFolder   = ""
	IconConfig   = ""
	IconDatabase = ""
	IconLogs     = ""
	IconSave     = ""
)
