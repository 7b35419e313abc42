package tui

import "github.com/rgehrsitz/viagerpro/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	AppStyle          = tuistyles.AppStyle
	TitleStyle        = tuistyles.TitleStyle
	SubtitleStyle     = tuistyles.SubtitleStyle
	SectionStyle      = tuistyles.SectionStyle
	StatusBarStyle    = tuistyles.StatusBarStyle
	StatusKeyStyle    = tuistyles.StatusKeyStyle
	FieldLabelStyle   = tuistyles.FieldLabelStyle
	FocusedLabelStyle = tuistyles.FocusedLabelStyle
	ErrorStyle        = tuistyles.ErrorStyle
	InfoStyle         = tuistyles.InfoStyle
)

var FormatCurrency = tuistyles.FormatCurrency
