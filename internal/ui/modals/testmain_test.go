package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/switchboard/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the real debug log
	logger.Reset()
	logger.Init(os.DevNull)

	// The ui package normally pushes these in; set them directly here
	SetStyles(
		lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle(),
		lipgloss.Color("#7C3AED"), lipgloss.Color("#06B6D4"), lipgloss.Color("#F9FAFB"),
		lipgloss.Color("#9CA3AF"), lipgloss.Color("#1F2937"), lipgloss.Color("#F59E0B"), lipgloss.Color("#EF4444"),
		50, 60, 80, 10,
	)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
